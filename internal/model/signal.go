package model

// Weight keys. A WeightSet must carry exactly these five entries.
const (
	SignalAnalystsRatings     = "analysts_ratings"
	SignalSmartScore          = "smart_score"
	SignalNetOptionsSentiment = "net_options_sentiment"
	SignalNetSocialSentiment  = "net_social_sentiment"
	SignalUpsideBreakout      = "upside_breakout"
)

// TradeSignal holds the raw signal inputs for one trade candidate.
// Ranges are advisory only (smart_score 0-10, sentiments 0-100); inputs
// are never validated, the scorer's per-delta clamps bound their influence.
type TradeSignal struct {
	BuyRatings          int
	TotalRatings        int
	SmartScore          float64
	NetOptionsSentiment float64
	NetSocialSentiment  float64
	UpsideBreakout      float64
}

// TradeEconomics holds the sizing parameters for EV calculation.
// LossR is typically negative.
type TradeEconomics struct {
	WinR  float64
	LossR float64
}

// WeightSet maps signal names to blending weights. The default set sums
// to 1.0; custom sets are taken as-is.
type WeightSet map[string]float64
