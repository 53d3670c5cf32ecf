package scorer

import (
	"fmt"
	"math"

	"TradeEdge/internal/model"
)

// DefaultEVThreshold is the minimum EV-in-R buffer required to take a trade.
const DefaultEVThreshold = 0.3

// DefaultWeights returns a fresh copy of the default blending weights.
func DefaultWeights() model.WeightSet {
	return model.WeightSet{
		model.SignalAnalystsRatings:     0.25,
		model.SignalSmartScore:          0.15,
		model.SignalNetOptionsSentiment: 0.20,
		model.SignalNetSocialSentiment:  0.20,
		model.SignalUpsideBreakout:      0.20,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// analystsDelta scores the buy-ratings consensus, scaled by coverage.
// Cap: ±30. Zero total ratings means no information, not a negative
// signal, so the delta is exactly 0.
func analystsDelta(sig model.TradeSignal) model.SignalDelta {
	raw := 0.0
	if sig.TotalRatings > 0 {
		buyProportion := float64(sig.BuyRatings) / float64(sig.TotalRatings)
		raw = buyProportion * (float64(sig.TotalRatings) / 20) * 30
	}
	return model.SignalDelta{Name: model.SignalAnalystsRatings, Raw: clamp(raw, -30, 30)}
}

// smartScoreDelta maps the 0-10 smart score around its neutral 5. Cap: ±20.
func smartScoreDelta(sig model.TradeSignal) model.SignalDelta {
	raw := (sig.SmartScore - 5) / 5 * 20
	return model.SignalDelta{Name: model.SignalSmartScore, Raw: clamp(raw, -20, 20)}
}

// sentimentDelta maps a 0-100 sentiment score around its neutral 50.
// Cap: ±20. Shared by options, social, and breakout signals.
func sentimentDelta(name string, value float64) model.SignalDelta {
	raw := (value - 50) / 50 * 20
	return model.SignalDelta{Name: name, Raw: clamp(raw, -20, 20)}
}

// PWin blends the five signal deltas into a win probability. Each delta
// is normalized to percentage points from neutral and capped before
// weighting; the weighted total is squashed through a sigmoid into (0,1).
// Inputs are never range-checked. A weight set missing one of the five
// keys is the only error.
func PWin(sig model.TradeSignal, weights model.WeightSet) (float64, error) {
	deltas, err := weigh(sig, weights)
	if err != nil {
		return 0, err
	}
	totalDelta := 0.0
	for _, d := range deltas {
		totalDelta += d.Weighted
	}
	z := totalDelta / 100
	return 1 / (1 + math.Exp(-z)), nil
}

// EV is the expected value in R-multiples: p_win*win_r + (1-p_win)*loss_r.
// Total for any real inputs; the caller guarantees pWin is a probability.
func EV(pWin, winR, lossR float64) float64 {
	return pWin*winR + (1-pWin)*lossR
}

// Classify maps an EV to a recommendation. The threshold boundary is
// inclusive: ev == threshold takes the trade.
func Classify(ev, threshold float64) model.Recommendation {
	if ev >= threshold {
		return model.TakeTrade
	}
	return model.SkipTrade
}

// Evaluate computes the full score breakdown for one candidate.
func Evaluate(sig model.TradeSignal, econ model.TradeEconomics, weights model.WeightSet, threshold float64) (*model.ScoreResult, error) {
	deltas, err := weigh(sig, weights)
	if err != nil {
		return nil, err
	}
	totalDelta := 0.0
	for _, d := range deltas {
		totalDelta += d.Weighted
	}
	pWin := 1 / (1 + math.Exp(-totalDelta/100))
	ev := EV(pWin, econ.WinR, econ.LossR)

	return &model.ScoreResult{
		PWin:           pWin,
		EV:             ev,
		Recommendation: Classify(ev, threshold),
		Deltas:         deltas,
	}, nil
}

// weigh computes the five clamped deltas and applies the weight set.
func weigh(sig model.TradeSignal, weights model.WeightSet) ([]model.SignalDelta, error) {
	deltas := []model.SignalDelta{
		analystsDelta(sig),
		smartScoreDelta(sig),
		sentimentDelta(model.SignalNetOptionsSentiment, sig.NetOptionsSentiment),
		sentimentDelta(model.SignalNetSocialSentiment, sig.NetSocialSentiment),
		sentimentDelta(model.SignalUpsideBreakout, sig.UpsideBreakout),
	}
	for i := range deltas {
		w, ok := weights[deltas[i].Name]
		if !ok {
			return nil, fmt.Errorf("weight %q missing from weight set", deltas[i].Name)
		}
		deltas[i].Weight = w
		deltas[i].Weighted = deltas[i].Raw * w
	}
	return deltas, nil
}
