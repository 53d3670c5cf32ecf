package model

// Recommendation classifies a candidate against the EV threshold.
type Recommendation string

const (
	TakeTrade Recommendation = "take_trade"
	SkipTrade Recommendation = "skip_trade"
)

// SignalDelta is a single signal's scoring contribution.
type SignalDelta struct {
	Name     string
	Raw      float64 // clamped delta in percentage points from neutral
	Weight   float64
	Weighted float64
}

// ScoreResult is the final output of scoring one candidate.
type ScoreResult struct {
	PWin           float64
	EV             float64
	Recommendation Recommendation
	Deltas         []SignalDelta
}
