package batch

import (
	"fmt"
	"strconv"

	"TradeEdge/internal/model"
	"TradeEdge/internal/scorer"
	"TradeEdge/internal/table"
)

// Required input columns, checked against the header before any row is
// scored. Order matters only for error reporting.
var requiredColumns = []string{
	"buy_ratings",
	"total_ratings",
	"smart_score",
	"net_options_sentiment",
	"net_social_sentiment",
	"upside_breakout",
	"win_r",
	"loss_r",
}

// Derived columns, appended to the output in this order.
var derivedColumns = []string{"p_win", "ev", "recommendation"}

// SchemaError reports a required column missing from the input header.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}

// Options configures a batch run. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Weights     model.WeightSet
	EVThreshold float64
}

// DefaultOptions returns the default weights and EV threshold.
func DefaultOptions() Options {
	return Options{
		Weights:     scorer.DefaultWeights(),
		EVThreshold: scorer.DefaultEVThreshold,
	}
}

// Result is a scored batch: the output table with derived columns
// appended, plus the per-row score breakdowns in the same order.
type Result struct {
	Table  *table.Table
	Scores []*model.ScoreResult
}

// ScoreTable scores every row of t independently, preserving row order
// and passing unknown columns through unchanged. The schema is validated
// once up front; any coercion failure fails the whole batch. A zero-row
// input yields a zero-row result that still carries the derived columns.
func ScoreTable(t *table.Table, opts Options) (*Result, error) {
	cols := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		idx, ok := t.Column(name)
		if !ok {
			return nil, &SchemaError{Column: name}
		}
		cols[name] = idx
	}

	out := &table.Table{
		Header: append(append([]string{}, t.Header...), derivedColumns...),
		Rows:   make([][]string, 0, len(t.Rows)),
	}
	scores := make([]*model.ScoreResult, 0, len(t.Rows))

	for i, row := range t.Rows {
		sig, econ, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		res, err := scorer.Evaluate(sig, econ, opts.Weights, opts.EVThreshold)
		if err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, append(append([]string{}, row...),
			strconv.FormatFloat(res.PWin, 'f', 6, 64),
			strconv.FormatFloat(res.EV, 'f', 6, 64),
			string(res.Recommendation),
		))
		scores = append(scores, res)
	}

	return &Result{Table: out, Scores: scores}, nil
}

func parseRow(row []string, cols map[string]int) (model.TradeSignal, model.TradeEconomics, error) {
	var sig model.TradeSignal
	var econ model.TradeEconomics
	var err error

	if sig.BuyRatings, err = intCell(row, cols, "buy_ratings"); err != nil {
		return sig, econ, err
	}
	if sig.TotalRatings, err = intCell(row, cols, "total_ratings"); err != nil {
		return sig, econ, err
	}
	if sig.SmartScore, err = floatCell(row, cols, "smart_score"); err != nil {
		return sig, econ, err
	}
	if sig.NetOptionsSentiment, err = floatCell(row, cols, "net_options_sentiment"); err != nil {
		return sig, econ, err
	}
	if sig.NetSocialSentiment, err = floatCell(row, cols, "net_social_sentiment"); err != nil {
		return sig, econ, err
	}
	if sig.UpsideBreakout, err = floatCell(row, cols, "upside_breakout"); err != nil {
		return sig, econ, err
	}
	if econ.WinR, err = floatCell(row, cols, "win_r"); err != nil {
		return sig, econ, err
	}
	if econ.LossR, err = floatCell(row, cols, "loss_r"); err != nil {
		return sig, econ, err
	}
	return sig, econ, nil
}

func floatCell(row []string, cols map[string]int, name string) (float64, error) {
	v, err := strconv.ParseFloat(row[cols[name]], 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: cannot parse %q as number", name, row[cols[name]])
	}
	return v, nil
}

// intCell is float-lenient: "15.0" coerces to 15, mirroring how the
// rating columns arrive when a CSV carries them as decimals.
func intCell(row []string, cols map[string]int, name string) (int, error) {
	v, err := floatCell(row, cols, name)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
