package report

import (
	"fmt"
	"strings"

	"TradeEdge/internal/model"
	"TradeEdge/internal/table"
)

// Summary aggregates a scored batch for the console footer.
type Summary struct {
	Total     int
	TakeCount int
	MeanEV    float64
	MeanPWin  float64
}

// Summarize computes batch statistics from the per-row scores.
func Summarize(scores []*model.ScoreResult) Summary {
	s := Summary{Total: len(scores)}
	if s.Total == 0 {
		return s
	}
	for _, r := range scores {
		if r.Recommendation == model.TakeTrade {
			s.TakeCount++
		}
		s.MeanEV += r.EV
		s.MeanPWin += r.PWin
	}
	s.MeanEV /= float64(s.Total)
	s.MeanPWin /= float64(s.Total)
	return s
}

// FormatTable renders the table with width-aligned columns.
func FormatTable(t *table.Table) string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString("\n")
	}
	writeRow(t.Header)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return b.String()
}

// FormatSummary renders the batch statistics block.
func FormatSummary(s Summary, threshold float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total trades analyzed: %d\n", s.Total))
	b.WriteString(fmt.Sprintf("Trades with EV >= %.1fR: %d\n", threshold, s.TakeCount))
	b.WriteString(fmt.Sprintf("Average EV: %.3fR\n", s.MeanEV))
	b.WriteString(fmt.Sprintf("Average P_win: %.3f\n", s.MeanPWin))
	return b.String()
}
