package notifier

import (
	"fmt"
	"strings"
	"time"

	"TradeEdge/internal/batch"
	"TradeEdge/internal/model"
	"TradeEdge/internal/report"
)

// digestCandidateLimit caps how many take-trade rows a digest lists.
const digestCandidateLimit = 10

// FormatWatchDigest formats a scored batch into a Telegram message:
// summary stats first, then the take-trade candidates. Rows are labeled
// by a symbol/ticker column when the input carries one, by row number
// otherwise.
func FormatWatchDigest(res *batch.Result, threshold float64) string {
	var b strings.Builder

	s := report.Summarize(res.Scores)
	b.WriteString(fmt.Sprintf("📊 <b>TradeEdge scan</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Candidates scored: %d\n", s.Total))
	b.WriteString(fmt.Sprintf("EV >= %.1fR: %d\n", threshold, s.TakeCount))
	b.WriteString(fmt.Sprintf("Average EV: %.3fR | Average P_win: %.3f\n", s.MeanEV, s.MeanPWin))

	if s.TakeCount == 0 {
		b.WriteString("\nNo take-trade candidates this scan.\n")
		return b.String()
	}

	b.WriteString("\n✅ <b>Take-trade candidates:</b>\n")
	labelCol := labelColumn(res.Table.Header)
	listed := 0
	for i, r := range res.Scores {
		if r.Recommendation != model.TakeTrade {
			continue
		}
		label := fmt.Sprintf("row %d", i+1)
		if labelCol >= 0 {
			label = res.Table.Rows[i][labelCol]
		}
		b.WriteString(fmt.Sprintf("  %s: P_win=%.3f EV=%+.3fR\n", label, r.PWin, r.EV))
		listed++
		if listed == digestCandidateLimit {
			b.WriteString(fmt.Sprintf("  … and %d more\n", s.TakeCount-listed))
			break
		}
	}

	return b.String()
}

func labelColumn(header []string) int {
	for i, h := range header {
		switch strings.ToLower(h) {
		case "symbol", "ticker":
			return i
		}
	}
	return -1
}
