package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/vkant/perf"
)

// SummaryMarkdown renders the full performance summary: P&L per security,
// the money-weighted return, and the lot count split.
func SummaryMarkdown(s *perf.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance Summary on %s", s.Date))

	realized, unrealized := 0, 0
	for _, l := range s.Lots {
		if l.Realized {
			realized++
		} else {
			unrealized++
		}
	}
	doc.PlainText(fmt.Sprintf("%d matched lots (%d realized, %d open), money-weighted return (XIRR) %s",
		len(s.Lots), realized, unrealized, perf.Percent(100*s.Rate).SignedString()))

	doc.H2("Profit & Loss")

	rows := make([][]string, 0, len(s.PnL.Securities())+1)
	for _, sec := range s.PnL.Securities() {
		bucket := s.PnL.Bucket(sec)
		rows = append(rows, []string{
			sec,
			bucket.RealizedProfit.SignedString(),
			perf.Percent(100 * bucket.RealizedReturn()).SignedString(),
			bucket.UnrealizedProfit.SignedString(),
			perf.Percent(100 * bucket.UnrealizedReturn()).SignedString(),
		})
	}
	total := s.PnL.Total()
	rows = append(rows, []string{
		"Total",
		total.RealizedProfit.SignedString(),
		perf.Percent(100 * total.RealizedReturn()).SignedString(),
		total.UnrealizedProfit.SignedString(),
		perf.Percent(100 * total.UnrealizedReturn()).SignedString(),
	})

	doc.Table(md.TableSet{
		Header: []string{"Security", "Realized", "Realized %", "Unrealized", "Unrealized %"},
		Rows:   rows,
	})

	return doc.String()
}
