package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/vkant/perf"
)

// HistoryMarkdown renders a series of portfolio snapshots as a markdown
// table, one row per snapshot date.
func HistoryMarkdown(snapshots []perf.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio History")

	rows := make([][]string, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []string{
			s.Date.String(),
			s.Cost.String(),
			s.Value.String(),
			s.Gain().SignedString(),
			perf.Percent(100 * s.Return()).SignedString(),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Date", "Cost Basis", "Value", "Gain", "Return"},
		Rows:   rows,
	})

	return doc.String()
}
