package renderer

import (
	"fmt"
	"strings"

	"github.com/vkant/perf"
)

// CashflowMarkdown renders the cash-flow series as a markdown table in
// chronological order.
func CashflowMarkdown(series *perf.CashflowSeries) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Cash Flows\n\n")
	fmt.Fprintln(&b, "| Date | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, on := range series.Dates() {
		fmt.Fprintf(&b, "| %s | %s |\n", on, series.Amount(on).SignedString())
	}

	return b.String()
}
