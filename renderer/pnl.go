package renderer

import (
	"fmt"
	"strings"

	"github.com/vkant/perf"
)

// PnLMarkdown renders the P&L buckets as a markdown table, one row per
// security and a bold total row.
func PnLMarkdown(report *perf.PnLReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Profit & Loss\n\n")
	fmt.Fprintln(&b, "| Security | Realized | Realized % | Unrealized | Unrealized % |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")

	for _, sec := range report.Securities() {
		bucket := report.Bucket(sec)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			sec,
			bucket.RealizedProfit.SignedString(),
			perf.Percent(100*bucket.RealizedReturn()).SignedString(),
			bucket.UnrealizedProfit.SignedString(),
			perf.Percent(100*bucket.UnrealizedReturn()).SignedString(),
		)
	}

	total := report.Total()
	fmt.Fprintf(&b, "| **%s** | **%s** | **%s** | **%s** | **%s** |\n",
		"Total",
		total.RealizedProfit.SignedString(),
		perf.Percent(100*total.RealizedReturn()).SignedString(),
		total.UnrealizedProfit.SignedString(),
		perf.Percent(100*total.UnrealizedReturn()).SignedString(),
	)

	return b.String()
}
