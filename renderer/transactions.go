// Package renderer turns computed performance reports into markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/vkant/perf"
)

// TransactionsMarkdown renders enriched matched lots as a markdown table,
// one row per lot.
func TransactionsMarkdown(lots []perf.MatchedLot) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Matched Transactions\n\n")
	fmt.Fprintln(&b, "| Security | Buy Date | Buy Price | Sell Date | Sell Price | Quantity | Realized | Profit | Return | CAGR |")
	fmt.Fprintln(&b, "|:---|:---|---:|:---|---:|---:|:---|---:|---:|---:|")

	for _, l := range lots {
		realized := "yes"
		if !l.Realized {
			realized = "no"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			l.Security,
			l.BuyDate, l.BuyPrice,
			l.SellDate, l.SellPrice,
			l.Quantity,
			realized,
			l.Profit.SignedString(),
			perf.Percent(100*l.Return).SignedString(),
			perf.Percent(100*l.CAGR).SignedString(),
		)
	}

	return b.String()
}
