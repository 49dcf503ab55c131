package perf

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/vkant/perf/date"
)

// this file contains functions to handle the import/export formats.
// Inputs are plain CSV files with a header row; the header names are
// remappable so exports from different brokers can be read without
// preprocessing.

// ColumnMap names the record file columns. Zero-value fields fall back to
// the defaults of DefaultColumns.
type ColumnMap struct {
	Date     string
	Action   string
	Security string
	Quantity string
	Price    string
}

// DefaultColumns returns the default record file header names.
func DefaultColumns() ColumnMap {
	return ColumnMap{Date: "date", Action: "action", Security: "stock", Quantity: "quantity", Price: "price"}
}

func (c ColumnMap) withDefaults() ColumnMap {
	d := DefaultColumns()
	if c.Date == "" {
		c.Date = d.Date
	}
	if c.Action == "" {
		c.Action = d.Action
	}
	if c.Security == "" {
		c.Security = d.Security
	}
	if c.Quantity == "" {
		c.Quantity = d.Quantity
	}
	if c.Price == "" {
		c.Price = d.Price
	}
	return c
}

// headerIndex maps wanted column names to their position in the header row.
func headerIndex(header []string, wanted ...string) (map[string]int, error) {
	index := make(map[string]int, len(wanted))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range wanted {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header %v", name, header)
		}
	}
	return index, nil
}

// ImportRecords reads transaction records from a CSV file and returns them
// as a validated Ledger. All monetary values are tagged with currency.
// A malformed row surfaces as *InvalidRecordError carrying its line number.
func ImportRecords(r io.Reader, cols ColumnMap, currency string) (*Ledger, error) {
	cols = cols.withDefaults()
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read records header: %w", err)
	}
	index, err := headerIndex(header, cols.Date, cols.Action, cols.Security, cols.Quantity, cols.Price)
	if err != nil {
		return nil, err
	}

	var records []TransactionRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read records line %d: %w", line, err)
		}

		day, err := date.Parse(row[index[cols.Date]])
		if err != nil {
			return nil, &InvalidRecordError{Line: line, Reason: err.Error()}
		}
		action, err := ParseAction(row[index[cols.Action]])
		if err != nil {
			return nil, &InvalidRecordError{Line: line, Reason: err.Error()}
		}
		quantity, err := decimal.NewFromString(row[index[cols.Quantity]])
		if err != nil {
			return nil, &InvalidRecordError{Line: line, Reason: fmt.Sprintf("invalid quantity %q", row[index[cols.Quantity]])}
		}
		price, err := decimal.NewFromString(row[index[cols.Price]])
		if err != nil {
			return nil, &InvalidRecordError{Line: line, Reason: fmt.Sprintf("invalid price %q", row[index[cols.Price]])}
		}

		record := TransactionRecord{
			Date:     day,
			Action:   action,
			Security: row[index[cols.Security]],
			Quantity: Q(quantity),
			Price:    M(price, currency),
		}
		if err := record.Validate(); err != nil {
			if ire, ok := err.(*InvalidRecordError); ok {
				ire.Line = line
			}
			return nil, err
		}
		records = append(records, record)
	}

	return NewLedger(records...)
}

// PriceColumns names the prices file columns. Zero-value fields fall back
// to "stock" and "price".
type PriceColumns struct {
	Security string
	Price    string
}

// ImportPrices reads the current valuation price per security from a CSV
// file.
func ImportPrices(r io.Reader, cols PriceColumns, currency string) (map[string]Money, error) {
	if cols.Security == "" {
		cols.Security = "stock"
	}
	if cols.Price == "" {
		cols.Price = "price"
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read prices header: %w", err)
	}
	index, err := headerIndex(header, cols.Security, cols.Price)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]Money)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read prices line %d: %w", line, err)
		}
		price, err := decimal.NewFromString(row[index[cols.Price]])
		if err != nil {
			return nil, fmt.Errorf("invalid price %q on line %d", row[index[cols.Price]], line)
		}
		prices[row[index[cols.Security]]] = M(price, currency)
	}
	return prices, nil
}

// ExportMatchedLots writes enriched matched lots as a CSV file, one row per
// lot, in a layout suitable for spreadsheet analysis.
func ExportMatchedLots(w io.Writer, lots []MatchedLot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"stock", "buy_date", "buy_price", "sell_date", "sell_price", "quantity", "realized", "profit", "pnl", "duration", "cagr"}); err != nil {
		return err
	}
	for _, l := range lots {
		row := []string{
			l.Security,
			l.BuyDate.String(),
			l.BuyPrice.value.String(),
			l.SellDate.String(),
			l.SellPrice.value.String(),
			l.Quantity.String(),
			fmt.Sprintf("%t", l.Realized),
			l.Profit.value.String(),
			fmt.Sprintf("%.6f", l.Return),
			fmt.Sprintf("%.6f", l.Years),
			fmt.Sprintf("%.6f", l.CAGR),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
