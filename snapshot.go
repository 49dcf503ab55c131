package perf

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vkant/perf/date"
)

// Snapshot is the state of the whole portfolio on one date, read from a
// dated folder of broker export files: total acquisition cost and total
// market value.
type Snapshot struct {
	Date  date.Date
	Cost  Money
	Value Money
}

// Gain returns the snapshot's unrealized gain, value minus cost.
func (s Snapshot) Gain() Money { return s.Value.Sub(s.Cost) }

// Return returns the snapshot's gain over cost as a ratio, or 0 when the
// cost is zero.
func (s Snapshot) Return() float64 {
	if s.Cost.IsZero() {
		return 0
	}
	return s.Gain().AsFloat() / s.Cost.AsFloat()
}

// ReadSnapshot parses one broker export file. The export is a CSV with
// "Symbol", "Cost basis" and "Total" columns where the summary row carries
// an empty symbol.
func ReadSnapshot(r io.Reader, currency string) (cost, value Money, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return cost, value, fmt.Errorf("cannot read export header: %w", err)
	}
	index, err := headerIndex(header, "Symbol", "Cost basis", "Total")
	if err != nil {
		return cost, value, err
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return cost, value, fmt.Errorf("cannot read export row: %w", err)
		}
		if len(row) <= index["Total"] || row[index["Symbol"]] != "" {
			continue
		}
		c, err := parseBrokerAmount(row[index["Cost basis"]])
		if err != nil {
			return cost, value, err
		}
		v, err := parseBrokerAmount(row[index["Total"]])
		if err != nil {
			return cost, value, err
		}
		cost = M(c, currency)
		value = M(v, currency)
	}
	return cost, value, nil
}

// parseBrokerAmount parses an amount as exported by the broker, tolerating
// currency signs and thousands separators.
func parseBrokerAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if clean == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q in export: %w", s, err)
	}
	return d, nil
}

// CollectSnapshots walks a snapshot root laid out as one folder per date
// (named YYYY-MM-DD) containing broker export files, and returns one
// Snapshot per dated folder in chronological order. Folders whose name is
// not a date are skipped; a dated folder with several export files sums
// them.
func CollectSnapshots(root, currency string) ([]Snapshot, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot root %q: %w", root, err)
	}

	var snapshots []Snapshot
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		day, err := date.Parse(entry.Name())
		if err != nil {
			continue
		}

		files, err := filepath.Glob(filepath.Join(root, entry.Name(), "*.csv"))
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			continue
		}

		snapshot := Snapshot{Date: day, Cost: M(0, currency), Value: M(0, currency)}
		for _, file := range files {
			f, err := os.Open(file)
			if err != nil {
				return nil, err
			}
			cost, value, err := ReadSnapshot(f, currency)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			snapshot.Cost = snapshot.Cost.Add(cost)
			snapshot.Value = snapshot.Value.Add(value)
		}
		snapshots = append(snapshots, snapshot)
	}

	slices.SortFunc(snapshots, func(a, b Snapshot) int { return a.Date.Compare(b.Date) })
	return snapshots, nil
}
