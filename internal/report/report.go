// Package report prints the sales report: the discovered columns and the four
// query results, each under a fixed label.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/JonMunkholm/salesreport/internal/sales"
)

// Section labels, in print order.
const (
	LabelColumns  = "Columns:"
	LabelRevenue  = "Top %d Products by Revenue:"
	LabelSellers  = "Best and Worst Selling Products:"
	LabelYear     = "Sales in %d:"
	LabelStats    = "Quantity Statistics:"
	unavailable   = "None"
	noMatchingRow = "(no rows)"
)

// Options controls the parameterised sections.
type Options struct {
	TopN int // size of the revenue ranking
	Year int // year for the filter section
}

// Columns prints the header columns of t, if a header was parsed.
func Columns(w io.Writer, t *sales.Table) error {
	cols := t.Columns()
	if len(cols) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s [%s]\n", LabelColumns, strings.Join(cols, ", "))
	return err
}

// Write runs the four queries against t and prints their results in order.
// A query that is unavailable prints "None". Any other query error stops the
// report and is returned.
func Write(w io.Writer, t *sales.Table, opts Options) error {
	if opts.TopN <= 0 {
		opts.TopN = sales.DefaultTopN
	}

	steps := []func(io.Writer, *sales.Table, Options) error{
		writeRevenue,
		writeSellers,
		writeYear,
		writeStats,
	}
	for _, step := range steps {
		if err := step(w, t, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeRevenue(w io.Writer, t *sales.Table, opts Options) error {
	label := fmt.Sprintf(LabelRevenue, opts.TopN)

	top, err := t.TopRevenue(opts.TopN)
	if errors.Is(err, sales.ErrUnavailable) {
		return line(w, label, unavailable)
	}
	if err != nil {
		return err
	}

	if err := line(w, label, ""); err != nil {
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "  Product\tRevenue")
	for _, r := range top {
		fmt.Fprintf(tw, "  %s\t%s\n", r.Product, r.Revenue.String())
	}
	return tw.Flush()
}

func writeSellers(w io.Writer, t *sales.Table, _ Options) error {
	pair, err := t.MaxMinSales()
	switch {
	case errors.Is(err, sales.ErrUnavailable):
		return line(w, LabelSellers, unavailable)
	case err != nil:
		return err
	}
	return line(w, LabelSellers, fmt.Sprintf("(%s, %s)", pair.Best, pair.Worst))
}

func writeYear(w io.Writer, t *sales.Table, opts Options) error {
	label := fmt.Sprintf(LabelYear, opts.Year)

	sub, err := t.FilterByYear(opts.Year)
	if errors.Is(err, sales.ErrUnavailable) {
		return line(w, label, unavailable)
	}
	if err != nil {
		return err
	}
	if sub.Len() == 0 {
		return line(w, label, noMatchingRow)
	}

	if err := line(w, label, ""); err != nil {
		return err
	}

	tw := newTable(w)
	header := []string{sales.ColDate, sales.ColProduct, sales.ColQuantity, sales.ColPricePerUnit}
	if sub.RevenueComputed() {
		header = append(header, "Revenue")
	}
	fmt.Fprintf(tw, "  %s\n", strings.Join(header, "\t"))

	for _, r := range sub.Records() {
		cells := []string{formatDate(r), r.Product, r.Quantity, r.PricePerUnit}
		if rev, ok := r.Revenue(); ok {
			cells = append(cells, rev.String())
		}
		fmt.Fprintf(tw, "  %s\n", strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func writeStats(w io.Writer, t *sales.Table, _ Options) error {
	stats, err := t.QuantityStatistics()
	switch {
	case errors.Is(err, sales.ErrUnavailable):
		return line(w, LabelStats, unavailable)
	case err != nil:
		return err
	}

	body := fmt.Sprintf("{%s: %s, %s: %s, %s: %s}",
		sales.StatMean, formatFloat(stats.Mean),
		sales.StatMedian, formatFloat(stats.Median),
		sales.StatStdDev, formatFloat(stats.StdDev),
	)
	return line(w, LabelStats, body)
}

func line(w io.Writer, label, body string) error {
	var err error
	if body == "" {
		_, err = fmt.Fprintln(w, label)
	} else {
		_, err = fmt.Fprintf(w, "%s %s\n", label, body)
	}
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// formatDate prints the parsed date when there is one, else the raw cell.
func formatDate(r sales.Record) string {
	if d := r.ParsedDate(); d.Valid {
		return d.Time.Format("2006-01-02")
	}
	return r.Date
}

// formatFloat rounds to three decimals and drops trailing zeros.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
