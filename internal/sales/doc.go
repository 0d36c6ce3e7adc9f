// Package sales loads a table of sales records and answers the report queries
// over it.
//
// # Loading
//
// [Load] reads a CSV file (or the first sheet of an .xlsx workbook) with a
// header row. The header must contain the columns listed in [FieldSpecs];
// additional columns are kept on each [Record] but otherwise ignored. Load
// never panics on the expected failure modes. A missing file, an empty file,
// or a file without the required columns yields a [Table] in the matching
// [State] together with a [*LoadError] for the caller to log:
//
//	t, err := sales.Load("sales_data.csv")
//	if t == nil {
//	    return err // unexpected I/O or parse failure
//	}
//	if err != nil {
//	    slog.Warn("sales data unavailable", "error", err)
//	}
//
// Cell values are not validated at load time. A malformed Quantity or
// Price_per_unit surfaces as a [*CellError] from the query that needs it.
//
// # Queries
//
// Every query on a table that is not [StateLoaded] returns [ErrUnavailable]
// without doing any work:
//
//   - [Table.TopRevenue] ranks products by summed Quantity × Price_per_unit
//   - [Table.MaxMinSales] picks the best and worst seller by total quantity
//   - [Table.FilterByYear] returns the records dated in a given year
//   - [Table.QuantityStatistics] computes mean, median and population std dev
//
// Grouping keeps products in the order they first appear in the file, and
// every tie is resolved in favour of the earlier product.
package sales
