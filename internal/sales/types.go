package sales

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Required column names.
const (
	ColDate         = "Date"
	ColProduct      = "Product"
	ColQuantity     = "Quantity"
	ColPricePerUnit = "Price_per_unit"
)

// FieldType represents the expected data type for a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldNumeric
)

// FieldSpec describes one column of the sales file.
type FieldSpec struct {
	Name     string    // Column header name (must match the file exactly)
	Type     FieldType // Expected data type
	Required bool      // Column must exist in the header
}

// FieldSpecs lists the columns a sales file must carry.
var FieldSpecs = []FieldSpec{
	{Name: ColDate, Type: FieldDate, Required: true},
	{Name: ColProduct, Type: FieldText, Required: true},
	{Name: ColQuantity, Type: FieldNumeric, Required: true},
	{Name: ColPricePerUnit, Type: FieldNumeric, Required: true},
}

// State is the outcome of loading a sales file.
type State int

const (
	StateLoaded State = iota
	StateNotFound
	StateEmpty
	StateSchemaInvalid
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateNotFound:
		return "not_found"
	case StateEmpty:
		return "empty"
	case StateSchemaInvalid:
		return "schema_invalid"
	default:
		return "unknown"
	}
}

// Record is one data row of the sales file.
type Record struct {
	Line         int      // 1-based row number in the source; the header is row 1
	Date         string   // Raw Date cell
	Product      string   // Product name
	Quantity     string   // Raw Quantity cell
	PricePerUnit string   // Raw Price_per_unit cell
	Cells        []string // All cells of the row, in header order

	revenue    decimal.Decimal
	hasRevenue bool
	date       pgtype.Date
}

// Revenue returns the derived revenue and whether it has been computed.
func (r Record) Revenue() (decimal.Decimal, bool) {
	return r.revenue, r.hasRevenue
}

// ParsedDate returns the parsed Date cell. Valid is false until the table's
// dates have been parsed, and stays false for cells that do not parse.
func (r Record) ParsedDate() pgtype.Date {
	return r.date
}

// Table is a loaded sales file. The zero value is not useful; use Load.
//
// A Table is not safe for concurrent use: the revenue and year queries
// write derived values back onto its records.
type Table struct {
	path    string
	state   State
	columns []string
	records []Record

	revenueComputed bool
	datesParsed     bool
}

// NewTable builds a loaded table from records already in memory.
func NewTable(path string, columns []string, records []Record) *Table {
	return &Table{
		path:    path,
		state:   StateLoaded,
		columns: columns,
		records: records,
	}
}

// Path returns the source path the table was loaded from.
func (t *Table) Path() string { return t.path }

// State returns the load outcome.
func (t *Table) State() State { return t.state }

// Loaded reports whether queries can run against the table.
func (t *Table) Loaded() bool { return t.state == StateLoaded }

// Columns returns the header columns in file order. It is populated whenever
// a header was parsed, even if the schema check then failed.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of the records.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// RevenueComputed reports whether the Revenue column has been derived.
func (t *Table) RevenueComputed() bool { return t.revenueComputed }

// DatesParsed reports whether the Date column has been parsed.
func (t *Table) DatesParsed() bool { return t.datesParsed }

// ProductRevenue is one entry of the revenue ranking.
type ProductRevenue struct {
	Product string
	Revenue decimal.Decimal
}

// SellerPair holds the best and worst selling products by total quantity.
type SellerPair struct {
	Best          string
	BestQuantity  decimal.Decimal
	Worst         string
	WorstQuantity decimal.Decimal
}

// Statistic keys returned by QuantityStats.Map.
const (
	StatMean   = "Mean"
	StatMedian = "Median"
	StatStdDev = "Std Dev"
)

// QuantityStats summarizes the Quantity column. All values are NaN when the
// table has no records.
type QuantityStats struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation (divisor N)
}

// Map returns the statistics keyed by StatMean, StatMedian and StatStdDev.
func (s QuantityStats) Map() map[string]float64 {
	return map[string]float64{
		StatMean:   s.Mean,
		StatMedian: s.Median,
		StatStdDev: s.StdDev,
	}
}
