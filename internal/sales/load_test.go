package sales

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Loaded(t *testing.T) {
	tbl := loadCSV(t, exampleCSV)

	assert.Equal(t, StateLoaded, tbl.State())
	assert.True(t, tbl.Loaded())
	assert.Equal(t, []string{"Date", "Product", "Quantity", "Price_per_unit"}, tbl.Columns())
	require.Equal(t, 3, tbl.Len())

	first := tbl.Records()[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "2023-01-01", first.Date)
	assert.Equal(t, "A", first.Product)
	assert.Equal(t, "2", first.Quantity)
	assert.Equal(t, "10", first.PricePerUnit)

	_, computed := first.Revenue()
	assert.False(t, computed, "revenue is derived lazily")
	assert.False(t, first.ParsedDate().Valid, "dates are parsed lazily")
}

func TestLoad_RowCountMatchesDataLines(t *testing.T) {
	content := "Date,Product,Quantity,Price_per_unit\n"
	for i := 0; i < 25; i++ {
		content += "2023-03-01,Widget,1,2.50\n"
	}

	tbl := loadCSV(t, content)
	assert.Equal(t, 25, tbl.Len())
}

func TestLoad_ExtraColumnsAndOrder(t *testing.T) {
	tbl := loadCSV(t, "Region,Price_per_unit,Product,Date,Quantity\nNorth,9.99,Pen,2023-04-01,3\n")

	require.Equal(t, 1, tbl.Len())
	rec := tbl.Records()[0]
	assert.Equal(t, "Pen", rec.Product)
	assert.Equal(t, "9.99", rec.PricePerUnit)
	assert.Equal(t, "3", rec.Quantity)
	assert.Equal(t, []string{"North", "9.99", "Pen", "2023-04-01", "3"}, rec.Cells)
}

func TestLoad_BOMAndBlankLines(t *testing.T) {
	tbl := loadCSV(t, "\ufeffDate,Product,Quantity,Price_per_unit\n\n2023-01-01,A,1,1\n,,,\n2023-01-02,B,2,2\n")

	assert.Equal(t, "Date", tbl.Columns()[0])
	assert.Equal(t, 2, tbl.Len())
}

func TestLoad_DoesNotValidateCells(t *testing.T) {
	tbl := loadCSV(t, "Date,Product,Quantity,Price_per_unit\nyesterday,A,lots,free\n")

	assert.Equal(t, StateLoaded, tbl.State())
	assert.Equal(t, 1, tbl.Len())
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	tbl, err := Load(path)

	require.NotNil(t, tbl)
	assert.Equal(t, StateNotFound, tbl.State())
	assert.Zero(t, tbl.Len())
	assert.Empty(t, tbl.Columns())
	assert.True(t, errors.Is(err, ErrFileNotFound))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
	assert.Equal(t, StateNotFound, loadErr.State)
}

func TestLoad_Empty(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantColumns []string
	}{
		{name: "zero bytes", content: ""},
		{name: "only newlines", content: "\n\n\n"},
		{
			name:        "header only",
			content:     "Date,Product,Quantity,Price_per_unit\n",
			wantColumns: []string{"Date", "Product", "Quantity", "Price_per_unit"},
		},
		{
			name:        "header and blank rows",
			content:     "Date,Product,Quantity,Price_per_unit\n,,,\n",
			wantColumns: []string{"Date", "Product", "Quantity", "Price_per_unit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Load(writeFile(t, "sales.csv", tt.content))

			require.NotNil(t, tbl)
			assert.Equal(t, StateEmpty, tbl.State())
			assert.Zero(t, tbl.Len())
			assert.True(t, errors.Is(err, ErrEmptyFile), "got %v", err)
			if tt.wantColumns != nil {
				assert.Equal(t, tt.wantColumns, tbl.Columns())
			}
		})
	}
}

func TestLoad_SchemaInvalid(t *testing.T) {
	for _, drop := range []string{"Date", "Product", "Quantity", "Price_per_unit"} {
		t.Run("without "+drop, func(t *testing.T) {
			var header, row []string
			values := map[string]string{
				"Date": "2023-01-01", "Product": "A", "Quantity": "1", "Price_per_unit": "2",
			}
			for _, col := range []string{"Date", "Product", "Quantity", "Price_per_unit"} {
				if col == drop {
					continue
				}
				header = append(header, col)
				row = append(row, values[col])
			}
			content := joinCSV(header) + "\n" + joinCSV(row) + "\n"

			tbl, err := Load(writeFile(t, "sales.csv", content))

			require.NotNil(t, tbl)
			assert.Equal(t, StateSchemaInvalid, tbl.State())
			assert.Zero(t, tbl.Len())
			assert.Equal(t, header, tbl.Columns(), "columns survive a failed schema check")

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, []string{drop}, schemaErr.Missing)
			assert.True(t, errors.Is(err, ErrSchemaInvalid))
		})
	}
}

func TestLoad_SchemaCheckedBeforeEmptiness(t *testing.T) {
	tbl, err := Load(writeFile(t, "sales.csv", "Date,Product\n"))

	require.NotNil(t, tbl)
	assert.Equal(t, StateSchemaInvalid, tbl.State())
	assert.True(t, errors.Is(err, ErrSchemaInvalid))
}

func TestLoad_MalformedCSVIsFatal(t *testing.T) {
	tbl, err := Load(writeFile(t, "sales.csv", "Date,Product,Quantity,Price_per_unit\n2023-01-01,\"A,1,2\n"))

	assert.Nil(t, tbl)
	require.Error(t, err)

	var loadErr *LoadError
	assert.False(t, errors.As(err, &loadErr), "parse failures are outside the load taxonomy")
}

func TestLoad_Workbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Date", "Product", "Quantity", "Price_per_unit"},
		{"2023-01-01", "A", 2, 10},
		{"2023-06-01", "B", 1, 100},
		{"2022-01-01", "A", 5, 10},
	})

	tbl, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, "B", tbl.Records()[1].Product)
	assert.Equal(t, "100", tbl.Records()[1].PricePerUnit)

	top, err := tbl.CalculateRevenue()
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Product)
}

func TestLoad_WorkbookMissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Date", "Product", "Quantity"},
		{"2023-01-01", "A", 2},
	})

	tbl, err := Load(path)
	require.NotNil(t, tbl)
	assert.Equal(t, StateSchemaInvalid, tbl.State())
	assert.True(t, errors.Is(err, ErrSchemaInvalid))
}

func TestDescribeLoadError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"not found", &LoadError{Err: ErrFileNotFound}, "FILE004"},
		{"empty", &LoadError{Err: ErrEmptyFile}, "FILE005"},
		{"schema", &LoadError{Err: &SchemaError{Missing: []string{"Date"}}}, "VAL004"},
		{"other", errors.New("disk on fire"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := DescribeLoadError(tt.err)
			assert.Equal(t, tt.wantCode, msg.Code)
			assert.NotEmpty(t, msg.Message)
			assert.NotEmpty(t, msg.Action)
			assert.Contains(t, msg.String(), tt.wantCode)
		})
	}

	assert.Contains(t, DescribeLoadError(&SchemaError{Missing: []string{"Date", "Quantity"}}).Message, "Date, Quantity")
}

func joinCSV(cells []string) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += ","
		}
		out += c
	}
	return out
}
