package sales

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// exampleCSV is the three-row table used throughout the query tests.
const exampleCSV = `Date,Product,Quantity,Price_per_unit
2023-01-01,A,2,10
2023-06-01,B,1,100
2022-01-01,A,5,10
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func loadCSV(t *testing.T, content string) *Table {
	t.Helper()
	tbl, err := Load(writeFile(t, "sales.csv", content))
	require.NoError(t, err)
	require.NotNil(t, tbl)
	return tbl
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
