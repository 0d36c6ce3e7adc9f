package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads the sales file at path.
//
// For a missing file, an empty file, or a header without the required
// columns, Load returns a table in the corresponding state and a *LoadError.
// Any other failure returns a nil table and the underlying error.
func Load(path string) (*Table, error) {
	t := &Table{path: path}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return t.fail(StateNotFound, ErrFileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return t.fail(StateEmpty, ErrEmptyFile)
	}

	rows, err := readRows(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return t.fail(StateEmpty, ErrEmptyFile)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = CleanCell(h)
	}
	t.columns = header

	idx, err := ValidateHeaders(header, FieldSpecs)
	if err != nil {
		return t.fail(StateSchemaInvalid, err)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, Record{
			Line:         i + 2,
			Date:         idx.Cell(row, ColDate),
			Product:      idx.Cell(row, ColProduct),
			Quantity:     idx.Cell(row, ColQuantity),
			PricePerUnit: idx.Cell(row, ColPricePerUnit),
			Cells:        row,
		})
	}
	if len(records) == 0 {
		return t.fail(StateEmpty, ErrEmptyFile)
	}

	t.records = records
	t.state = StateLoaded
	return t, nil
}

// fail moves t into state and returns it with a LoadError. Records are
// dropped; columns are kept so the caller can still show the header.
func (t *Table) fail(state State, err error) (*Table, error) {
	t.state = state
	t.records = nil
	return t, &LoadError{Path: t.path, State: state, Err: err}
}

// readRows returns every row of the file, header first.
func readRows(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readWorkbook(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseCSV(f)
}

// parseCSV reads comma-separated rows. A UTF-8 BOM is dropped and invalid
// UTF-8 is replaced with U+FFFD. Rows may be ragged; short rows read as
// empty cells for the missing columns.
func parseCSV(r io.Reader) ([][]string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	return rows, nil
}

// readWorkbook reads the rows of the first sheet of an .xlsx workbook.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	// GetRows keeps leading empty rows; the header is the first non-blank one
	for len(rows) > 0 && isBlankRow(rows[0]) {
		rows = rows[1:]
	}
	return rows, nil
}
