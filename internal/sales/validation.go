package sales

// HeaderIndex maps column names to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a HeaderIndex from a header row. Names are cleaned
// but otherwise matched exactly. The first occurrence of a duplicated name wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := CleanCell(h)
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = i
	}
	return idx
}

// Cell returns the cleaned value of column name in row, or "" when the
// column is unknown or the row is short.
func (idx HeaderIndex) Cell(row []string, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

// ValidateHeaders checks that every required column exists in the header.
// Returns the header index, or a *SchemaError listing the missing columns in
// FieldSpecs order.
func ValidateHeaders(header []string, specs []FieldSpec) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string

	for _, spec := range specs {
		if !spec.Required {
			continue
		}
		if _, ok := idx[spec.Name]; !ok {
			missing = append(missing, spec.Name)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	return idx, nil
}
