package sales

// FilterByYear returns a loaded table holding the records dated in year, in
// their original order. The result may be empty.
//
// The first call parses the Date column of the whole table and keeps the
// parsed dates. Cells that do not parse never match any year.
func (t *Table) FilterByYear(year int) (*Table, error) {
	if !t.Loaded() {
		return nil, ErrUnavailable
	}

	t.parseDates()

	matched := make([]Record, 0)
	for _, r := range t.records {
		if r.date.Valid && r.date.Time.Year() == year {
			matched = append(matched, r)
		}
	}

	sub := NewTable(t.path, t.columns, matched)
	sub.revenueComputed = t.revenueComputed
	sub.datesParsed = true
	return sub, nil
}

func (t *Table) parseDates() {
	if t.datesParsed {
		return
	}
	for i := range t.records {
		t.records[i].date = ToDate(t.records[i].Date)
	}
	t.datesParsed = true
}
