package dataprocessing

// Record is one row of the ranking sheet: an ordered mapping from column
// name to cell value. Column order is insertion order.
type Record struct {
	columns []string
	values  map[string]string
}

// NewRecord builds a record from a header and the matching cells.
// Missing trailing cells are empty; a repeated column name keeps its first
// position and its last value.
func NewRecord(columns, cells []string) *Record {
	r := &Record{
		columns: make([]string, 0, len(columns)),
		values:  make(map[string]string, len(columns)),
	}
	for i, column := range columns {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		r.Set(column, value)
	}
	return r
}

// Get returns the value of column, or "" if the record has no such column
func (r *Record) Get(column string) string {
	return r.values[column]
}

// Lookup returns the value of column and whether the column exists
func (r *Record) Lookup(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Set overwrites column in place, or appends it as the last column
func (r *Record) Set(column, value string) {
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// Columns returns the column names in order
func (r *Record) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Values returns the cell values in column order
func (r *Record) Values() []string {
	out := make([]string, len(r.columns))
	for i, column := range r.columns {
		out[i] = r.values[column]
	}
	return out
}

// Len returns the number of columns
func (r *Record) Len() int {
	return len(r.columns)
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	return NewRecord(r.columns, r.Values())
}

// Table is the parsed ranking sheet
type Table struct {
	Header  []string
	Records []*Record
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether the header contains column
func (t *Table) HasColumn(column string) bool {
	for _, h := range t.Header {
		if h == column {
			return true
		}
	}
	return false
}
