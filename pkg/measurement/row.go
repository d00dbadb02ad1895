package measurement

import "math"

// Row is one measurement as read from the CSV files.
// ThroughputKbps keeps the raw cell text: it is converted only when a view needs numbers.
type Row struct {
	Protocol       string
	Policy         string  // "" when the cell is empty or a missing marker
	MessageSizeKB  float64 // NaN when the cell is empty, a missing marker or not a number
	ThroughputKbps string
}

// Table is an ordered set of rows. Filtering returns a new table and never touches the receiver.
type Table struct {
	Rows []Row

	sizeErr error // first MessageSizeKB cell that is not a number
}

func (t Table) Len() int {
	return len(t.Rows)
}

// CheckSizes returns an error when a loaded MessageSizeKB cell was neither a number nor a missing marker.
// Such a column cannot be compared against sizes, so no size filter can be applied to the table.
func (t Table) CheckSizes() error {
	return t.sizeErr
}

// Predicate selects rows.
type Predicate func(Row) bool

// Where returns the rows matching every predicate, in their original order.
func (t Table) Where(preds ...Predicate) Table {
	var selected []Row
	for _, r := range t.Rows {
		if matchAll(r, preds) {
			selected = append(selected, r)
		}
	}
	return Table{Rows: selected}
}

func matchAll(r Row, preds []Predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

func ProtocolIs(protocol string) Predicate {
	return func(r Row) bool {
		return r.Protocol == protocol
	}
}

// SizeBetween matches message sizes in [min, max].
func SizeBetween(min, max float64) Predicate {
	return func(r Row) bool {
		return r.MessageSizeKB >= min && r.MessageSizeKB <= max
	}
}

// SizeIn matches message sizes equal to one of sizes.
func SizeIn(sizes ...float64) Predicate {
	return func(r Row) bool {
		return floatInSlice(r.MessageSizeKB, sizes)
	}
}

// True if the float value is in the slice
func floatInSlice(a float64, list []float64) bool {
	if math.IsNaN(a) {
		return false
	}
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}
