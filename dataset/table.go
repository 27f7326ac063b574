package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/foldwise/foldwise/pkg/errors"
)

// Table is an ordered, read-only sequence of records. The zero value is an
// empty table. Tables copy their backing slice on construction and on every
// accessor that exposes records, so a loaded dataset cannot be mutated
// through aliasing.
type Table struct {
	records []Record
}

// NewTable builds a table from the given records. The slice is copied.
func NewTable(records []Record) Table {
	copied := make([]Record, len(records))
	copy(copied, records)
	return Table{records: copied}
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.records)
}

// At returns the record at index i. It panics if i is out of range, matching
// slice semantics.
func (t Table) At(i int) Record {
	return t.records[i]
}

// Records returns a copy of the underlying records.
func (t Table) Records() []Record {
	copied := make([]Record, len(t.records))
	copy(copied, t.records)
	return copied
}

// Subset returns a new table containing the records at the given indices,
// in the given order. Indices outside [0, Len) yield a validation error.
func (t Table) Subset(indices []int) (Table, error) {
	records := make([]Record, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(t.records) {
			return Table{}, errors.NewValidationError("indices",
				"index out of range for table", idx)
		}
		records[i] = t.records[idx]
	}
	return Table{records: records}, nil
}

// Select returns a new table with the records satisfying the predicate,
// preserving order.
func (t Table) Select(pred Predicate) Table {
	var records []Record
	for _, r := range t.records {
		if pred(r) {
			records = append(records, r)
		}
	}
	return Table{records: records}
}

// Labels returns the survival labels as a column vector, in table order.
// Returns nil for an empty table, matching gonum's zero-length vector rules.
func (t Table) Labels() *mat.VecDense {
	if len(t.records) == 0 {
		return nil
	}
	labels := mat.NewVecDense(len(t.records), nil)
	for i, r := range t.records {
		labels.SetVec(i, float64(r.Survived))
	}
	return labels
}
