// Package dataset provides the tabular data model used by foldwise: typed
// passenger records, read-only tables, and predicate-based row selection.
package dataset

// Record is a single labeled observation. Attributes mirror the Titanic
// passenger schema: categorical class and sex, sibling/spouse and
// parent/child counts, age, and the binary survival label.
type Record struct {
	// Class is the passenger class (1, 2 or 3).
	Class int

	// Sex is the categorical sex attribute ("male" or "female").
	Sex string

	// SibSp is the number of siblings and spouses aboard.
	SibSp int

	// ParCh is the number of parents and children aboard.
	ParCh int

	// Age in years. May be fractional for infants.
	Age float64

	// Survived is the binary outcome label (0 or 1).
	Survived int
}

// Predicate reports whether a record satisfies a row-selection criterion.
// Predicates compose with And to express conjunctive equality/comparison
// filters over named fields.
type Predicate func(Record) bool

// And returns a predicate satisfied only when every given predicate is.
func And(preds ...Predicate) Predicate {
	return func(r Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// ClassEquals matches records with the given passenger class.
func ClassEquals(class int) Predicate {
	return func(r Record) bool { return r.Class == class }
}

// SexEquals matches records with the given sex attribute.
func SexEquals(sex string) Predicate {
	return func(r Record) bool { return r.Sex == sex }
}

// SibSpEquals matches records with the given sibling/spouse count.
func SibSpEquals(n int) Predicate {
	return func(r Record) bool { return r.SibSp == n }
}

// ParChEquals matches records with the given parent/child count.
func ParChEquals(n int) Predicate {
	return func(r Record) bool { return r.ParCh == n }
}

// AgeBelow matches records strictly younger than the cutoff.
func AgeBelow(cutoff float64) Predicate {
	return func(r Record) bool { return r.Age < cutoff }
}

// AgeSide matches records on the same side of the cutoff as the below flag:
// below==true selects Age < cutoff, below==false selects Age >= cutoff.
func AgeSide(cutoff float64, below bool) Predicate {
	return func(r Record) bool { return (r.Age < cutoff) == below }
}
