// Package lookup implements a similarity-based table-lookup classifier.
//
// The classifier keeps its training data as a reference table. A query
// record is matched against the table with a conjunctive similarity
// predicate: exact equality on the categorical and count attributes, and
// agreement on which side of an age cutoff the record falls. The predicted
// label is the majority label among the matching rows, falling back to the
// majority label of the whole table when nothing matches. The age cutoff is
// the classifier's single hyperparameter; see the crossval package for
// selecting it by k-fold cross-validation.
package lookup

import (
	"sort"

	"github.com/foldwise/foldwise/core/model"
	"github.com/foldwise/foldwise/dataset"
	"github.com/foldwise/foldwise/metrics"
	"github.com/foldwise/foldwise/pkg/errors"
)

// Classifier predicts a binary label by looking up similar records in a
// reference table.
type Classifier struct {
	model.BaseEstimator

	// AgeCutoff is the similarity hyperparameter: two records agree on age
	// when both lie strictly below the cutoff or both at or above it.
	AgeCutoff float64

	table        dataset.Table
	defaultLabel int
}

var _ model.Classifier = (*Classifier)(nil)
var _ model.ParameterGetter = (*Classifier)(nil)

// NewClassifier creates a classifier with the given age cutoff.
func NewClassifier(ageCutoff float64) *Classifier {
	return &Classifier{AgeCutoff: ageCutoff}
}

// Fit stores t as the reference table and computes the default label as the
// majority label of the whole table. The table must be non-empty: the
// default label is undefined otherwise.
func (c *Classifier) Fit(t dataset.Table) error {
	if t.Len() == 0 {
		return errors.NewModelError("LookupClassifier.Fit", "empty reference table", errors.ErrEmptyTable)
	}

	c.table = t
	c.defaultLabel = majorityLabel(t, "LookupClassifier.Fit")
	c.SetFitted()
	return nil
}

// Predict returns the predicted label for a single record.
//
// Rows similar to the query under the age cutoff are selected from the
// reference table; the majority label of that subset wins. When no row
// matches, the table-wide default label is returned.
func (c *Classifier) Predict(r dataset.Record) (int, error) {
	if !c.IsFitted() {
		return 0, errors.NewNotFittedError("LookupClassifier", "Predict")
	}

	matches := c.table.Select(SimilarTo(r, c.AgeCutoff))
	if matches.Len() == 0 {
		return c.defaultLabel, nil
	}
	return majorityLabel(matches, "LookupClassifier.Predict"), nil
}

// PredictBatch returns predicted labels for every record in t, in order.
func (c *Classifier) PredictBatch(t dataset.Table) ([]int, error) {
	if !c.IsFitted() {
		return nil, errors.NewNotFittedError("LookupClassifier", "PredictBatch")
	}

	preds := make([]int, t.Len())
	for i := 0; i < t.Len(); i++ {
		label, err := c.Predict(t.At(i))
		if err != nil {
			return nil, err
		}
		preds[i] = label
	}
	return preds, nil
}

// Score returns the fraction of records in t predicted correctly, in [0, 1].
func (c *Classifier) Score(t dataset.Table) (float64, error) {
	if !c.IsFitted() {
		return 0, errors.NewNotFittedError("LookupClassifier", "Score")
	}
	if t.Len() == 0 {
		return 0, errors.NewValueError("LookupClassifier.Score", "empty evaluation table")
	}

	preds, err := c.PredictBatch(t)
	if err != nil {
		return 0, err
	}

	truth := make([]int, t.Len())
	for i := 0; i < t.Len(); i++ {
		truth[i] = t.At(i).Survived
	}

	return metrics.AccuracyFromLabels(truth, preds)
}

// GetParams returns the classifier's hyperparameters.
func (c *Classifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"age_cutoff": c.AgeCutoff,
	}
}

// PredictLabel is the pure form of the lookup prediction: it computes the
// label for query against reference under the given age cutoff, with no
// state and no side effects beyond a possible tie warning. The reference
// table must be non-empty.
func PredictLabel(query dataset.Record, reference dataset.Table, ageCutoff float64) (int, error) {
	if reference.Len() == 0 {
		return 0, errors.NewModelError("lookup.PredictLabel", "empty reference table", errors.ErrEmptyTable)
	}

	matches := reference.Select(SimilarTo(query, ageCutoff))
	if matches.Len() == 0 {
		return majorityLabel(reference, "lookup.PredictLabel"), nil
	}
	return majorityLabel(matches, "lookup.PredictLabel"), nil
}

// SimilarTo returns the conjunctive predicate selecting records similar to
// query: equal class, sex and family counts, and the same side of the age
// cutoff.
func SimilarTo(query dataset.Record, ageCutoff float64) dataset.Predicate {
	return dataset.And(
		dataset.ClassEquals(query.Class),
		dataset.SexEquals(query.Sex),
		dataset.SibSpEquals(query.SibSp),
		dataset.ParChEquals(query.ParCh),
		dataset.AgeSide(ageCutoff, query.Age < ageCutoff),
	)
}

// Similar reports whether two records are similar under the age cutoff.
func Similar(a, b dataset.Record, ageCutoff float64) bool {
	return SimilarTo(a, ageCutoff)(b)
}

// majorityLabel returns the most frequent label in t. Ties are broken
// deterministically toward the numerically lowest label; a warning is
// emitted when a tie was actually broken.
func majorityLabel(t dataset.Table, op string) int {
	counts := make(map[int]int)
	for i := 0; i < t.Len(); i++ {
		counts[t.At(i).Survived]++
	}

	labels := make([]int, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}

	var tied []int
	for _, label := range labels {
		if counts[label] == counts[best] {
			tied = append(tied, label)
		}
	}
	if len(tied) > 1 {
		errors.Warn(errors.NewMajorityTieWarning(op, tied, best))
	}

	return best
}
