package crossval

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"github.com/foldwise/foldwise/core/parallel"
	"github.com/foldwise/foldwise/dataset"
	"github.com/foldwise/foldwise/lookup"
	"github.com/foldwise/foldwise/pkg/errors"
	"github.com/foldwise/foldwise/pkg/log"
)

// Below this many (candidate, fold) cells the search runs sequentially.
const parallelThreshold = 16

// Result stores the full score matrix of a cross-validated search: one row
// per candidate, one column per fold, every score in [0, 1].
type Result struct {
	// Candidates are the hyperparameter values, in the order evaluated.
	Candidates []float64

	// Scores[i][j] is the held-out accuracy of candidate i on fold j.
	Scores [][]float64
}

// NFolds returns the number of folds each candidate was scored on.
func (r *Result) NFolds() int {
	if len(r.Scores) == 0 {
		return 0
	}
	return len(r.Scores[0])
}

// FoldScores returns a copy of the per-fold scores for candidate index i.
func (r *Result) FoldScores(i int) []float64 {
	scores := make([]float64, len(r.Scores[i]))
	copy(scores, r.Scores[i])
	return scores
}

// MeanScore returns the mean held-out score for candidate index i.
func (r *Result) MeanScore(i int) float64 {
	if len(r.Scores[i]) == 0 {
		return 0
	}
	return stat.Mean(r.Scores[i], nil)
}

// StdScore returns the sample standard deviation of the held-out scores for
// candidate index i.
func (r *Result) StdScore(i int) float64 {
	if len(r.Scores[i]) <= 1 {
		return 0
	}
	return stat.StdDev(r.Scores[i], nil)
}

// Best returns the candidate with the highest mean score and that mean.
// Ties are broken toward the numerically lowest candidate value, so the
// selection is deterministic regardless of candidate order.
func (r *Result) Best() (candidate, mean float64) {
	candidate = r.Candidates[0]
	mean = r.MeanScore(0)
	for i := 1; i < len(r.Candidates); i++ {
		m := r.MeanScore(i)
		if m > mean || (m == mean && r.Candidates[i] < candidate) {
			candidate = r.Candidates[i]
			mean = m
		}
	}
	return candidate, mean
}

// CrossValidate scores every candidate age cutoff on every fold produced by
// the splitter. For each fold a lookup classifier is fitted on the training
// records and scored on the held-out records; the returned Result holds the
// complete candidate × fold matrix so callers can aggregate as they wish.
//
// Cells are independent, so they may be scored in parallel; each worker
// writes only its own slot and the result is identical to a sequential run.
// On any error no partial result is returned.
func CrossValidate(table dataset.Table, candidates []float64, splitter Splitter) (result *Result, err error) {
	defer errors.Recover(&err, "crossval.CrossValidate")

	if len(candidates) == 0 {
		return nil, errors.NewValueError("CrossValidate", "no hyperparameter candidates given")
	}

	n := table.Len()
	k := splitter.NSplits()
	if n < k {
		return nil, errors.NewInsufficientDataError("CrossValidate", k, n)
	}

	folds, err := splitter.Split(n)
	if err != nil {
		return nil, err
	}
	k = len(folds)

	logger := log.GetLoggerWithName("crossval")
	logger.Debug("Starting cross-validated search",
		log.OperationKey, log.OperationEvaluate,
		log.RecordsKey, n,
		log.FoldsKey, k,
		log.CandidatesKey, len(candidates),
	)

	// Materialize the train/test tables once per fold; all candidates share
	// them.
	trainTables := make([]dataset.Table, k)
	testTables := make([]dataset.Table, k)
	for i, fold := range folds {
		if trainTables[i], err = table.Subset(fold.TrainIndices); err != nil {
			return nil, err
		}
		if testTables[i], err = table.Subset(fold.TestIndices); err != nil {
			return nil, err
		}
	}

	scores := make([][]float64, len(candidates))
	for i := range scores {
		scores[i] = make([]float64, k)
	}

	cells := len(candidates) * k
	cellErrs := make([]error, cells)

	parallel.ParallelizeWithThreshold(cells, parallelThreshold, func(start, end int) {
		for cell := start; cell < end; cell++ {
			ci, fi := cell/k, cell%k
			cellErrs[cell] = scoreCell(candidates[ci], trainTables[fi], testTables[fi], &scores[ci][fi])
		}
	})

	// Fail fast with no partial results
	for _, cellErr := range cellErrs {
		if cellErr != nil {
			return nil, cellErr
		}
	}

	result = &Result{Candidates: candidates, Scores: scores}

	if logger.Enabled(context.Background(), log.LevelDebug) {
		best, mean := result.Best()
		logger.Debug("Cross-validated search finished",
			log.BestCandidateKey, best,
			log.MeanScoreKey, mean,
		)
	}

	return result, nil
}

// scoreCell fits a classifier for one candidate on one fold's training table
// and writes the held-out accuracy into out.
func scoreCell(cutoff float64, train, test dataset.Table, out *float64) (err error) {
	defer errors.Recover(&err, "crossval.scoreCell")

	clf := lookup.NewClassifier(cutoff)
	if err := clf.Fit(train); err != nil {
		return err
	}

	score, err := clf.Score(test)
	if err != nil {
		return err
	}

	*out = score
	return nil
}

// Evaluate runs a cross-validated search with an unshuffled k-fold
// partition. It fails with a validation error when k is outside [2, n] and
// with an insufficient-data error when the table has fewer than k records.
func Evaluate(table dataset.Table, candidates []float64, k int) (*Result, error) {
	return CrossValidate(table, candidates, NewKFold(k, false, 0))
}
