package crossval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwise/foldwise/dataset"
	"github.com/foldwise/foldwise/pkg/errors"
)

// evalTable builds the ten-record dataset with binary attribute values and
// ages at 5 or 70, so every cutoff candidate between them separates children
// from adults.
func evalTable() dataset.Table {
	return dataset.NewTable([]dataset.Record{
		{Class: 1, Sex: "M", SibSp: 0, ParCh: 0, Age: 5, Survived: 1},
		{Class: 1, Sex: "F", SibSp: 0, ParCh: 1, Age: 70, Survived: 1},
		{Class: 2, Sex: "M", SibSp: 1, ParCh: 0, Age: 5, Survived: 0},
		{Class: 2, Sex: "F", SibSp: 1, ParCh: 1, Age: 70, Survived: 0},
		{Class: 1, Sex: "M", SibSp: 0, ParCh: 0, Age: 70, Survived: 0},
		{Class: 1, Sex: "F", SibSp: 0, ParCh: 1, Age: 5, Survived: 1},
		{Class: 2, Sex: "M", SibSp: 1, ParCh: 0, Age: 70, Survived: 1},
		{Class: 2, Sex: "F", SibSp: 1, ParCh: 1, Age: 5, Survived: 0},
		{Class: 1, Sex: "M", SibSp: 0, ParCh: 0, Age: 5, Survived: 1},
		{Class: 2, Sex: "F", SibSp: 1, ParCh: 1, Age: 70, Survived: 1},
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Full score matrix", func(t *testing.T) {
		result, err := Evaluate(evalTable(), []float64{10, 50}, 5)
		require.NoError(t, err)

		require.Equal(t, []float64{10, 50}, result.Candidates)
		require.Equal(t, 2, len(result.Scores))
		assert.Equal(t, 5, result.NFolds())

		for i := range result.Scores {
			require.Equal(t, 5, len(result.Scores[i]), "candidate %d", i)
			for j, score := range result.Scores[i] {
				assert.GreaterOrEqual(t, score, 0.0, "cell (%d,%d)", i, j)
				assert.LessOrEqual(t, score, 1.0, "cell (%d,%d)", i, j)
				// With two held-out records per fold every score is a
				// multiple of 1/2
				assert.Equal(t, math.Trunc(score*2), score*2, "cell (%d,%d)", i, j)
			}
		}
	})

	t.Run("Repeated runs are identical", func(t *testing.T) {
		first, err := Evaluate(evalTable(), []float64{10, 50}, 5)
		require.NoError(t, err)
		second, err := Evaluate(evalTable(), []float64{10, 50}, 5)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Parallel execution matches sequential scoring", func(t *testing.T) {
		// 4 candidates x 5 folds crosses the parallel threshold
		candidates := []float64{10, 20, 50, 80}
		parallelRun, err := Evaluate(evalTable(), candidates, 5)
		require.NoError(t, err)

		table := evalTable()
		kf := NewKFold(5, false, 0)
		folds, err := kf.Split(table.Len())
		require.NoError(t, err)

		for ci, cutoff := range candidates {
			for fi, fold := range folds {
				train, err := table.Subset(fold.TrainIndices)
				require.NoError(t, err)
				test, err := table.Subset(fold.TestIndices)
				require.NoError(t, err)

				var want float64
				require.NoError(t, scoreCell(cutoff, train, test, &want))
				assert.Equal(t, want, parallelRun.Scores[ci][fi], "cell (%d,%d)", ci, fi)
			}
		}
	})

	t.Run("Leave-one-out boundary", func(t *testing.T) {
		table := evalTable()
		result, err := CrossValidate(table, []float64{10}, NewLeaveOneOut(table.Len()))
		require.NoError(t, err)

		require.Equal(t, 10, result.NFolds())
		for _, score := range result.Scores[0] {
			// Single held-out record: score is 0 or 1
			assert.True(t, score == 0 || score == 1)
		}
	})

	t.Run("Insufficient data", func(t *testing.T) {
		small := dataset.NewTable([]dataset.Record{
			{Class: 1, Sex: "M", Age: 5, Survived: 1},
			{Class: 1, Sex: "F", Age: 70, Survived: 0},
			{Class: 2, Sex: "M", Age: 5, Survived: 1},
		})

		_, err := Evaluate(small, []float64{10}, 5)
		require.Error(t, err)

		var insErr *errors.InsufficientDataError
		require.True(t, errors.As(err, &insErr))
		assert.Equal(t, 5, insErr.Required)
		assert.Equal(t, 3, insErr.Got)
	})

	t.Run("Invalid fold count", func(t *testing.T) {
		_, err := Evaluate(evalTable(), []float64{10}, 1)
		require.Error(t, err)

		var valErr *errors.ValidationError
		assert.True(t, errors.As(err, &valErr))
	})

	t.Run("No candidates", func(t *testing.T) {
		_, err := Evaluate(evalTable(), nil, 5)
		assert.Error(t, err)
	})
}

func TestResult(t *testing.T) {
	t.Run("Mean and std", func(t *testing.T) {
		result := &Result{
			Candidates: []float64{10},
			Scores:     [][]float64{{0.8, 0.85, 0.75, 0.9, 0.7}},
		}

		assert.InDelta(t, 0.8, result.MeanScore(0), 1e-12)

		// Sample standard deviation of the five scores
		wantVar := (0.0 + 0.0025 + 0.0025 + 0.01 + 0.01) / 4
		assert.InDelta(t, math.Sqrt(wantVar), result.StdScore(0), 1e-12)
	})

	t.Run("Single fold has zero std", func(t *testing.T) {
		result := &Result{Candidates: []float64{10}, Scores: [][]float64{{0.5}}}
		assert.Equal(t, 0.0, result.StdScore(0))
	})

	t.Run("Best picks highest mean", func(t *testing.T) {
		result := &Result{
			Candidates: []float64{10, 50, 80},
			Scores: [][]float64{
				{0.5, 0.5},
				{0.9, 0.7},
				{0.6, 0.6},
			},
		}

		best, mean := result.Best()
		assert.Equal(t, 50.0, best)
		assert.InDelta(t, 0.8, mean, 1e-12)
	})

	t.Run("Best breaks ties toward lowest candidate", func(t *testing.T) {
		result := &Result{
			Candidates: []float64{80, 10},
			Scores: [][]float64{
				{0.7, 0.7},
				{0.7, 0.7},
			},
		}

		best, _ := result.Best()
		assert.Equal(t, 10.0, best)
	})

	t.Run("FoldScores returns a copy", func(t *testing.T) {
		result := &Result{Candidates: []float64{10}, Scores: [][]float64{{0.1, 0.2}}}

		scores := result.FoldScores(0)
		scores[0] = 0.9
		assert.Equal(t, 0.1, result.Scores[0][0])
	})
}
