package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/foldwise/foldwise/pkg/errors"
)

func vec(values ...float64) *mat.VecDense {
	return mat.NewVecDense(len(values), values)
}

func TestAccuracy(t *testing.T) {
	t.Run("Perfect prediction", func(t *testing.T) {
		acc, err := Accuracy(vec(0, 1, 1, 0), vec(0, 1, 1, 0))
		require.NoError(t, err)
		assert.Equal(t, 1.0, acc)
	})

	t.Run("Partial agreement", func(t *testing.T) {
		// 3 out of 4 correct
		acc, err := Accuracy(vec(0, 1, 1, 0), vec(0, 1, 0, 0))
		require.NoError(t, err)
		assert.InDelta(t, 0.75, acc, 1e-12)
	})

	t.Run("Empty vector", func(t *testing.T) {
		_, err := Accuracy(new(mat.VecDense), new(mat.VecDense))
		assert.Error(t, err)
	})

	t.Run("Dimension mismatch", func(t *testing.T) {
		_, err := Accuracy(vec(0, 1), vec(0, 1, 1))
		require.Error(t, err)

		var dimErr *errors.DimensionError
		assert.True(t, errors.As(err, &dimErr))
	})
}

func TestErrorRate(t *testing.T) {
	rate, err := ErrorRate(vec(0, 1, 1, 0), vec(1, 1, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, rate, 1e-12)
}

func TestAccuracyFromLabels(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		acc, err := AccuracyFromLabels([]int{0, 1, 1, 0, 1}, []int{0, 1, 0, 0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0.8, acc, 1e-12)
	})

	t.Run("Empty slice", func(t *testing.T) {
		_, err := AccuracyFromLabels(nil, nil)
		assert.Error(t, err)
	})

	t.Run("Length mismatch", func(t *testing.T) {
		_, err := AccuracyFromLabels([]int{0, 1}, []int{0})
		assert.Error(t, err)
	})
}

func TestConfusionMatrix(t *testing.T) {
	t.Run("Binary labels", func(t *testing.T) {
		cm, err := ConfusionMatrix(vec(0, 0, 1, 1, 1), vec(0, 1, 1, 1, 0))
		require.NoError(t, err)

		rows, cols := cm.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 2, cols)

		assert.Equal(t, 1.0, cm.At(0, 0)) // true 0, predicted 0
		assert.Equal(t, 1.0, cm.At(0, 1)) // true 0, predicted 1
		assert.Equal(t, 1.0, cm.At(1, 0)) // true 1, predicted 0
		assert.Equal(t, 2.0, cm.At(1, 1)) // true 1, predicted 1
	})

	t.Run("Non-integer label", func(t *testing.T) {
		_, err := ConfusionMatrix(vec(0.5, 1), vec(0, 1))
		assert.Error(t, err)
	})

	t.Run("Negative label", func(t *testing.T) {
		_, err := ConfusionMatrix(vec(-1, 1), vec(0, 1))
		assert.Error(t, err)
	})
}
