package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwise/foldwise/dataset"
	"github.com/foldwise/foldwise/pkg/errors"
)

func TestLabelEncoder(t *testing.T) {
	t.Run("Fit and Transform", func(t *testing.T) {
		enc := NewLabelEncoder()
		require.NoError(t, enc.Fit([]string{"male", "female", "male"}))

		// クラスはソート順でコード化される
		assert.Equal(t, []string{"female", "male"}, enc.Classes)

		codes, err := enc.Transform([]string{"male", "female"})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, codes)
	})

	t.Run("Transform before Fit", func(t *testing.T) {
		enc := NewLabelEncoder()
		_, err := enc.Transform([]string{"male"})
		require.Error(t, err)

		var notFitted *errors.NotFittedError
		assert.True(t, errors.As(err, &notFitted))
	})

	t.Run("Unknown class", func(t *testing.T) {
		enc := NewLabelEncoder()
		require.NoError(t, enc.Fit([]string{"male", "female"}))

		_, err := enc.Transform([]string{"other"})
		assert.Error(t, err)
	})

	t.Run("Empty input", func(t *testing.T) {
		enc := NewLabelEncoder()
		err := enc.Fit(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("InverseTransform round trip", func(t *testing.T) {
		enc := NewLabelEncoder()
		codes, err := enc.FitTransform([]string{"male", "female", "female"})
		require.NoError(t, err)

		values, err := enc.InverseTransform(codes)
		require.NoError(t, err)
		assert.Equal(t, []string{"male", "female", "female"}, values)

		_, err = enc.InverseTransform([]int{5})
		assert.Error(t, err)
	})
}

func TestEncodeTable(t *testing.T) {
	table := dataset.NewTable([]dataset.Record{
		{Class: 1, Sex: "female", SibSp: 0, ParCh: 0, Age: 29, Survived: 1},
		{Class: 3, Sex: "male", SibSp: 1, ParCh: 0, Age: 22, Survived: 0},
	})

	X, enc, err := EncodeTable(table)
	require.NoError(t, err)

	rows, cols := X.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 5, cols)

	// female=0, male=1 (ソート順)
	assert.Equal(t, 0.0, X.At(0, 1))
	assert.Equal(t, 1.0, X.At(1, 1))
	assert.Equal(t, 29.0, X.At(0, 4))
	assert.Equal(t, []string{"female", "male"}, enc.Classes)

	_, _, err = EncodeTable(dataset.Table{})
	assert.Error(t, err)
}
