package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const titanicSample = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Fare
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,7.25
2,1,1,"Cumings, Mrs. John Bradley",female,38,1,0,71.2833
3,1,3,"Heikkinen, Miss. Laina",female,26,0,0,7.925
4,0,3,"Moran, Mr. James",male,,0,0,8.4583
`

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(titanicSample))
	require.NoError(t, err)

	// The row with the empty Age cell is dropped
	assert.Equal(t, 3, table.Len())

	first := table.At(0)
	assert.Equal(t, 3, first.Class)
	assert.Equal(t, "male", first.Sex)
	assert.Equal(t, 1, first.SibSp)
	assert.Equal(t, 0, first.ParCh)
	assert.Equal(t, 22.0, first.Age)
	assert.Equal(t, 0, first.Survived)

	second := table.At(1)
	assert.Equal(t, "female", second.Sex)
	assert.Equal(t, 1, second.Survived)
}

func TestReadCSVMissingColumn(t *testing.T) {
	csv := "Pclass,Sex,SibSp,Parch,Age\n1,male,0,0,30\n"
	_, err := ReadCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Survived")
}

func TestReadCSVBadValue(t *testing.T) {
	csv := "Survived,Pclass,Sex,Age,SibSp,Parch\n1,first,male,30,0,0\n"
	_, err := ReadCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pclass")
}

func TestReadCSVInvalidLabel(t *testing.T) {
	csv := "Survived,Pclass,Sex,Age,SibSp,Parch\n2,1,male,30,0,0\n"
	_, err := ReadCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Survived must be 0 or 1")
}

func TestReadCSVAllRowsDropped(t *testing.T) {
	csv := "Survived,Pclass,Sex,Age,SibSp,Parch\n1,1,male,,0,0\n"
	_, err := ReadCSV(strings.NewReader(csv))
	assert.Error(t, err)
}
