// Package crossval provides k-fold partitioning and cross-validated
// hyperparameter search for the lookup classifier.
package crossval

import (
	"math/rand/v2"

	"github.com/foldwise/foldwise/pkg/errors"
)

// Splitter defines the interface for cross-validation splitters.
type Splitter interface {
	// Split partitions the indices 0..nRecords-1 into folds.
	Split(nRecords int) ([]Fold, error)

	// NSplits returns the number of folds produced by Split.
	NSplits() int
}

// Fold represents a single fold in cross-validation: the indices held out
// for scoring and the indices used as the reference table.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold implements a k-fold cross-validation splitter. Fold sizes differ by
// at most one; without shuffling the folds are contiguous index blocks, the
// first nRecords%k folds one element larger.
type KFold struct {
	// NFolds is the number of folds k. Split rejects values outside
	// [2, nRecords].
	NFolds int

	// Shuffle controls whether indices are permuted before fold assignment.
	Shuffle bool

	// RandomSeed seeds the permutation when Shuffle is set. The same seed
	// always yields the same partition.
	RandomSeed int
}

// NewKFold creates a new k-fold splitter. The fold count is validated at
// Split time against the record count.
func NewKFold(k int, shuffle bool, randomSeed int) *KFold {
	return &KFold{
		NFolds:     k,
		Shuffle:    shuffle,
		RandomSeed: randomSeed,
	}
}

// NewLeaveOneOut creates a splitter with one record held out per fold,
// for a dataset of n records.
func NewLeaveOneOut(n int) *KFold {
	return NewKFold(n, false, 0)
}

// NSplits returns the number of folds.
func (kf *KFold) NSplits() int {
	return kf.NFolds
}

// Split generates train/test indices for each fold. Every index in
// 0..nRecords-1 appears in exactly one test group.
func (kf *KFold) Split(nRecords int) ([]Fold, error) {
	if kf.NFolds < 2 {
		return nil, errors.NewValidationError("k", "must be at least 2", kf.NFolds)
	}
	if kf.NFolds > nRecords {
		return nil, errors.NewValidationError("k",
			"must not exceed the number of records", kf.NFolds)
	}

	indices := make([]int, nRecords)
	for i := range indices {
		indices[i] = i
	}

	if kf.Shuffle {
		r := rand.New(rand.NewPCG(uint64(kf.RandomSeed), uint64(kf.RandomSeed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.NFolds)
	foldSize := nRecords / kf.NFolds
	remainder := nRecords % kf.NFolds

	currentIdx := 0
	for i := 0; i < kf.NFolds; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[currentIdx:currentIdx+testSize])

		// Train indices are everything outside the test block
		trainIndices := make([]int, nRecords-testSize)
		copy(trainIndices, indices[:currentIdx])
		copy(trainIndices[currentIdx:], indices[currentIdx+testSize:])

		folds[i] = Fold{
			TrainIndices: trainIndices,
			TestIndices:  testIndices,
		}

		currentIdx += testSize
	}

	return folds, nil
}
