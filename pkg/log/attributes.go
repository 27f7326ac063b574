// Package log defines standard attribute keys for cross-validation operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in foldwise. Using these standard keys enables better
// log analysis, monitoring, and debugging of evaluation runs.
//
// The keys follow a hierarchical naming convention (e.g., "model.name",
// "cv.folds") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of predictor.
	// Examples: "LookupClassifier"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "split", "evaluate", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "lookup", "crossval", "metrics", "dataset"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
// These attributes describe the dataset and fold structure being processed.
const (
	// RecordsKey indicates the number of records in the dataset.
	RecordsKey = "data.records"

	// TrainSizeKey indicates the number of records used as the reference table
	// for the current fold.
	TrainSizeKey = "data.train_size"

	// HeldOutKey indicates the number of held-out records scored in the
	// current fold.
	HeldOutKey = "data.held_out"
)

// Cross-validation Context
// These attributes describe the fold partition and candidate grid.
const (
	// FoldsKey indicates the number of folds k.
	FoldsKey = "cv.folds"

	// FoldIndexKey indicates the index of the fold currently held out.
	FoldIndexKey = "cv.fold_index"

	// CandidatesKey indicates the number of hyperparameter candidates.
	CandidatesKey = "cv.candidates"

	// CandidateKey records the hyperparameter candidate being evaluated
	// (here, an age cutoff).
	CandidateKey = "cv.candidate"

	// BestCandidateKey records the candidate selected by mean fold score.
	BestCandidateKey = "cv.best_candidate"
)

// Performance Metrics
const (
	// AccuracyKey records the fraction of held-out records predicted correctly.
	// Range [0.0, 1.0].
	AccuracyKey = "metrics.accuracy"

	// MeanScoreKey records the mean of the per-fold scores for a candidate.
	MeanScoreKey = "metrics.mean_score"

	// StdScoreKey records the sample standard deviation of per-fold scores.
	StdScoreKey = "metrics.std_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Configuration
const (
	// RandomSeedKey records the seed used for fold shuffling.
	// Essential for reproducing a partition.
	RandomSeedKey = "config.random_seed"

	// ShuffleKey records whether indices were shuffled before fold assignment.
	ShuffleKey = "config.shuffle"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "INVALID_ARGUMENT", "INSUFFICIENT_DATA", "NOT_FITTED"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "InsufficientDataError"
	ErrorTypeKey = "error.type"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationSplit    = "split"
	OperationEvaluate = "evaluate"
	OperationScore    = "score"

	// Standard error codes
	ErrorInvalidArgument  = "INVALID_ARGUMENT"
	ErrorInsufficientData = "INSUFFICIENT_DATA"
	ErrorNotFitted        = "NOT_FITTED"
	ErrorEmptyTable       = "EMPTY_TABLE"
)
