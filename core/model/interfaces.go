// Package model provides the interfaces and base types shared by foldwise
// estimators. Estimators operate on record tables rather than raw matrices;
// see the dataset package for the data model.
package model

import (
	"github.com/foldwise/foldwise/dataset"
)

// Fitter is the interface for models that learn from a reference table.
type Fitter interface {
	// Fit trains the model on the given table.
	Fit(t dataset.Table) error
}

// Predictor is the interface for models that predict a label for a record.
type Predictor interface {
	// Predict returns the predicted label for a single record.
	Predict(r dataset.Record) (int, error)

	// PredictBatch returns predicted labels for every record in the table,
	// in table order.
	PredictBatch(t dataset.Table) ([]int, error)
}

// Scorer is the interface for models that can compute an evaluation score.
type Scorer interface {
	// Score returns the fraction of records in t whose label is predicted
	// correctly, in [0, 1].
	Score(t dataset.Table) (float64, error)
}

// Classifier combines the interfaces implemented by classification models.
type Classifier interface {
	Fitter
	Predictor
	Scorer
}

// ParameterGetter is the interface for models that expose their hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
