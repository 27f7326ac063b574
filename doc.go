// Package foldwise provides k-fold cross-validated hyperparameter search
// for a table-lookup survival classifier, built around passenger records
// with categorical attributes and an age cutoff.
//
// The classifier predicts by filtering a reference table down to the rows
// similar to the query (same class, sex, sibling and parent counts, and the
// same side of the age cutoff) and taking the majority label among them. The
// search scores every candidate cutoff on every fold and returns the full
// score matrix, so callers can inspect per-fold variance instead of a single
// aggregate.
//
// # Installation
//
// Install foldwise using go get:
//
//	go get github.com/foldwise/foldwise
//
// # Quick Start
//
// Evaluate a set of age cutoffs with 5-fold cross-validation:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/foldwise/foldwise/crossval"
//	    "github.com/foldwise/foldwise/dataset"
//	)
//
//	func main() {
//	    table, err := dataset.ReadCSVFile("train.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := crossval.Evaluate(table, []float64{5, 10, 16, 18, 21}, 5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    best, mean := result.Best()
//	    fmt.Printf("best cutoff %.0f with mean accuracy %.3f\n", best, mean)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - dataset: Passenger records, tables, predicates and CSV loading
//   - lookup: The table-lookup classifier and its similarity filter
//   - crossval: K-fold splitting and cross-validated search
//   - metrics: Evaluation metrics (accuracy, error rate, confusion matrix)
//   - preprocessing: Label encoding and table-to-matrix conversion
//   - core/model: Core interfaces and base estimator state
//   - core/parallel: Parallel processing utilities
//
// # Determinism
//
// Every operation is deterministic: shuffling is seeded, majority ties break
// toward the lowest label, and parallel search writes each (candidate, fold)
// cell into its own slot, so repeated runs return identical results.
//
// # License
//
// foldwise is released under the MIT License.
package foldwise
