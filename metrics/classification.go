package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/foldwise/foldwise/pkg/errors"
)

// Accuracy は正解率（正しく予測されたラベルの割合）を計算する
// 戻り値は [0, 1] の範囲に入る
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	// Accuracy = (1/n) * Σ 1[yTrue == yPred]
	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ErrorRate は誤分類率（1 - Accuracy）を計算する
func ErrorRate(yTrue, yPred *mat.VecDense) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}

// AccuracyFromLabels は整数ラベルのスライスから正解率を計算する
// 内部でベクトルに変換してAccuracyを呼び出す
func AccuracyFromLabels(yTrue, yPred []int) (float64, error) {
	if len(yTrue) == 0 {
		return 0, errors.NewValueError("AccuracyFromLabels", "empty slice")
	}

	if len(yPred) != len(yTrue) {
		return 0, errors.NewDimensionError("AccuracyFromLabels", len(yTrue), len(yPred), 0)
	}

	yTrueVec := mat.NewVecDense(len(yTrue), nil)
	yPredVec := mat.NewVecDense(len(yPred), nil)
	for i := range yTrue {
		yTrueVec.SetVec(i, float64(yTrue[i]))
		yPredVec.SetVec(i, float64(yPred[i]))
	}

	return Accuracy(yTrueVec, yPredVec)
}

// ConfusionMatrix は混同行列を計算する
// 行が真のラベル、列が予測ラベルに対応する n_classes × n_classes の行列を返す
// ラベルは 0..n_classes-1 の非負整数でなければならない
func ConfusionMatrix(yTrue, yPred *mat.VecDense) (*mat.Dense, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "empty vector")
	}

	if yPred.Len() != n {
		return nil, errors.NewDimensionError("ConfusionMatrix", n, yPred.Len(), 0)
	}

	// クラス数を決定
	nClasses := 0
	for i := 0; i < n; i++ {
		for _, v := range []float64{yTrue.AtVec(i), yPred.AtVec(i)} {
			if v < 0 || v != math.Trunc(v) {
				return nil, errors.NewValueError("ConfusionMatrix", "labels must be non-negative integers")
			}
			if int(v) >= nClasses {
				nClasses = int(v) + 1
			}
		}
	}

	cm := mat.NewDense(nClasses, nClasses, nil)
	for i := 0; i < n; i++ {
		row := int(yTrue.AtVec(i))
		col := int(yPred.AtVec(i))
		cm.Set(row, col, cm.At(row, col)+1)
	}

	return cm, nil
}
