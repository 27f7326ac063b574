package preprocessing

import (
	"sort"

	"github.com/foldwise/foldwise/core/model"
	"github.com/foldwise/foldwise/pkg/errors"
)

// LabelEncoder はscikit-learn互換のラベルエンコーダー
// カテゴリカルな文字列属性を 0..n_classes-1 の整数に変換する
type LabelEncoder struct {
	model.BaseEstimator

	// Classes は学習時に観測されたクラス（ソート済み）
	Classes []string

	// index はクラス名から整数コードへの逆引き
	index map[string]int
}

// NewLabelEncoder は新しいLabelEncoderを作成する
//
// 使用例:
//
//	enc := preprocessing.NewLabelEncoder()
//	err := enc.Fit([]string{"male", "female"})
//	codes, err := enc.Transform([]string{"female", "male"})
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit は入力値からクラスの集合を学習する
// クラスはソートされ、コードはソート順に割り当てられる
func (e *LabelEncoder) Fit(values []string) error {
	if len(values) == 0 {
		return errors.NewModelError("LabelEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}

	e.Classes = make([]string, 0, len(seen))
	for v := range seen {
		e.Classes = append(e.Classes, v)
	}
	sort.Strings(e.Classes)

	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}

	e.SetFitted()
	return nil
}

// Transform は学習済みのクラス集合を使って値を整数コードに変換する
// 未知の値が含まれる場合はエラーを返す
func (e *LabelEncoder) Transform(values []string) ([]int, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}

	codes := make([]int, len(values))
	for i, v := range values {
		code, ok := e.index[v]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform", "unknown class '"+v+"'")
		}
		codes[i] = code
	}
	return codes, nil
}

// FitTransform はFitとTransformを連続して実行する
func (e *LabelEncoder) FitTransform(values []string) ([]int, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// InverseTransform は整数コードを元のクラス名に戻す
func (e *LabelEncoder) InverseTransform(codes []int) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}

	values := make([]string, len(codes))
	for i, code := range codes {
		if code < 0 || code >= len(e.Classes) {
			return nil, errors.NewValidationError("codes", "code out of range", code)
		}
		values[i] = e.Classes[code]
	}
	return values, nil
}
