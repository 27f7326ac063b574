package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/foldwise/foldwise/dataset"
	"github.com/foldwise/foldwise/pkg/errors"
)

// EncodeTable はレコードテーブルを数値の計画行列に変換する
// 列の順序は [Class, Sex, SibSp, ParCh, Age]。Sex列は新しく学習した
// LabelEncoderで整数化され、そのエンコーダーも返される
func EncodeTable(t dataset.Table) (*mat.Dense, *LabelEncoder, error) {
	n := t.Len()
	if n == 0 {
		return nil, nil, errors.NewModelError("EncodeTable", "empty data", errors.ErrEmptyData)
	}

	sexes := make([]string, n)
	for i := 0; i < n; i++ {
		sexes[i] = t.At(i).Sex
	}

	enc := NewLabelEncoder()
	sexCodes, err := enc.FitTransform(sexes)
	if err != nil {
		return nil, nil, err
	}

	X := mat.NewDense(n, 5, nil)
	for i := 0; i < n; i++ {
		r := t.At(i)
		X.Set(i, 0, float64(r.Class))
		X.Set(i, 1, float64(sexCodes[i]))
		X.Set(i, 2, float64(r.SibSp))
		X.Set(i, 3, float64(r.ParCh))
		X.Set(i, 4, r.Age)
	}

	return X, enc, nil
}
