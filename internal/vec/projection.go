//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrProjection = errors.New("cannot project fewer than two rows or columns into two dimensions")
)

// Project2D - the rows of m on their first two principal components
func Project2D(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r < 2 || c < 2 {
		return nil, ErrProjection
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, ErrProjection
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	// center first so that the map sits on the origin
	centered := mat.DenseCopyOf(m)
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, centered)
		mean := stat.Mean(col, nil)
		for i := 0; i < r; i++ {
			centered.Set(i, j, col[i]-mean)
		}
	}

	var proj mat.Dense
	proj.Mul(centered, vecs.Slice(0, c, 0, 2))
	return &proj, nil
}
