//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
	"math/rand"
)

var (
	ErrTooManyComponents = errors.New("nndsvd initialization needs n_components <= min(n_samples, n_features)")
	ErrSVDFailed         = errors.New("singular value decomposition failed")
)

const (
	// NNDSVDEPS - anything smaller is treated as zero after nndsvd
	NNDSVDEPS = 1e-6
)

// nmfinit - starting values for W (docs x k) and H (k x terms)
func nmfinit(x *mat.Dense, k int, method string, seed int64) (*mat.Dense, *mat.Dense, error) {
	r, c := x.Dims()
	avg := mat.Sum(x) / float64(r*c)

	if method == "random" {
		rng := rand.New(rand.NewSource(seed))
		scale := math.Sqrt(avg / float64(k))
		h := mat.NewDense(k, c, nil)
		w := mat.NewDense(r, k, nil)
		// H is drawn first
		fillabsnormal(h, rng, scale)
		fillabsnormal(w, rng, scale)
		return w, h, nil
	}

	if k > min(r, c) {
		return nil, nil, ErrTooManyComponents
	}

	w, h, err := nndsvd(x, k)
	if err != nil {
		return nil, nil, err
	}

	switch method {
	case "nndsvda":
		fillzeros(w, func() float64 { return avg })
		fillzeros(h, func() float64 { return avg })
	case "nndsvdar":
		rng := rand.New(rand.NewSource(seed))
		small := func() float64 { return math.Abs(avg * rng.NormFloat64() / 100) }
		fillzeros(w, small)
		fillzeros(h, small)
	}
	return w, h, nil
}

// nndsvd - Boutsidis & Gallopoulos: non-negative double singular value decomposition
func nndsvd(x *mat.Dense, k int) (*mat.Dense, *mat.Dense, error) {
	r, c := x.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}

	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	w := mat.NewDense(r, k, nil)
	h := mat.NewDense(k, c, nil)

	// the leading singular triplet can be made non-negative as a whole
	sq := math.Sqrt(s[0])
	for i := 0; i < r; i++ {
		w.Set(i, 0, sq*math.Abs(u.At(i, 0)))
	}
	for j := 0; j < c; j++ {
		h.Set(0, j, sq*math.Abs(v.At(j, 0)))
	}

	for t := 1; t < k; t++ {
		xx := mat.Col(nil, t, &u)
		yy := mat.Col(nil, t, &v)

		xp, xn := splitsigns(xx)
		yp, yn := splitsigns(yy)

		xpn, ypn := floats.Norm(xp, 2), floats.Norm(yp, 2)
		xnn, ynn := floats.Norm(xn, 2), floats.Norm(yn, 2)

		mp := xpn * ypn
		mn := xnn * ynn

		var uu, vv []float64
		var sigma float64
		if mp > mn {
			uu, vv, sigma = xp, yp, mp
			floats.Scale(1/xpn, uu)
			floats.Scale(1/ypn, vv)
		} else {
			uu, vv, sigma = xn, yn, mn
			if sigma == 0 {
				continue
			}
			floats.Scale(1/xnn, uu)
			floats.Scale(1/ynn, vv)
		}

		lbd := math.Sqrt(s[t] * sigma)
		for i := 0; i < r; i++ {
			w.Set(i, t, lbd*uu[i])
		}
		for j := 0; j < c; j++ {
			h.Set(t, j, lbd*vv[j])
		}
	}

	zerosmall(w, NNDSVDEPS)
	zerosmall(h, NNDSVDEPS)
	return w, h, nil
}

// splitsigns - the positive part and the magnitude of the negative part
func splitsigns(a []float64) ([]float64, []float64) {
	p := make([]float64, len(a))
	n := make([]float64, len(a))
	for i, x := range a {
		if x > 0 {
			p[i] = x
		} else {
			n[i] = -x
		}
	}
	return p, n
}

func zerosmall(m *mat.Dense, eps float64) {
	m.Apply(func(_, _ int, v float64) float64 {
		if v < eps {
			return 0
		}
		return v
	}, m)
}

// fillzeros - row major order so that a seeded source yields the same matrix every time
func fillzeros(m *mat.Dense, f func() float64) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) == 0 {
				m.Set(i, j, f())
			}
		}
	}
}

func fillabsnormal(m *mat.Dense, rng *rand.Rand, scale float64) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, math.Abs(scale*rng.NormFloat64()))
		}
	}
}
