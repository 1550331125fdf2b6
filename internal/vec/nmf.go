//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
)

var (
	ErrNegativeInput = errors.New("negative values in the data passed to nmf")
	ErrNotFitted     = errors.New("nmf has not been fitted")
	ErrShape         = errors.New("matrix shape does not match the fitted model")
)

const (
	// EPS32 - float32 machine epsilon; WH is clipped here before any division
	EPS32 = 1.1920929e-07
	// EPS64 - float64 machine epsilon; smaller entries of H are zeroed under beta <= 1
	EPS64 = 2.220446049250313e-16
	// CHECKEVERY - iterations between convergence tests
	CHECKEVERY = 10
)

// NMF - non-negative matrix factorization X ≈ W H by multiplicative updates
type NMF struct {
	Cfg       NMFConfig
	h         *mat.Dense
	niter     int
	recerr    float64
	converged bool
}

func NewNMF(cfg NMFConfig) *NMF {
	return &NMF{Cfg: cfg}
}

// Components - H, the topic x term matrix; nil before fitting
func (n *NMF) Components() *mat.Dense { return n.h }

// NIter - iterations used by the last fit
func (n *NMF) NIter() int { return n.niter }

// ReconstructionErr - square rooted beta divergence between X and WH after the last fit
func (n *NMF) ReconstructionErr() float64 { return n.recerr }

func (n *NMF) Converged() bool { return n.converged }

func (n *NMF) Fit(x mat.Matrix) error {
	_, err := n.FitTransform(x)
	return err
}

// FitTransform - learn W and H; returns W (docs x k)
func (n *NMF) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	const (
		MSG1 = "FitTransform() %d x %d -> %d topics: %d iterations; reconstruction error %.5f"
		MSG2 = "FitTransform() reached max_iter (%d) before converging"
	)

	if err := n.Cfg.Validate(); err != nil {
		return nil, err
	}

	xd, err := nonnegativecopy(x)
	if err != nil {
		return nil, err
	}

	w, h, err := nmfinit(xd, n.Cfg.Components, n.Cfg.Init, n.Cfg.RandomState)
	if err != nil {
		return nil, err
	}

	n.niter, n.converged = n.mu(xd, w, h, true)
	n.h = h
	n.recerr = betadivergence(xd, w, h, betalosses[n.Cfg.BetaLoss])

	r, c := xd.Dims()
	Msg.PEEK(Msg.Sprintf(MSG1, r, c, n.Cfg.Components, n.niter, n.recerr))
	if !n.converged && n.Cfg.Tol > 0 {
		Msg.WARN(fmt.Sprintf(MSG2, n.Cfg.MaxIter))
	}
	return w, nil
}

// Transform - W for new data with H held fixed
func (n *NMF) Transform(x mat.Matrix) (*mat.Dense, error) {
	if n.h == nil {
		return nil, ErrNotFitted
	}

	xd, err := nonnegativecopy(x)
	if err != nil {
		return nil, err
	}

	r, c := xd.Dims()
	k, hc := n.h.Dims()
	if c != hc {
		return nil, fmt.Errorf("%w: %d columns vs %d", ErrShape, c, hc)
	}

	avg := math.Sqrt(mat.Sum(xd) / float64(r*c) / float64(k))
	w := mat.NewDense(r, k, nil)
	fillzeros(w, func() float64 { return avg })

	h := mat.DenseCopyOf(n.h)
	n.mu(xd, w, h, false)
	return w, nil
}

// mu - the multiplicative update loop; W and H are updated in place
func (n *NMF) mu(x, w, h *mat.Dense, updateh bool) (int, bool) {
	beta := betalosses[n.Cfg.BetaLoss]
	r, c := x.Dims()

	l1w := float64(c) * n.Cfg.AlphaW * n.Cfg.L1Ratio
	l2w := float64(c) * n.Cfg.AlphaW * (1 - n.Cfg.L1Ratio)
	l1h := float64(r) * n.Cfg.AlphaH * n.Cfg.L1Ratio
	l2h := float64(r) * n.Cfg.AlphaH * (1 - n.Cfg.L1Ratio)

	errinit := betadivergence(x, w, h, beta)
	preverr := errinit

	iter := 1
	for ; iter <= n.Cfg.MaxIter; iter++ {
		multiplyw(x, w, h, beta, l1w, l2w)
		if updateh {
			multiplyh(x, w, h, beta, l1h, l2h)
			if beta <= 1 {
				zerosmall(h, EPS64)
			}
		}

		if n.Cfg.Tol > 0 && iter%CHECKEVERY == 0 {
			e := betadivergence(x, w, h, beta)
			if errinit == 0 || (preverr-e)/errinit < n.Cfg.Tol {
				return iter, true
			}
			preverr = e
		}
	}
	return n.Cfg.MaxIter, false
}

// multiplyw - W *= numerator / denominator
func multiplyw(x, w, h *mat.Dense, beta, l1, l2 float64) {
	var num mat.Dense
	r, k := w.Dims()
	den := mat.NewDense(r, k, nil)

	if beta == 1 {
		ratio := klratio(x, w, h)
		num.Mul(ratio, h.T())
		hsum := rowsums(h)
		for i := 0; i < r; i++ {
			for t := 0; t < k; t++ {
				den.Set(i, t, hsum[t])
			}
		}
	} else {
		var hht mat.Dense
		num.Mul(x, h.T())
		hht.Mul(h, h.T())
		den.Mul(w, &hht)
	}

	regularize(den, w, l1, l2)
	w.Apply(func(i, j int, v float64) float64 {
		return v * num.At(i, j) / den.At(i, j)
	}, w)
}

// multiplyh - H *= numerator / denominator
func multiplyh(x, w, h *mat.Dense, beta, l1, l2 float64) {
	var num mat.Dense
	k, c := h.Dims()
	den := mat.NewDense(k, c, nil)

	if beta == 1 {
		ratio := klratio(x, w, h)
		num.Mul(w.T(), ratio)
		wsum := colsums(w)
		for t := 0; t < k; t++ {
			for j := 0; j < c; j++ {
				den.Set(t, j, wsum[t])
			}
		}
	} else {
		var wtw mat.Dense
		num.Mul(w.T(), x)
		wtw.Mul(w.T(), w)
		den.Mul(&wtw, h)
	}

	regularize(den, h, l1, l2)
	h.Apply(func(i, j int, v float64) float64 {
		return v * num.At(i, j) / den.At(i, j)
	}, h)
}

// regularize - den += l1 + l2*m; zeros become EPS32
func regularize(den *mat.Dense, m *mat.Dense, l1, l2 float64) {
	den.Apply(func(i, j int, v float64) float64 {
		v += l1 + l2*m.At(i, j)
		if v == 0 {
			return EPS32
		}
		return v
	}, den)
}

// klratio - X / WH with WH clipped at EPS32; zero where X is zero
func klratio(x, w, h *mat.Dense) *mat.Dense {
	var wh mat.Dense
	wh.Mul(w, h)
	wh.Apply(func(i, j int, v float64) float64 {
		xv := x.At(i, j)
		if xv == 0 {
			return 0
		}
		return xv / math.Max(v, EPS32)
	}, &wh)
	return &wh
}

// betadivergence - square rooted; beta 2 is the frobenius norm of X - WH, beta 1 the generalized kl divergence
func betadivergence(x, w, h *mat.Dense, beta float64) float64 {
	var wh mat.Dense
	wh.Mul(w, h)

	if beta == 2 {
		var diff mat.Dense
		diff.Sub(x, &wh)
		return mat.Norm(&diff, 2)
	}

	r, c := x.Dims()
	var res, xsum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			xv := x.At(i, j)
			if xv <= EPS32 {
				continue
			}
			v := math.Max(wh.At(i, j), EPS32)
			res += xv * math.Log(xv/v)
			xsum += xv
		}
	}
	res += floats.Dot(colsums(w), rowsums(h)) - xsum
	return math.Sqrt(2 * math.Max(res, 0))
}

func rowsums(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	s := make([]float64, r)
	for i := 0; i < r; i++ {
		s[i] = floats.Sum(m.RawRowView(i))
	}
	return s
}

func colsums(m *mat.Dense) []float64 {
	r, c := m.Dims()
	s := make([]float64, c)
	for i := 0; i < r; i++ {
		floats.Add(s, m.RawRowView(i))
	}
	return s
}

func nonnegativecopy(x mat.Matrix) (*mat.Dense, error) {
	xd := mat.DenseCopyOf(x)
	if mat.Min(xd) < 0 {
		return nil, ErrNegativeInput
	}
	return xd, nil
}
