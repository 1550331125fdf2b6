//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"gonum.org/v1/gonum/mat"
	"math/rand"
	"testing"
)

// randomnonneg - a seeded docs x terms matrix with a few exact zeros
func randomnonneg(r, c int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < 0.2 {
				continue
			}
			m.Set(i, j, rng.Float64())
		}
	}
	return m
}

func TestNMFShapes(t *testing.T) {
	for _, loss := range []string{"kullback-leibler", "frobenius"} {
		t.Run(loss, func(t *testing.T) {
			cfg := DefaultNMF(4)
			cfg.BetaLoss = loss
			cfg.MaxIter = 200
			x := randomnonneg(20, 12, 1)

			nmf := NewNMF(cfg)
			w, err := nmf.FitTransform(x)
			if err != nil {
				t.Fatalf("FitTransform() error = %v", err)
			}

			wr, wc := w.Dims()
			hr, hc := nmf.Components().Dims()
			if wr != 20 || wc != 4 || hr != 4 || hc != 12 {
				t.Fatalf("W is %d x %d and H is %d x %d", wr, wc, hr, hc)
			}
			if mat.Min(w) < 0 || mat.Min(nmf.Components()) < 0 {
				t.Error("factors must be non-negative")
			}
			if nmf.NIter() < 1 || nmf.NIter() > cfg.MaxIter {
				t.Errorf("NIter() = %d", nmf.NIter())
			}
		})
	}
}

func TestNMFDeterministic(t *testing.T) {
	x := randomnonneg(15, 10, 7)
	a := NewNMF(DefaultNMF(3))
	b := NewNMF(DefaultNMF(3))

	wa, err := a.FitTransform(x)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	wb, err := b.FitTransform(x)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	if !mat.Equal(wa, wb) || !mat.Equal(a.Components(), b.Components()) {
		t.Error("two fits with the same random state differ")
	}
}

func TestNMFLowersDivergence(t *testing.T) {
	x := randomnonneg(25, 15, 3)
	for _, loss := range []string{"kullback-leibler", "frobenius"} {
		t.Run(loss, func(t *testing.T) {
			cfg := DefaultNMF(3)
			cfg.BetaLoss = loss

			w0, h0, err := nmfinit(x, cfg.Components, cfg.Init, cfg.RandomState)
			if err != nil {
				t.Fatalf("nmfinit() error = %v", err)
			}
			before := betadivergence(x, w0, h0, betalosses[loss])

			nmf := NewNMF(cfg)
			if err = nmf.Fit(x); err != nil {
				t.Fatalf("Fit() error = %v", err)
			}
			if nmf.ReconstructionErr() >= before {
				t.Errorf("ReconstructionErr() = %v, not below the starting %v", nmf.ReconstructionErr(), before)
			}
		})
	}
}

func TestNMFInit(t *testing.T) {
	x := randomnonneg(10, 8, 11)
	for _, method := range []string{"nndsvd", "nndsvda", "nndsvdar", "random"} {
		t.Run(method, func(t *testing.T) {
			w, h, err := nmfinit(x, 3, method, 4013)
			if err != nil {
				t.Fatalf("nmfinit() error = %v", err)
			}
			if mat.Min(w) < 0 || mat.Min(h) < 0 {
				t.Error("negative starting values")
			}
			if method == "nndsvda" && (mat.Min(w) == 0 || mat.Min(h) == 0) {
				t.Error("nndsvda should leave no zeros")
			}
		})
	}
}

func TestNMFErrors(t *testing.T) {
	neg := randomnonneg(5, 5, 2)
	neg.Set(0, 0, -1)

	tests := []struct {
		name string
		cfg  NMFConfig
		x    mat.Matrix
		want error
	}{
		{"too many components", DefaultNMF(4), randomnonneg(3, 5, 1), ErrTooManyComponents},
		{"negative input", DefaultNMF(2), neg, ErrNegativeInput},
		{"zero components", DefaultNMF(0), randomnonneg(5, 5, 1), ErrInvalidConfig},
		{"unknown loss", func() NMFConfig { c := DefaultNMF(2); c.BetaLoss = "itakura-saito"; return c }(), randomnonneg(5, 5, 1), ErrInvalidConfig},
		{"unknown solver", func() NMFConfig { c := DefaultNMF(2); c.Solver = "cd"; return c }(), randomnonneg(5, 5, 1), ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNMF(tt.cfg).FitTransform(tt.x)
			if !errors.Is(err, tt.want) {
				t.Errorf("FitTransform() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNMFTransform(t *testing.T) {
	nmf := NewNMF(DefaultNMF(3))
	if _, err := nmf.Transform(randomnonneg(4, 6, 1)); !errors.Is(err, ErrNotFitted) {
		t.Fatalf("Transform() before Fit() error = %v", err)
	}

	x := randomnonneg(12, 6, 5)
	if err := nmf.Fit(x); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	w, err := nmf.Transform(randomnonneg(4, 6, 9))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if r, c := w.Dims(); r != 4 || c != 3 {
		t.Errorf("Transform() is %d x %d, want 4 x 3", r, c)
	}

	if _, err = nmf.Transform(randomnonneg(4, 7, 9)); !errors.Is(err, ErrShape) {
		t.Errorf("Transform() with the wrong width error = %v", err)
	}
}
