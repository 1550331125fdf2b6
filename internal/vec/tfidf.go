//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"github.com/e-gun/nlp"
	"github.com/e-gun/topicmodels/internal/gen"
	"gonum.org/v1/gonum/mat"
	"math"
	"sort"
)

var (
	ErrNoDocuments      = errors.New("no documents")
	ErrMaxDFBelowMinDF  = errors.New("max_df corresponds to fewer documents than min_df")
	ErrEmptyVocabulary  = errors.New("no terms remain after pruning")
	ErrVectoriserFailed = errors.New("count vectoriser failed")
)

// TermWeights - a docs x terms tf-idf matrix and the vocabulary that labels its columns
type TermWeights struct {
	Matrix     *mat.Dense
	Vocabulary []string // alphabetical; index == column
	DocFreq    []int
}

// Vectorise - count, prune and weight the terms of a corpus
func Vectorise(docs []string, cfg TFIDFConfig) (*TermWeights, error) {
	const (
		MSG1 = "Vectorise() kept %d of %d terms across %d documents"
		MSG2 = "Vectorise() dropped %d terms by document frequency and %d by max_features"
	)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	nd := float64(len(docs))
	mindoc := cfg.MinDF * nd
	maxdoc := cfg.MaxDF * nd
	if maxdoc < mindoc {
		return nil, ErrMaxDFBelowMinDF
	}

	// [a] count

	vectoriser := nlp.NewCountVectoriser(cfg.StopWords...)
	vectoriser.Fit(docs...)
	if len(vectoriser.Vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	termsoverdocs, err := vectoriser.Transform(docs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVectoriserFailed, err)
	}

	counts := countsbydoc(termsoverdocs, len(docs), len(vectoriser.Vocabulary))

	// [b] prune with the vocabulary in alphabetical order

	alphabetical := gen.StringMapKeysIntoSlice(vectoriser.Vocabulary)

	var kept []string
	df := make(map[string]int, len(alphabetical))
	tf := make(map[string]float64, len(alphabetical))
	for _, t := range alphabetical {
		col := vectoriser.Vocabulary[t]
		for d := 0; d < len(docs); d++ {
			v := counts.At(d, col)
			if v > 0 {
				df[t]++
				tf[t] += v
			}
		}
		if float64(df[t]) >= mindoc && float64(df[t]) <= maxdoc {
			kept = append(kept, t)
		}
	}
	bydf := len(alphabetical) - len(kept)

	byfeat := 0
	if cfg.MaxFeatures > 0 && len(kept) > cfg.MaxFeatures {
		// most frequent terms win; ties go to the alphabetically prior term
		ranked := make([]string, len(kept))
		copy(ranked, kept)
		sort.SliceStable(ranked, func(i, j int) bool { return tf[ranked[i]] > tf[ranked[j]] })
		byfeat = len(kept) - cfg.MaxFeatures
		kept = ranked[:cfg.MaxFeatures]
		sort.Strings(kept)
	}

	if len(kept) == 0 {
		return nil, ErrEmptyVocabulary
	}

	Msg.PEEK(Msg.Sprintf(MSG1, len(kept), len(alphabetical), len(docs)))
	Msg.TMI(Msg.Sprintf(MSG2, bydf, byfeat))

	// [c] weight

	tw := &TermWeights{
		Matrix:     mat.NewDense(len(docs), len(kept), nil),
		Vocabulary: kept,
		DocFreq:    make([]int, len(kept)),
	}

	for j, t := range kept {
		tw.DocFreq[j] = df[t]
		idf := inversedocfreq(df[t], len(docs), cfg.SmoothIDF)
		col := vectoriser.Vocabulary[t]
		for d := 0; d < len(docs); d++ {
			if v := counts.At(d, col); v > 0 {
				tw.Matrix.Set(d, j, v*idf)
			}
		}
	}

	normalizerows(tw.Matrix, cfg.Norm)
	return tw, nil
}

// countsbydoc - the vectoriser yields terms x docs; flip it into a dense docs x terms matrix
func countsbydoc(termsoverdocs mat.Matrix, ndocs int, nterms int) *mat.Dense {
	counts := mat.NewDense(ndocs, nterms, nil)
	if nz, ok := termsoverdocs.(mat.NonZeroDoer); ok {
		nz.DoNonZero(func(t, d int, v float64) {
			counts.Set(d, t, v)
		})
		return counts
	}

	r, c := termsoverdocs.Dims()
	for t := 0; t < r; t++ {
		for d := 0; d < c; d++ {
			if v := termsoverdocs.At(t, d); v != 0 {
				counts.Set(d, t, v)
			}
		}
	}
	return counts
}

func inversedocfreq(df int, n int, smooth bool) float64 {
	if smooth {
		return math.Log(float64(1+n)/float64(1+df)) + 1
	}
	return math.Log(float64(n)/float64(df)) + 1
}

// normalizerows - "l1", "l2" or leave alone; a zero row stays zero
func normalizerows(m *mat.Dense, norm string) {
	var nt float64
	switch norm {
	case "l1":
		nt = 1
	case "l2":
		nt = 2
	default:
		return
	}

	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		n := mat.Norm(mat.NewVecDense(len(row), row), nt)
		if n == 0 {
			continue
		}
		for j := range row {
			row[j] /= n
		}
	}
}
