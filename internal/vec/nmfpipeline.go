//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"time"
)

// NMFModel - a fitted factorization and everything needed to read it
type NMFModel struct {
	ID      uuid.UUID
	Weights *TermWeights
	NMF     *NMF
	W       *mat.Dense // docs x topics
	H       *mat.Dense // topics x terms
}

// RunNMF - tf-idf weight the documents, then factor the weights into k topics
func RunNMF(docs []string, k int, tcfg TFIDFConfig, ncfg NMFConfig) (*NMFModel, error) {
	const (
		MSG1  = "RunNMF() vectorised %d documents into %d terms"
		MSG2  = "RunNMF() fitted %d topics"
		FAIL1 = "RunNMF() could not weight the documents: %w"
		FAIL2 = "RunNMF() could not factor the term weights: %w"
	)

	start := time.Now()
	previous := time.Now()

	ncfg.Components = k
	if err := ncfg.Validate(); err != nil {
		return nil, err
	}

	tw, err := Vectorise(docs, tcfg)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}
	Msg.Timer("N1", Msg.Sprintf(MSG1, len(docs), len(tw.Vocabulary)), start, previous)
	previous = time.Now()

	// W and H come out of a single fit
	nmf := NewNMF(ncfg)
	w, err := nmf.FitTransform(tw.Matrix)
	if err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}
	Msg.Timer("N2", fmt.Sprintf(MSG2, k), start, previous)

	return &NMFModel{
		ID:      uuid.New(),
		Weights: tw,
		NMF:     nmf,
		W:       w,
		H:       nmf.Components(),
	}, nil
}

func (m *NMFModel) Vocabulary() []string { return m.Weights.Vocabulary }

func (m *NMFModel) NumTopics() int {
	r, _ := m.H.Dims()
	return r
}

// Topics - the n top terms of each topic
func (m *NMFModel) Topics(n int) [][]RankedTerm {
	return TopWords(m.H, m.Weights.Vocabulary, n)
}

func (m *NMFModel) DominantTopics() []int { return DominantTopics(m.W) }

// DocumentMatrix - the document side of the factorization (W)
func (m *NMFModel) DocumentMatrix() mat.Matrix { return m.W }
