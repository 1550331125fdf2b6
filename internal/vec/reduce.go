//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"sort"
)

// ReducedModel - a TopicModel collapsed into fewer topics; immutable once built
type ReducedModel struct {
	ID           uuid.UUID
	Base         uuid.UUID
	TopicVectors *mat.Dense
	doctopics    []int
	sizes        []int
	words        [][]string
	scores       [][]float64
	hierarchy    [][]int
}

// HierarchicalTopicReduction - merge the smallest topic into its most similar neighbour until k remain
func (tm *TopicModel) HierarchicalTopicReduction(k int) (*ReducedModel, error) {
	const (
		MSG1 = "HierarchicalTopicReduction() merged topic %d (%d docs) into topic %d (%d docs)"
		MSG2 = "HierarchicalTopicReduction() reduced %d topics to %d"
	)

	if k < 1 {
		return nil, ErrInvalidTopicCount
	}
	if k > tm.NumTopics() {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTopics, k, tm.NumTopics())
	}

	_, dim := tm.TopicVectors.Dims()

	var tops [][]float64
	for t := 0; t < tm.NumTopics(); t++ {
		tops = append(tops, mat.Row(nil, t, tm.TopicVectors))
	}

	hierarchy := make([][]int, len(tops))
	for i := range hierarchy {
		hierarchy[i] = []int{i}
	}

	sizes := clone(tm.sizes)

	for len(tops) > k {
		// smallest; ties go to the first
		smallest := 0
		for i := range sizes {
			if sizes[i] < sizes[smallest] {
				smallest = i
			}
		}

		mostsim := -1
		for i := range tops {
			if i == smallest {
				continue
			}
			if mostsim < 0 || floats.Dot(tops[smallest], tops[i]) > floats.Dot(tops[smallest], tops[mostsim]) {
				mostsim = i
			}
		}

		Msg.TMI(fmt.Sprintf(MSG1, smallest, sizes[smallest], mostsim, sizes[mostsim]))

		combined := make([]float64, dim)
		ss, ms := float64(sizes[smallest]), float64(sizes[mostsim])
		if ss+ms > 0 {
			floats.AddScaled(combined, ss/(ss+ms), tops[smallest])
			floats.AddScaled(combined, ms/(ss+ms), tops[mostsim])
		} else {
			floats.AddScaled(combined, 0.5, tops[smallest])
			floats.AddScaled(combined, 0.5, tops[mostsim])
		}
		l2normalize(combined)

		// drop both, then append the combination; the hierarchy follows the same order
		var nt [][]float64
		var nh [][]int
		for i := range tops {
			if i == smallest || i == mostsim {
				continue
			}
			nt = append(nt, tops[i])
			nh = append(nh, hierarchy[i])
		}
		merged := append(clone(hierarchy[smallest]), hierarchy[mostsim]...)
		tops = append(nt, combined)
		hierarchy = append(nh, merged)

		sizes = countlabels(assigntopics(tm.DocVectors, rowstodense(tops)), len(tops))
	}

	// recompute the reduced vectors from their documents; a vector that attracts none keeps the merged vector

	merged := rowstodense(tops)
	labels := assigntopics(tm.DocVectors, merged)
	reduced := centroids(tm.DocVectors, labels, k, merged)
	labels = assigntopics(tm.DocVectors, reduced)

	words, scores, err := topicwords(tm.searcher, reduced, tm.Cfg.TopicWords, len(tm.Embeddings))
	if err != nil {
		return nil, err
	}

	rm := &ReducedModel{
		ID:           uuid.New(),
		Base:         tm.ID,
		TopicVectors: reduced,
		doctopics:    labels,
		sizes:        countlabels(labels, k),
		words:        words,
		scores:       scores,
		hierarchy:    hierarchy,
	}
	rm.reorder()
	if zerostofirst(tm.DocVectors, rm.doctopics) {
		rm.sizes = countlabels(rm.doctopics, k)
		rm.reorder()
	}

	Msg.PEEK(fmt.Sprintf(MSG2, tm.NumTopics(), k))
	return rm, nil
}

// reorder - largest topic first; vectors, words, scores, hierarchy and document labels move together
func (rm *ReducedModel) reorder() {
	k := len(rm.sizes)
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return rm.sizes[order[i]] > rm.sizes[order[j]] })

	_, dim := rm.TopicVectors.Dims()
	tv := mat.NewDense(k, dim, nil)
	sizes := make([]int, k)
	words := make([][]string, k)
	scores := make([][]float64, k)
	hierarchy := make([][]int, k)
	remap := make([]int, k)

	for i, t := range order {
		remap[t] = i
		tv.SetRow(i, rm.TopicVectors.RawRowView(t))
		sizes[i] = rm.sizes[t]
		words[i] = rm.words[t]
		scores[i] = rm.scores[t]
		hierarchy[i] = rm.hierarchy[t]
	}
	for d, l := range rm.doctopics {
		rm.doctopics[d] = remap[l]
	}

	rm.TopicVectors = tv
	rm.sizes = sizes
	rm.words = words
	rm.scores = scores
	rm.hierarchy = hierarchy
}

func (rm *ReducedModel) NumTopics() int { return len(rm.sizes) }

func (rm *ReducedModel) TopicWordsReduced(i int) ([]string, error) {
	if i < 0 || i >= len(rm.words) {
		return nil, ErrTopicIndex
	}
	return clone(rm.words[i]), nil
}

func (rm *ReducedModel) TopicWordScoresReduced(i int) ([]float64, error) {
	if i < 0 || i >= len(rm.scores) {
		return nil, ErrTopicIndex
	}
	return clone(rm.scores[i]), nil
}

// AllTopicWords - the word list of every reduced topic
func (rm *ReducedModel) AllTopicWords() [][]string {
	out := make([][]string, len(rm.words))
	for i := range rm.words {
		out[i] = clone(rm.words[i])
	}
	return out
}

func (rm *ReducedModel) TopicSizesReduced() []int { return clone(rm.sizes) }

func (rm *ReducedModel) DocumentTopicsReduced() []int { return clone(rm.doctopics) }

// Hierarchy - the original topics folded into each reduced topic
func (rm *ReducedModel) Hierarchy() [][]int {
	out := make([][]int, len(rm.hierarchy))
	for i := range rm.hierarchy {
		out[i] = clone(rm.hierarchy[i])
	}
	return out
}

func rowstodense(rows [][]float64) *mat.Dense {
	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for i := range rows {
		m.SetRow(i, rows[i])
	}
	return m
}
