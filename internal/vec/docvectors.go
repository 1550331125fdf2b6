//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/wego/pkg/embedding"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DocumentVectors - each row is the L2 normalized mean of the known word vectors of a document;
// a document without known words gets a zero row
func DocumentVectors(tokens [][]string, embs embedding.Embeddings) (*mat.Dense, error) {
	if len(embs) == 0 || len(tokens) == 0 {
		return nil, ErrNoEmbeddings
	}

	dim := len(embs[0].Vector)
	lookup := make(map[string][]float64, len(embs))
	for _, e := range embs {
		if len(e.Vector) != dim {
			continue
		}
		lookup[e.Word] = e.Vector
	}

	dv := mat.NewDense(len(tokens), dim, nil)
	for d := range tokens {
		row := dv.RawRowView(d)
		seen := 0
		for _, t := range tokens[d] {
			if v, ok := lookup[t]; ok {
				floats.Add(row, v)
				seen++
			}
		}
		if seen > 0 {
			l2normalize(row)
		}
	}
	return dv, nil
}

// l2normalize - in place; a zero vector stays zero
func l2normalize(v []float64) {
	n := floats.Norm(v, 2)
	if n == 0 {
		return
	}
	floats.Scale(1/n, v)
}

// nearest - index of the row of tv with the largest inner product with v; ties go to the lower index
func nearest(v []float64, tv *mat.Dense) (int, float64) {
	r, _ := tv.Dims()
	best := 0
	mx := floats.Dot(v, tv.RawRowView(0))
	for i := 1; i < r; i++ {
		if s := floats.Dot(v, tv.RawRowView(i)); s > mx {
			best = i
			mx = s
		}
	}
	return best, mx
}

// assigntopics - the nearest topic of every document
func assigntopics(dv *mat.Dense, tv *mat.Dense) []int {
	r, _ := dv.Dims()
	labels := make([]int, r)
	for d := 0; d < r; d++ {
		labels[d], _ = nearest(dv.RawRowView(d), tv)
	}
	return labels
}

// countlabels - how many documents went to each of k topics; unused topics count 0
func countlabels(labels []int, k int) []int {
	sizes := make([]int, k)
	for _, l := range labels {
		sizes[l]++
	}
	return sizes
}

// centroids - the L2 normalized mean of the members of each of k topics; empty topics keep fallback rows
func centroids(dv *mat.Dense, labels []int, k int, fallback *mat.Dense) *mat.Dense {
	_, dim := dv.Dims()
	cv := mat.NewDense(k, dim, nil)
	seen := make([]int, k)
	for d, l := range labels {
		floats.Add(cv.RawRowView(l), dv.RawRowView(d))
		seen[l]++
	}
	for t := 0; t < k; t++ {
		row := cv.RawRowView(t)
		if seen[t] == 0 || floats.Norm(row, 2) == 0 {
			if fallback != nil {
				copy(row, fallback.RawRowView(t))
			}
			continue
		}
		l2normalize(row)
	}
	return cv
}

// zerostofirst - documents without known words tie everywhere at 0 and so belong to topic 0;
// reports whether any label moved. Topic 0 only grows, so a size ordering keeps it first.
func zerostofirst(dv *mat.Dense, labels []int) bool {
	moved := false
	for d := range labels {
		if labels[d] != 0 && floats.Norm(dv.RawRowView(d), 2) == 0 {
			labels[d] = 0
			moved = true
		}
	}
	return moved
}
