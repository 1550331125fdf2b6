//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"slices"
	"sort"
)

var (
	ErrNoTopics = errors.New("no topics could be found in the document vectors")
)

type cluster struct {
	sum     []float64
	repr    []float64
	members []int
}

func (c *cluster) add(d int, v []float64) {
	c.members = append(c.members, d)
	floats.Add(c.sum, v)
	copy(c.repr, c.sum)
	l2normalize(c.repr)
}

// DiscoverTopics - dense regions of the document vectors; returns topic vectors (largest topic first)
// and the topic of every document
func DiscoverTopics(dv *mat.Dense, cfg ClusterConfig) (*mat.Dense, []int, error) {
	const (
		MSG1 = "DiscoverTopics() leader pass found %d clusters"
		MSG2 = "DiscoverTopics() refinement settled after %d passes"
		MSG3 = "DiscoverTopics() %d topics survive a minimum size of %d"
	)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	// [a] leader pass: join the most similar cluster at or above the threshold, else lead a new one

	r, dim := dv.Dims()
	var clusters []*cluster
	for d := 0; d < r; d++ {
		v := dv.RawRowView(d)
		if floats.Norm(v, 2) == 0 {
			continue
		}
		best := -1
		mx := cfg.Similarity
		for i, c := range clusters {
			if s := floats.Dot(v, c.repr); s >= mx {
				best = i
				mx = s
			}
		}
		if best < 0 {
			clusters = append(clusters, &cluster{sum: make([]float64, dim), repr: make([]float64, dim)})
			best = len(clusters) - 1
		}
		clusters[best].add(d, v)
	}

	if len(clusters) == 0 {
		return nil, nil, ErrNoTopics
	}
	Msg.PEEK(Msg.Sprintf(MSG1, len(clusters)))

	tv := mat.NewDense(len(clusters), dim, nil)
	for i, c := range clusters {
		tv.SetRow(i, c.repr)
	}

	// [b] spherical k-means

	tv, labels, passes := refine(dv, tv, cfg.RefinePasses)
	Msg.TMI(Msg.Sprintf(MSG2, passes))

	// [c] dissolve the small clusters into their neighbours; the largest always survives

	sizes := countlabels(labels, rowsof(tv))
	largest := slices.Index(sizes, slices.Max(sizes))
	var keep []int
	for t, s := range sizes {
		if s >= cfg.MinClusterSize || t == largest {
			keep = append(keep, t)
		}
	}

	if len(keep) < rowsof(tv) {
		kept := mat.NewDense(len(keep), dim, nil)
		for i, t := range keep {
			kept.SetRow(i, tv.RawRowView(t))
		}
		tv, labels, _ = refine(dv, kept, 1)
	}

	tv, labels = bysize(tv, labels)
	if zerostofirst(dv, labels) {
		tv, labels = bysize(tv, labels)
	}
	Msg.PEEK(Msg.Sprintf(MSG3, rowsof(tv), cfg.MinClusterSize))
	return tv, labels, nil
}

// refine - reassign and recenter until nothing moves; topics that lose every member are dropped
func refine(dv *mat.Dense, tv *mat.Dense, passes int) (*mat.Dense, []int, int) {
	labels := assigntopics(dv, tv)
	if passes < 1 {
		return tv, labels, 0
	}

	p := 0
	for p = 1; p <= passes; p++ {
		tv, labels = dropempty(tv, labels)
		tv = centroids(dv, labels, rowsof(tv), tv)
		next := assigntopics(dv, tv)
		if slices.Equal(next, labels) {
			break
		}
		labels = next
	}
	if p > passes {
		p = passes
	}
	tv, labels = dropempty(tv, labels)
	return tv, labels, p
}

// dropempty - remove topics with no members and relabel
func dropempty(tv *mat.Dense, labels []int) (*mat.Dense, []int) {
	k := rowsof(tv)
	sizes := countlabels(labels, k)
	if !slices.Contains(sizes, 0) {
		return tv, labels
	}

	_, dim := tv.Dims()
	remap := make([]int, k)
	var rows [][]float64
	for t := 0; t < k; t++ {
		remap[t] = -1
		if sizes[t] > 0 {
			remap[t] = len(rows)
			rows = append(rows, tv.RawRowView(t))
		}
	}

	out := mat.NewDense(len(rows), dim, nil)
	for i, row := range rows {
		out.SetRow(i, row)
	}

	relabel := make([]int, len(labels))
	for d, l := range labels {
		relabel[d] = remap[l]
	}
	return out, relabel
}

// bysize - topics renumbered largest first; equal sizes keep their order
func bysize(tv *mat.Dense, labels []int) (*mat.Dense, []int) {
	k, dim := tv.Dims()
	sizes := countlabels(labels, k)
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return sizes[order[i]] > sizes[order[j]] })

	remap := make([]int, k)
	out := mat.NewDense(k, dim, nil)
	for i, t := range order {
		remap[t] = i
		out.SetRow(i, tv.RawRowView(t))
	}

	relabel := make([]int, len(labels))
	for d, l := range labels {
		relabel[d] = remap[l]
	}
	return out, relabel
}

func rowsof(m *mat.Dense) int {
	r, _ := m.Dims()
	return r
}
