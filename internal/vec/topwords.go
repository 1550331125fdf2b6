//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"sort"
)

// RankedTerm - Rank counts from 1
type RankedTerm struct {
	Term   string
	Weight float64
	Rank   int
}

// TopWords - the n heaviest terms of every row of H; ties go to the lower vocabulary index
func TopWords(h mat.Matrix, vocab []string, n int) [][]RankedTerm {
	tr, tc := h.Dims()
	if n > tc {
		n = tc
	}
	if n < 0 {
		n = 0
	}

	tops := make([][]RankedTerm, tr)
	for topic := 0; topic < tr; topic++ {
		idx := make([]int, tc)
		for word := 0; word < tc; word++ {
			idx[word] = word
		}
		sort.SliceStable(idx, func(i, j int) bool {
			return h.At(topic, idx[i]) > h.At(topic, idx[j])
		})

		tss := make([]RankedTerm, n)
		for i := 0; i < n; i++ {
			tss[i] = RankedTerm{
				Term:   vocab[idx[i]],
				Weight: h.At(topic, idx[i]),
				Rank:   i + 1,
			}
		}
		tops[topic] = tss
	}
	return tops
}

// Terms - just the words of a ranked list
func Terms(rr []RankedTerm) []string {
	ww := make([]string, len(rr))
	for i := range rr {
		ww[i] = rr[i].Term
	}
	return ww
}

// Weights - just the weights of a ranked list
func Weights(rr []RankedTerm) []float64 {
	ff := make([]float64, len(rr))
	for i := range rr {
		ff[i] = rr[i].Weight
	}
	return ff
}

// DominantTopics - for each document (row of W) the topic with the largest weight; ties go to the lower topic
func DominantTopics(w mat.Matrix) []int {
	dr, dc := w.Dims()
	winners := make([]int, dr)
	for doc := 0; doc < dr; doc++ {
		mx := float64(0)
		winner := 0
		for topic := 0; topic < dc; topic++ {
			if w.At(doc, topic) > mx {
				winner = topic
				mx = w.At(doc, topic)
			}
		}
		winners[doc] = winner
	}
	return winners
}

// DominantTopicCounts - N documents have topic X as their dominant topic
func DominantTopicCounts(w mat.Matrix) []int {
	_, dc := w.Dims()
	counter := make([]int, dc)
	for _, t := range DominantTopics(w) {
		counter[t]++
	}
	return counter
}

// TopicWeightShare - scaled total accumulated weight of each topic; the heaviest is 1
func TopicWeightShare(w mat.Matrix) []float64 {
	dr, dc := w.Dims()
	counter := make([]float64, dc)
	for doc := 0; doc < dr; doc++ {
		for topic := 0; topic < dc; topic++ {
			counter[topic] += w.At(doc, topic)
		}
	}

	high := floats.Max(counter)
	if high == 0 {
		return counter
	}
	for i := range counter {
		counter[i] /= high
	}
	return counter
}
