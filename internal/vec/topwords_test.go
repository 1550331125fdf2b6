//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"gonum.org/v1/gonum/mat"
	"reflect"
	"testing"
)

func TestTopWords(t *testing.T) {
	vocab := []string{"ant", "bee", "cat", "dog"}
	h := mat.NewDense(2, 4, []float64{
		0.1, 0.5, 0.5, 0.0,
		0.9, 0.0, 0.2, 0.3,
	})

	tops := TopWords(h, vocab, 3)
	if len(tops) != 2 {
		t.Fatalf("TopWords() returned %d topics", len(tops))
	}

	// equal weights keep vocabulary order
	if got := Terms(tops[0]); !reflect.DeepEqual(got, []string{"bee", "cat", "ant"}) {
		t.Errorf("topic 0 terms = %v", got)
	}
	if got := Terms(tops[1]); !reflect.DeepEqual(got, []string{"ant", "dog", "cat"}) {
		t.Errorf("topic 1 terms = %v", got)
	}

	for i, tt := range tops {
		ww := Weights(tt)
		for j := 1; j < len(ww); j++ {
			if ww[j] > ww[j-1] {
				t.Errorf("topic %d weights increase at rank %d: %v", i, j+1, ww)
			}
		}
		if tt[0].Rank != 1 || tt[len(tt)-1].Rank != len(tt) {
			t.Errorf("topic %d ranks = %v", i, tt)
		}
	}
}

func TestTopWordsClipsToVocabulary(t *testing.T) {
	h := mat.NewDense(1, 2, []float64{1, 2})
	tops := TopWords(h, []string{"x", "y"}, 10)
	if len(tops[0]) != 2 {
		t.Errorf("TopWords() kept %d terms of a 2 word vocabulary", len(tops[0]))
	}
}

func TestDominantTopics(t *testing.T) {
	w := mat.NewDense(4, 3, []float64{
		0.9, 0.1, 0.0,
		0.2, 0.7, 0.1,
		0.1, 0.8, 0.1,
		0.0, 0.0, 0.0,
	})

	if got := DominantTopics(w); !reflect.DeepEqual(got, []int{0, 1, 1, 0}) {
		t.Errorf("DominantTopics() = %v", got)
	}
	if got := DominantTopicCounts(w); !reflect.DeepEqual(got, []int{2, 2, 0}) {
		t.Errorf("DominantTopicCounts() = %v", got)
	}

	share := TopicWeightShare(w)
	if share[1] != 1 {
		t.Errorf("the heaviest topic should scale to 1: %v", share)
	}
	if share[2] >= share[0] {
		t.Errorf("TopicWeightShare() = %v", share)
	}
}
