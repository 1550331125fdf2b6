//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/embedding/embutil"
	"github.com/e-gun/wego/pkg/search"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
	"sort"
	"time"
)

var (
	ErrTopicIndex        = errors.New("topic index out of range")
	ErrInvalidTopicCount = errors.New("topic count must be at least 1")
	ErrTooManyTopics     = errors.New("cannot reduce to more topics than the model has")
	ErrSearcherFailed    = errors.New("failed to build a word searcher")
)

// TopicModel - topics found as dense regions of jointly embedded documents and words
type TopicModel struct {
	ID           uuid.UUID
	Cfg          ClusterConfig
	Embeddings   embedding.Embeddings
	DocVectors   *mat.Dense // docs x dim
	TopicVectors *mat.Dense // topics x dim; largest topic first
	searcher     *search.Searcher
	doctopics    []int
	sizes        []int
	words        [][]string
	scores       [][]float64
}

// TrainTopicModel - embed, discover topics, then describe each topic by its nearest words
func TrainTopicModel(docs []string, emb Embedder, cfg ClusterConfig) (*TopicModel, error) {
	const (
		MSG1  = "TrainTopicModel() embedded %d words"
		MSG2  = "TrainTopicModel() found %d topics in %d documents"
		FAIL1 = "TrainTopicModel() could not embed the corpus: %w"
	)

	start := time.Now()
	previous := time.Now()

	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	embs, err := emb.Embed(docs)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}
	if len(embs) == 0 {
		return nil, ErrNoEmbeddings
	}
	Msg.Timer("T1", Msg.Sprintf(MSG1, len(embs)), start, previous)
	previous = time.Now()

	dv, err := DocumentVectors(Tokenise(docs, nil), embs)
	if err != nil {
		return nil, err
	}

	tv, labels, err := DiscoverTopics(dv, cfg)
	if err != nil {
		return nil, err
	}

	withnorms(embs)
	searcher, err := search.New(embs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearcherFailed, err)
	}

	words, scores, err := topicwords(searcher, tv, cfg.TopicWords, len(embs))
	if err != nil {
		return nil, err
	}

	tm := &TopicModel{
		ID:           uuid.New(),
		Cfg:          cfg,
		Embeddings:   embs,
		DocVectors:   dv,
		TopicVectors: tv,
		searcher:     searcher,
		doctopics:    labels,
		sizes:        countlabels(labels, rowsof(tv)),
		words:        words,
		scores:       scores,
	}

	Msg.Timer("T2", Msg.Sprintf(MSG2, tm.NumTopics(), len(docs)), start, previous)
	return tm, nil
}

func (tm *TopicModel) NumTopics() int { return rowsof(tm.TopicVectors) }

// TopicSizes - documents per topic; non-increasing
func (tm *TopicModel) TopicSizes() []int { return clone(tm.sizes) }

func (tm *TopicModel) DocumentTopics() []int { return clone(tm.doctopics) }

// DominantTopics - same as DocumentTopics; every document belongs to exactly one topic
func (tm *TopicModel) DominantTopics() []int { return tm.DocumentTopics() }

func (tm *TopicModel) DocumentMatrix() mat.Matrix { return tm.DocVectors }

func (tm *TopicModel) TopicWords(i int) ([]string, error) {
	if i < 0 || i >= len(tm.words) {
		return nil, ErrTopicIndex
	}
	return clone(tm.words[i]), nil
}

func (tm *TopicModel) TopicWordScores(i int) ([]float64, error) {
	if i < 0 || i >= len(tm.scores) {
		return nil, ErrTopicIndex
	}
	return clone(tm.scores[i]), nil
}

// topicwords - the n nearest words to each topic vector and their cosine similarities, most similar first
func topicwords(searcher *search.Searcher, tv *mat.Dense, n int, nwords int) ([][]string, [][]float64, error) {
	const (
		FAIL1 = "topicwords() failed to yield neighbors of topic %d: %w"
	)

	if n > nwords {
		n = nwords
	}

	k := rowsof(tv)
	words := make([][]string, k)
	scores := make([][]float64, k)
	for t := 0; t < k; t++ {
		neighbors, err := searcher.SearchVector(mat.Row(nil, t, tv), n)
		if err != nil {
			return nil, nil, fmt.Errorf(FAIL1, t, err)
		}
		var found search.Neighbors
		for _, nb := range neighbors {
			if nb.Word == "" || math.IsNaN(nb.Similarity) {
				continue
			}
			found = append(found, nb)
		}
		sort.SliceStable(found, func(i, j int) bool { return found[i].Similarity > found[j].Similarity })
		for _, nb := range found {
			words[t] = append(words[t], nb.Word)
			scores[t] = append(scores[t], nb.Similarity)
		}
	}
	return words, scores, nil
}

// withnorms - the searcher scores by Embedding.Norm and treats a zero norm as no similarity at all;
// embedding.Load() fills it in but other embedders need not
func withnorms(embs embedding.Embeddings) {
	for i := range embs {
		if embs[i].Norm == 0 {
			embs[i].Norm = embutil.Norm(embs[i].Vector)
		}
	}
}

// Softmax - exp(s) / Σ exp(s), shifted by the max for stability
func Softmax(s []float64) []float64 {
	out := make([]float64, len(s))
	if len(s) == 0 {
		return out
	}
	mx := floats.Max(s)
	for i, v := range s {
		out[i] = math.Exp(v - mx)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

func clone[T any](s []T) []T {
	c := make([]T, len(s))
	copy(c, s)
	return c
}
