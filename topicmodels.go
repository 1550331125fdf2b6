//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package topicmodels finds topics in a corpus of short documents in two ways:
// tf-idf weighting factored by NMF, and jointly embedded words and documents clustered into topics.
package topicmodels

import (
	"errors"
	"fmt"
	"github.com/e-gun/topicmodels/internal/mm"
	"github.com/e-gun/topicmodels/internal/plot"
	"github.com/e-gun/topicmodels/internal/vec"
	"github.com/e-gun/topicmodels/internal/vv"
	"gonum.org/v1/gonum/mat"
	"io"
)

var (
	Msg = mm.NewMessageMakerWithDefaults()
)

var (
	ErrNilModel = errors.New("no model")
)

type (
	NMFModel      = vec.NMFModel
	TopicModel    = vec.TopicModel
	ReducedModel  = vec.ReducedModel
	RankedTerm    = vec.RankedTerm
	Embedder      = vec.Embedder
	TFIDFConfig   = vec.TFIDFConfig
	NMFConfig     = vec.NMFConfig
	EmbedConfig   = vec.EmbedConfig
	ClusterConfig = vec.ClusterConfig
)

// DocumentSpace - a fitted model that can place every document and name its dominant topic
type DocumentSpace interface {
	DocumentMatrix() mat.Matrix
	DominantTopics() []int
}

//
// NMF
//

// RunNMF - fit numTopics topics with the default weighting and factorization; draw the top words if out is not nil
func RunNMF(docs []string, numTopics int, out io.Writer) (*NMFModel, error) {
	return RunNMFWith(docs, numTopics, vec.DefaultTFIDF(), vec.DefaultNMF(numTopics), out)
}

// RunNMFWith - RunNMF with explicit configuration
func RunNMFWith(docs []string, numTopics int, tcfg TFIDFConfig, ncfg NMFConfig, out io.Writer) (*NMFModel, error) {
	model, err := vec.RunNMF(docs, numTopics, tcfg, ncfg)
	if err != nil {
		return nil, err
	}
	if out != nil {
		if err = PlotTopWords(out, model, vv.NMFTOPWORDS, vv.NMFPLOTTITLE); err != nil {
			return model, err
		}
	}
	return model, nil
}

// PlotTopWords - one horizontal bar panel per topic showing its nTopWords heaviest terms
func PlotTopWords(out io.Writer, model *NMFModel, nTopWords int, title string) error {
	if model == nil {
		return ErrNilModel
	}
	return plot.PlotTopWords(out, model.Topics(nTopWords), title)
}

// NMFSummary - html table of top words, dominant topic counts and topic weights
func NMFSummary(model *NMFModel, topn int) (string, error) {
	if model == nil {
		return "", ErrNilModel
	}
	r, _ := model.W.Dims()
	return plot.TopicSummaryTable(
		model.Topics(topn),
		vec.DominantTopicCounts(model.W),
		vec.TopicWeightShare(model.W),
		r,
		topn,
	), nil
}

//
// EMBEDDED TOPICS
//

// RunTop2Vec - train word vectors on the corpus and discover its topics
func RunTop2Vec(docs []string) (*TopicModel, error) {
	return RunTop2VecWith(docs, vec.NewWegoEmbedder(vec.DefaultEmbed()), vec.DefaultCluster())
}

// RunTop2VecWith - RunTop2Vec with an explicit embedder and clustering setup
func RunTop2VecWith(docs []string, emb Embedder, ccfg ClusterConfig) (*TopicModel, error) {
	const (
		MSG1 = "RunTop2VecWith(): %d topics"
	)
	tm, err := vec.TrainTopicModel(docs, emb, ccfg)
	if err != nil {
		return nil, err
	}
	Msg.FYI(fmt.Sprintf(MSG1, tm.NumTopics()))
	return tm, nil
}

// RunTop2VecReduced - collapse the model into numTopics topics; the model itself is left alone
func RunTop2VecReduced(model *TopicModel, numTopics int) (*ReducedModel, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	return model.HierarchicalTopicReduction(numTopics)
}

// GetTopicWords - the words of every reduced topic, largest topic first
func GetTopicWords(reduced *ReducedModel) [][]string {
	if reduced == nil {
		return nil
	}
	return reduced.AllTopicWords()
}

// PrintWordCloud - a word cloud on black for each of the first numTopic reduced topics
func PrintWordCloud(out io.Writer, reduced *ReducedModel, numTopic int) error {
	if reduced == nil {
		return ErrNilModel
	}
	return plot.PlotWordClouds(out, reduced, numTopic, vv.T2VCLOUDBG)
}

// PrintWordBar - a bar chart of word scores for each of the first numTopic reduced topics
func PrintWordBar(out io.Writer, reduced *ReducedModel, numTopic int) error {
	if reduced == nil {
		return ErrNilModel
	}
	return plot.PlotWordBars(out, reduced, numTopic)
}

//
// DOCUMENT MAPS
//

// PlotDocumentMap - project the documents of either kind of model onto a plane, coloured by dominant topic
func PlotDocumentMap(out io.Writer, model DocumentSpace) error {
	const (
		TITLE = "Documents by dominant topic (%d documents)"
	)
	if model == nil {
		return ErrNilModel
	}

	pts, err := vec.Project2D(model.DocumentMatrix())
	if err != nil {
		return err
	}
	labels := model.DominantTopics()
	return plot.PlotDocumentMap(out, pts, labels, firsttopic(model), fmt.Sprintf(TITLE, len(labels)))
}

// firsttopic - the nmf panels count from 1; the embedding model's word charts count from 0
func firsttopic(model DocumentSpace) int {
	switch model.(type) {
	case *TopicModel:
		return 0
	default:
		return 1
	}
}
