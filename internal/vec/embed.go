//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/e-gun/nlp"
	"github.com/e-gun/topicmodels/internal/vv"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model"
	"github.com/e-gun/wego/pkg/model/glove"
	"github.com/e-gun/wego/pkg/model/lexvec"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"io"
	"strings"
	"time"
)

var (
	ErrEmbeddingFailed = errors.New("embedding failed")
	ErrNoEmbeddings    = errors.New("no word embeddings")
)

// Embedder - turns a corpus into word embeddings
type Embedder interface {
	Embed(corpus []string) (embedding.Embeddings, error)
}

// WegoEmbedder - trains a word2vec, glove or lexvec model on the corpus
type WegoEmbedder struct {
	Cfg EmbedConfig
}

func NewWegoEmbedder(cfg EmbedConfig) *WegoEmbedder {
	return &WegoEmbedder{Cfg: cfg}
}

func (e *WegoEmbedder) Embed(corpus []string) (embedding.Embeddings, error) {
	const (
		FAIL1 = "model initialization failed"
		FAIL2 = "failed to train vector embeddings"
		FAIL3 = "failed to save vector embeddings"
		FAIL4 = "failed to load vector embeddings"
		MSG1  = "Embed() successfuly trained a %s model (%ss)"
		MSG2  = "Embed() loaded %d word vectors"
	)

	if err := e.Cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	// [a] pick a model

	var vmodel model.Model
	var err error

	switch e.Cfg.ModelType {
	case "glove":
		vmodel, err = glove.NewForOptions(e.Cfg.GloVe)
	case "lexvec":
		vmodel, err = lexvec.NewForOptions(e.Cfg.LexVec)
	default:
		vmodel, err = word2vec.NewForOptions(e.Cfg.Word2Vec)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEmbeddingFailed, FAIL1, err)
	}

	// [b] train; input for Train() is 'io.ReadSeeker'

	thetext := TextBlock(Tokenise(corpus, e.Cfg.StopWords))
	b := bytes.NewReader([]byte(thetext))

	if err = trainwithreporter(vmodel, b); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEmbeddingFailed, FAIL2, err)
	}
	Msg.FYI(fmt.Sprintf(MSG1, e.Cfg.ModelType, fmt.Sprintf("%.3f", time.Since(start).Seconds())))

	// [c] use buffers; skip the disk

	var buf bytes.Buffer
	if err = vmodel.Save(&buf, vector.Agg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEmbeddingFailed, FAIL3, err)
	}

	embs, err := embedding.Load(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEmbeddingFailed, FAIL4, err)
	}

	Msg.PEEK(Msg.Sprintf(MSG2, len(embs)))
	return embs, nil
}

// trainwithreporter - Train() only returns once its Reporter() has been told to halt;
// so .Train() in the background and drain .Reporter() until training is over
func trainwithreporter(vmodel model.Model, r io.ReadSeeker) error {
	const (
		MSG1 = "trainwithreporter(): %d iterations reported"
	)

	trained := make(chan error, 1)
	go func() {
		trained <- vmodel.Train(r)
	}()

	ct := make(chan int)
	rep := make(chan string)
	go vmodel.Reporter(ct, rep)

	done := make(chan struct{})
	last := make(chan int, 1)

	getreport := func() {
		in := 0
		for {
			select {
			case m := <-ct:
				in = m
			case <-rep:
			case <-done:
				last <- in
				return
			}
			time.Sleep(vv.EMBEDPOLLINGPAUSE)
		}
	}

	go getreport()

	err := <-trained
	close(done)
	Msg.TMI(Msg.Sprintf(MSG1, <-last))
	return err
}

// Tokenise - lower-cased letter runs of each document, stopwords removed
func Tokenise(docs []string, stops []string) [][]string {
	tk := nlp.NewTokeniser(stops...)
	tokens := make([][]string, len(docs))
	for i := range docs {
		tokens[i] = tk.Tokenise(docs[i])
	}
	return tokens
}

// TextBlock - one line per document
func TextBlock(tokens [][]string) string {
	var sb strings.Builder
	for i := range tokens {
		sb.WriteString(strings.Join(tokens[i], " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
