//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"github.com/e-gun/topicmodels/internal/mm"
	"github.com/e-gun/topicmodels/internal/vv"
	"github.com/e-gun/wego/pkg/model/glove"
	"github.com/e-gun/wego/pkg/model/lexvec"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"runtime"
)

var (
	Msg = mm.NewMessageMakerWithDefaults()
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

//
// TF-IDF CONFIGURATION
//

// TFIDFConfig - document frequencies are fractions of the number of documents
type TFIDFConfig struct {
	MinDF       float64  `json:"min_df"`
	MaxDF       float64  `json:"max_df"`
	MaxFeatures int      `json:"max_features"` // 0 means no cap
	Norm        string   `json:"norm"`         // "l1", "l2", "none"
	SmoothIDF   bool     `json:"smooth_idf"`
	StopWords   []string `json:"stop_words"`
}

func (c TFIDFConfig) Validate() error {
	switch {
	case c.MinDF < 0 || c.MinDF > 1:
		return fmt.Errorf("%w: min_df %v not in [0, 1]", ErrInvalidConfig, c.MinDF)
	case c.MaxDF < 0 || c.MaxDF > 1:
		return fmt.Errorf("%w: max_df %v not in [0, 1]", ErrInvalidConfig, c.MaxDF)
	case c.MaxFeatures < 0:
		return fmt.Errorf("%w: max_features %d < 0", ErrInvalidConfig, c.MaxFeatures)
	}
	switch c.Norm {
	case "l1", "l2", "none", "":
	default:
		return fmt.Errorf("%w: norm '%s'", ErrInvalidConfig, c.Norm)
	}
	return nil
}

//
// NMF CONFIGURATION
//

type NMFConfig struct {
	Components  int     `json:"n_components"`
	AlphaW      float64 `json:"alpha_W"`
	AlphaH      float64 `json:"alpha_H"`
	L1Ratio     float64 `json:"l1_ratio"`
	BetaLoss    string  `json:"beta_loss"` // "frobenius", "kullback-leibler"
	Init        string  `json:"init"`      // "nndsvd", "nndsvda", "nndsvdar", "random"
	Solver      string  `json:"solver"`    // only "mu"
	MaxIter     int     `json:"max_iter"`
	RandomState int64   `json:"random_state"`
	Tol         float64 `json:"tol"`
}

func (c NMFConfig) Validate() error {
	switch {
	case c.Components < 1:
		return fmt.Errorf("%w: n_components %d < 1", ErrInvalidConfig, c.Components)
	case c.AlphaW < 0 || c.AlphaH < 0:
		return fmt.Errorf("%w: negative regularization", ErrInvalidConfig)
	case c.L1Ratio < 0 || c.L1Ratio > 1:
		return fmt.Errorf("%w: l1_ratio %v not in [0, 1]", ErrInvalidConfig, c.L1Ratio)
	case c.MaxIter < 1:
		return fmt.Errorf("%w: max_iter %d < 1", ErrInvalidConfig, c.MaxIter)
	case c.Tol < 0:
		return fmt.Errorf("%w: tol %v < 0", ErrInvalidConfig, c.Tol)
	}

	if _, ok := betalosses[c.BetaLoss]; !ok {
		return fmt.Errorf("%w: beta_loss '%s'", ErrInvalidConfig, c.BetaLoss)
	}

	switch c.Init {
	case "nndsvd", "nndsvda", "nndsvdar", "random":
	default:
		return fmt.Errorf("%w: init '%s'", ErrInvalidConfig, c.Init)
	}

	if c.Solver != "mu" {
		return fmt.Errorf("%w: solver '%s'", ErrInvalidConfig, c.Solver)
	}
	return nil
}

// beta values of the supported losses
var betalosses = map[string]float64{
	"frobenius":        2,
	"kullback-leibler": 1,
}

//
// EMBEDDING CONFIGURATION
//

// EmbedConfig - which wego model to train and how
type EmbedConfig struct {
	ModelType string // "w2v", "glove", "lexvec"
	Word2Vec  word2vec.Options
	GloVe     glove.Options
	LexVec    lexvec.Options
	StopWords []string
}

func (c EmbedConfig) Validate() error {
	switch c.ModelType {
	case "w2v", "glove", "lexvec":
		return nil
	default:
		return fmt.Errorf("%w: model type '%s'", ErrInvalidConfig, c.ModelType)
	}
}

// ClusterConfig - topic discovery over document vectors
type ClusterConfig struct {
	Similarity     float64 `json:"similarity"`       // cosine threshold for joining a cluster
	MinClusterSize int     `json:"min_cluster_size"` // smaller clusters are dissolved
	RefinePasses   int     `json:"refine_passes"`
	TopicWords     int     `json:"topic_words"`
}

func (c ClusterConfig) Validate() error {
	switch {
	case c.Similarity < -1 || c.Similarity > 1:
		return fmt.Errorf("%w: similarity %v not in [-1, 1]", ErrInvalidConfig, c.Similarity)
	case c.MinClusterSize < 1:
		return fmt.Errorf("%w: min_cluster_size %d < 1", ErrInvalidConfig, c.MinClusterSize)
	case c.RefinePasses < 0:
		return fmt.Errorf("%w: refine_passes %d < 0", ErrInvalidConfig, c.RefinePasses)
	case c.TopicWords < 1:
		return fmt.Errorf("%w: topic_words %d < 1", ErrInvalidConfig, c.TopicWords)
	}
	return nil
}

//
// DEFAULTS
//

func DefaultTFIDF() TFIDFConfig {
	return TFIDFConfig{
		MinDF:       vv.TFIDFMINDF,
		MaxDF:       vv.TFIDFMAXDF,
		MaxFeatures: vv.TFIDFMAXFEATURES,
		Norm:        vv.TFIDFNORM,
		SmoothIDF:   true,
	}
}

// DefaultNMF - the tuned parameters for a k topic model
func DefaultNMF(k int) NMFConfig {
	return NMFConfig{
		Components:  k,
		AlphaW:      vv.NMFALPHAW,
		AlphaH:      vv.NMFALPHAH,
		L1Ratio:     vv.NMFL1RATIO,
		BetaLoss:    vv.NMFBETALOSS,
		Init:        vv.NMFINIT,
		Solver:      vv.NMFSOLVER,
		MaxIter:     vv.NMFMAXITER,
		RandomState: vv.NMFRANDSTATE,
		Tol:         vv.NMFTOL,
	}
}

func DefaultCluster() ClusterConfig {
	return ClusterConfig{
		Similarity:     vv.T2VCLUSTERSIM,
		MinClusterSize: vv.T2VMINCLUSTER,
		RefinePasses:   vv.T2VREFINEPASSES,
		TopicWords:     vv.T2VTOPICWORDS,
	}
}

func DefaultEmbed() EmbedConfig {
	w := DefaultW2VVectors
	l := DefaultLexVecVectors
	g := DefaultGloveVectors
	w.Goroutines = runtime.NumCPU()
	l.Goroutines = runtime.NumCPU()
	g.Goroutines = runtime.NumCPU()
	return EmbedConfig{
		ModelType: vv.T2VMODELDEFAULT,
		Word2Vec:  w,
		GloVe:     g,
		LexVec:    l,
		StopWords: EnglishStops(),
	}
}

//
// WEGO NOTES AND DEFAULTS
//

var (
	// DefaultW2VVectors - documents here are short: keep rare words and a narrow window
	DefaultW2VVectors = word2vec.Options{
		BatchSize:          1024,
		Dim:                100,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               40,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           100,
		MinCount:           2,
		MinLR:              0.0000025,
		ModelType:          "skipgram", // "cbow" and "skipgram" available
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             15,
	}
	DefaultLexVecVectors = lexvec.Options{
		BatchSize:          1024,
		Dim:                100,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               40,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           2,
		MinLR:              0.025 * 1.0e-4,
		NegativeSampleSize: 5,
		RelationType:       "ppmi", // "ppmi", "pmi", "co", "logco" are available; "co" will fail to model
		Smooth:             0.75,
		SubsampleThreshold: 1.0e-3,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             15,
	}
	// DefaultGloveVectors - wego's default: {0.75 10000 inc 10 false 20 0.025 15 100000 -1 5 sgd 0.001 false false 5 100}
	DefaultGloveVectors = glove.Options{
		Alpha:              0.55,
		BatchSize:          1024,
		CountType:          "inc", // "inc", "prox" available; but "prox" panics
		Dim:                75,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               40,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           2,
		SolverType:         "adagrad", // "sdg", "adagrad" available
		SubsampleThreshold: 0.001,
		ToLower:            false,
		Verbose:            false,
		Window:             15,
		Xmax:               90,
	}
)
