//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "topicmodels"
	SHORTNAME = "TPM"
	VERSION   = "0.2.1"

	// tf-idf weighting; fractions of the document count
	TFIDFMINDF       = 0.0008
	TFIDFMAXDF       = 0.90
	TFIDFMAXFEATURES = 500
	TFIDFNORM        = "l1"

	// nmf; these values came out of a hyperparameter search against the original corpus
	NMFALPHAW    = 3.108851387228361e-05
	NMFALPHAH    = 8.312434671077156e-05
	NMFL1RATIO   = 0.3883534426209613
	NMFBETALOSS  = "kullback-leibler"
	NMFINIT      = "nndsvda"
	NMFSOLVER    = "mu"
	NMFMAXITER   = 1000
	NMFRANDSTATE = 4013
	NMFTOL       = 1e-4
	NMFTOPWORDS  = 10
	NMFCHKEVERY  = 10
	NMFPLOTTITLE = "Topics in NMF model (KL Divergence Loss)"

	// embedding topic model
	T2VMODELDEFAULT = "w2v"
	T2VTOPICWORDS   = 50
	T2VMINCLUSTER   = 3
	T2VCLUSTERSIM   = 0.55
	T2VREFINEPASSES = 10
	T2VCLOUDBG      = "black"
	T2VCLOUDWORDS   = 50

	EMBEDPOLLINGPAUSE = 1000000 * 5 // 1000000 * 5 = every .005s

	// charts
	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"
	PANELWIDTHPX      = 1800
	PANELHEIGHTPX     = 540
	BARPANELHEIGHT    = "720px"
	CLOUDWIDTH        = "1600px"
	CLOUDHEIGHT       = "400px"
	MAPWIDTH          = "1200px"
	MAPHEIGHT         = "900px"

	JSONINDENT = "  "
)
