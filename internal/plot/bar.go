//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package plot

import (
	"fmt"
	"github.com/e-gun/topicmodels/internal/vec"
	"github.com/e-gun/topicmodels/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"io"
)

// TopicWordSource - anything that can hand over reduced topics; *vec.ReducedModel does
type TopicWordSource interface {
	NumTopics() int
	TopicWordsReduced(i int) ([]string, error)
	TopicWordScoresReduced(i int) ([]float64, error)
}

// WordBarRow - one line of the "Topic Words"/"Probability" table
type WordBarRow struct {
	Word        string  `json:"Topic Words"`
	Probability float64 `json:"Probability"`
}

// TermBarPanel - horizontal bars with the heaviest term at the top
func TermBarPanel(title string, terms []string, weights []float64) (*charts.Bar, error) {
	const (
		FONTSTYLE = "normal"
		LEFTALIGN = "center"
	)

	if len(terms) != len(weights) {
		return nil, fmt.Errorf("%w: %d terms and %d weights", ErrMisaligned, len(terms), len(weights))
	}

	// echarts draws the first category at the bottom of a reversed axis
	cats := make([]string, len(terms))
	data := make([]opts.BarData, len(terms))
	for i := range terms {
		j := len(terms) - 1 - i
		cats[i] = terms[j]
		data[i] = opts.BarData{Name: terms[j], Value: weights[j]}
	}

	tst := opts.TextStyle{
		FontStyle: FONTSTYLE,
		FontSize:  16,
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   fmt.Sprintf("%dpx", vv.PANELWIDTHPX/3),
			Height:  vv.BARPANELHEIGHT,
			ChartID: chartid(),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			TitleStyle: &tst,
			Left:       LEFTALIGN,
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(cats).AddSeries(title, data)
	bar.XYReversal()
	return bar, nil
}

// PlotTopWords - one bar panel per topic, all under a single title
func PlotTopWords(w io.Writer, topics [][]vec.RankedTerm, title string) error {
	const (
		MSG1  = "PlotTopWords(): %d panels"
		PANEL = "Topic %d"
	)

	if len(topics) == 0 {
		return ErrNoPanels
	}

	fig := NewFigure(title, len(topics), FigureOpts{})
	for i, tt := range topics {
		b, err := TermBarPanel(fmt.Sprintf(PANEL, i+1), vec.Terms(tt), vec.Weights(tt))
		if err != nil {
			return err
		}
		fig.AddPanel(b)
	}

	Msg.PEEK(fmt.Sprintf(MSG1, fig.Panels()))
	return fig.Render(w)
}

// WordBarTable - pair words with their scores
func WordBarTable(words []string, scores []float64) ([]WordBarRow, error) {
	if len(words) != len(scores) {
		return nil, fmt.Errorf("%w: %d words and %d scores", ErrMisaligned, len(words), len(scores))
	}
	rows := make([]WordBarRow, len(words))
	for i := range words {
		rows[i] = WordBarRow{Word: words[i], Probability: scores[i]}
	}
	return rows, nil
}

// PlotWordBars - a bar chart for each of the first numTopic reduced topics
func PlotWordBars(w io.Writer, src TopicWordSource, numTopic int) error {
	const (
		TITLE = "Topic Words"
		PANEL = "Topic %d"
	)

	fig, err := reducedfigure(src, numTopic, TITLE, FigureOpts{Columns: 1}, func(i int, words []string, scores []float64) (Charter, error) {
		rows, e := WordBarTable(words, scores)
		if e != nil {
			return nil, e
		}
		terms := make([]string, len(rows))
		probs := make([]float64, len(rows))
		for j, r := range rows {
			terms[j] = r.Word
			probs[j] = r.Probability
		}
		return TermBarPanel(fmt.Sprintf(PANEL, i), terms, probs)
	})
	if err != nil {
		return err
	}
	return fig.Render(w)
}

// reducedfigure - walk the first numTopic topics of src and build a panel for each
func reducedfigure(src TopicWordSource, numTopic int, title string, fo FigureOpts, panel func(int, []string, []float64) (Charter, error)) (*Figure, error) {
	if numTopic > src.NumTopics() {
		numTopic = src.NumTopics()
	}
	if numTopic < 1 {
		return nil, ErrNoPanels
	}

	fig := NewFigure(title, numTopic, fo)
	for i := 0; i < numTopic; i++ {
		words, err := src.TopicWordsReduced(i)
		if err != nil {
			return nil, err
		}
		scores, err := src.TopicWordScoresReduced(i)
		if err != nil {
			return nil, err
		}
		c, err := panel(i, words, scores)
		if err != nil {
			return nil, err
		}
		fig.AddPanel(c)
	}
	return fig, nil
}
