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

// WordCloudPanel - word size follows weight; background is any css colour
func WordCloudPanel(title string, words []string, weights []float64, background string) (*charts.WordCloud, error) {
	const (
		SHAPE     = "circle"
		TITLECOL  = "white"
		LEFTALIGN = "center"
	)

	if len(words) != len(weights) {
		return nil, fmt.Errorf("%w: %d words and %d weights", ErrMisaligned, len(words), len(weights))
	}

	data := make([]opts.WordCloudData, len(words))
	for i := range words {
		data[i] = opts.WordCloudData{Name: words[i], Value: weights[i]}
	}

	tst := opts.TextStyle{Color: TITLECOL}
	if background == "" || background == "white" {
		tst.Color = ""
	}

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           vv.CLOUDWIDTH,
			Height:          vv.CLOUDHEIGHT,
			BackgroundColor: background,
			ChartID:         chartid(),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			TitleStyle: &tst,
			Left:       LEFTALIGN,
		}),
	)

	// nb: "World" is how go-echarts spells it
	wc.AddSeries(title, data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			Shape:         SHAPE,
			SizeRange:     []float32{12, 72},
			RotationRange: []float32{0, 0},
		}),
	)
	return wc, nil
}

// PlotWordClouds - a cloud for each of the first numTopic reduced topics; words weighted by softmax of their scores
func PlotWordClouds(w io.Writer, src TopicWordSource, numTopic int, background string) error {
	const (
		TITLE = "Topic Word Clouds"
		PANEL = "Topic %d"
	)

	if background == "" {
		background = vv.T2VCLOUDBG
	}

	fig, err := reducedfigure(src, numTopic, TITLE, FigureOpts{Columns: 1, Background: background}, func(i int, words []string, scores []float64) (Charter, error) {
		if len(words) != len(scores) {
			return nil, fmt.Errorf("%w: %d words and %d scores", ErrMisaligned, len(words), len(scores))
		}
		if len(words) > vv.T2VCLOUDWORDS {
			words = words[:vv.T2VCLOUDWORDS]
			scores = scores[:vv.T2VCLOUDWORDS]
		}
		return WordCloudPanel(fmt.Sprintf(PANEL, i), words, vec.Softmax(scores), background)
	})
	if err != nil {
		return err
	}
	return fig.Render(w)
}
