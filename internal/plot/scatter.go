//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package plot

import (
	"fmt"
	"github.com/e-gun/topicmodels/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
	"io"
)

// DocumentMapPanel - 2d points (rows of a n x 2 matrix); one series per topic label;
// first is the number shown for label 0 so that the legend matches the word charts of the same model
func DocumentMapPanel(title string, points mat.Matrix, labels []int, first int) (*charts.Scatter, error) {
	const (
		SERIES    = "Topic %d"
		SYMBOL    = "circle"
		SYMSIZE   = 8
		LEFTALIGN = "center"
	)

	r, c := points.Dims()
	if r != len(labels) {
		return nil, fmt.Errorf("%w: %d points and %d labels", ErrMisaligned, r, len(labels))
	}
	if r == 0 || c < 2 {
		return nil, ErrNoPanels
	}

	maxlab := 0
	for _, l := range labels {
		if l > maxlab {
			maxlab = l
		}
	}

	bytopic := make([][]opts.ScatterData, maxlab+1)
	for i := 0; i < r; i++ {
		if labels[i] < 0 {
			continue
		}
		bytopic[labels[i]] = append(bytopic[labels[i]], opts.ScatterData{
			Name:       fmt.Sprintf("%d", i),
			Value:      []float64{points.At(i, 0), points.At(i, 1)},
			Symbol:     SYMBOL,
			SymbolSize: SYMSIZE,
		})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   vv.MAPWIDTH,
			Height:  vv.MAPHEIGHT,
			ChartID: chartid(),
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: LEFTALIGN}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	for t := range bytopic {
		if len(bytopic[t]) == 0 {
			continue
		}
		sc.AddSeries(fmt.Sprintf(SERIES, t+first), bytopic[t])
	}
	return sc, nil
}

// PlotDocumentMap - every document as a point coloured by its dominant topic
func PlotDocumentMap(w io.Writer, points mat.Matrix, labels []int, first int, title string) error {
	const (
		MSG1 = "PlotDocumentMap(): %d documents"
	)

	sc, err := DocumentMapPanel(title, points, labels, first)
	if err != nil {
		return err
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(labels)))

	fig := NewFigure(title, 1, FigureOpts{})
	fig.AddPanel(sc)
	return fig.Render(w)
}
