//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package plot

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/e-gun/topicmodels/internal/vec"
	"github.com/go-echarts/go-echarts/v2/charts"
	"gonum.org/v1/gonum/mat"
	"strings"
	"testing"
)

// every panel kind fits on a page
var (
	_ Charter = (*charts.Bar)(nil)
	_ Charter = (*charts.WordCloud)(nil)
	_ Charter = (*charts.Scatter)(nil)
)

// fakesource - three topics of three words each
type fakesource struct {
	words  [][]string
	scores [][]float64
}

func newfakesource() fakesource {
	return fakesource{
		words:  [][]string{{"ant", "bee", "cat"}, {"dog", "eel", "fox"}, {"gnu", "hen", "ibis"}},
		scores: [][]float64{{0.9, 0.5, 0.1}, {0.8, 0.4, 0.2}, {0.7, 0.6, 0.3}},
	}
}

func (f fakesource) NumTopics() int { return len(f.words) }

func (f fakesource) TopicWordsReduced(i int) ([]string, error) {
	if i < 0 || i >= len(f.words) {
		return nil, vec.ErrTopicIndex
	}
	return f.words[i], nil
}

func (f fakesource) TopicWordScoresReduced(i int) ([]float64, error) {
	if i < 0 || i >= len(f.scores) {
		return nil, vec.ErrTopicIndex
	}
	return f.scores[i], nil
}

func TestGridFor(t *testing.T) {
	tests := []struct {
		n          int
		rows, cols int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 2},
		{4, 2, 2},
		{5, 2, 3},
		{10, 3, 4},
		{16, 4, 4},
		{17, 4, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.n), func(t *testing.T) {
			r, c := GridFor(tt.n)
			if r != tt.rows || c != tt.cols {
				t.Errorf("GridFor(%d) = %d, %d; want %d, %d", tt.n, r, c, tt.rows, tt.cols)
			}
			if tt.n > 0 && r*c < tt.n {
				t.Errorf("GridFor(%d) has room for only %d panels", tt.n, r*c)
			}
		})
	}
}

func TestTermBarPanel(t *testing.T) {
	if _, err := TermBarPanel("x", []string{"a"}, []float64{1, 2}); !errors.Is(err, ErrMisaligned) {
		t.Errorf("misaligned input error = %v", err)
	}

	b, err := TermBarPanel("Topic 1", []string{"heavy", "middle", "light"}, []float64{3, 2, 1})
	if err != nil {
		t.Fatalf("TermBarPanel() error = %v", err)
	}
	b.Validate()
	cats, ok := b.YAxisList[0].Data.([]string)
	if !ok || len(cats) != 3 {
		t.Fatalf("category axis = %v", b.YAxisList[0].Data)
	}
	// the last category is drawn at the top
	if cats[2] != "heavy" || cats[0] != "light" {
		t.Errorf("categories = %v", cats)
	}
}

func TestPlotTopWords(t *testing.T) {
	const title = "Topics in NMF model (KL Divergence Loss)"
	topics := [][]vec.RankedTerm{
		{{Term: "apple", Weight: 0.5, Rank: 1}, {Term: "pear", Weight: 0.2, Rank: 2}},
		{{Term: "oak", Weight: 0.7, Rank: 1}, {Term: "elm", Weight: 0.1, Rank: 2}},
		{{Term: "trout", Weight: 0.4, Rank: 1}, {Term: "carp", Weight: 0.3, Rank: 2}},
	}

	var buf bytes.Buffer
	if err := PlotTopWords(&buf, topics, title); err != nil {
		t.Fatalf("PlotTopWords() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Topic 1", "Topic 2", "Topic 3", "apple", "trout", `class="suptitle"`, "repeat(2, auto)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
	if strings.Count(out, "echarts.init(") != 3 {
		t.Errorf("%d charts rendered, want 3", strings.Count(out, "echarts.init("))
	}
	if strings.Count(out, title) < 2 {
		t.Error("the title belongs in both the page title and the suptitle")
	}

	if err := PlotTopWords(&buf, nil, title); !errors.Is(err, ErrNoPanels) {
		t.Errorf("no topics error = %v", err)
	}
}

func TestWordBarTable(t *testing.T) {
	rows, err := WordBarTable([]string{"a", "b"}, []float64{0.7, 0.3})
	if err != nil {
		t.Fatalf("WordBarTable() error = %v", err)
	}
	if len(rows) != 2 || rows[0].Word != "a" || rows[1].Probability != 0.3 {
		t.Errorf("WordBarTable() = %v", rows)
	}
	if _, err = WordBarTable([]string{"a"}, nil); !errors.Is(err, ErrMisaligned) {
		t.Errorf("misaligned error = %v", err)
	}
}

func TestPlotWordBars(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotWordBars(&buf, newfakesource(), 2); err != nil {
		t.Fatalf("PlotWordBars() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Topic 0") || !strings.Contains(out, "Topic 1") {
		t.Error("charts should be titled Topic 0 and Topic 1")
	}
	if strings.Contains(out, "gnu") {
		t.Error("only the first two topics belong in the figure")
	}

	// asking for too many is clipped
	buf.Reset()
	if err := PlotWordBars(&buf, newfakesource(), 10); err != nil {
		t.Fatalf("PlotWordBars() error = %v", err)
	}
	if strings.Count(buf.String(), "echarts.init(") != 3 {
		t.Error("expected one chart per available topic")
	}

	if err := PlotWordBars(&buf, newfakesource(), 0); !errors.Is(err, ErrNoPanels) {
		t.Errorf("numTopic 0 error = %v", err)
	}
}

func TestPlotWordClouds(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotWordClouds(&buf, newfakesource(), 3, ""); err != nil {
		t.Fatalf("PlotWordClouds() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Topic 0", "Topic 2", "wordCloud", "black", "ibis"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}

	bad := newfakesource()
	bad.scores[1] = bad.scores[1][:1]
	if err := PlotWordClouds(&buf, bad, 3, "white"); !errors.Is(err, ErrMisaligned) {
		t.Errorf("misaligned source error = %v", err)
	}
}

func TestPlotDocumentMap(t *testing.T) {
	pts := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 1,
		2, 0,
		0, 2,
	})

	tests := []struct {
		first  int
		want   []string
		unwant string
	}{
		{1, []string{"Topic 1", "Topic 2", "Topic 3", "scatter"}, "Topic 0"},
		{0, []string{"Topic 0", "Topic 1", "Topic 2", "scatter"}, "Topic 3"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("first=%d", tt.first), func(t *testing.T) {
			var buf bytes.Buffer
			if err := PlotDocumentMap(&buf, pts, []int{0, 0, 1, 2}, tt.first, "Document map"); err != nil {
				t.Fatalf("PlotDocumentMap() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output lacks %q", want)
				}
			}
			if strings.Contains(out, tt.unwant) {
				t.Errorf("output should not name %q", tt.unwant)
			}
		})
	}

	var buf bytes.Buffer
	if err := PlotDocumentMap(&buf, pts, []int{0}, 1, "x"); !errors.Is(err, ErrMisaligned) {
		t.Errorf("misaligned labels error = %v", err)
	}
}

func TestTopicSummaryTable(t *testing.T) {
	topics := [][]vec.RankedTerm{
		{{Term: "apple"}, {Term: "pear"}, {Term: "plum"}},
		{{Term: "oak"}, {Term: "<elm>"}, {Term: "ash"}},
	}
	out := TopicSummaryTable(topics, []int{3, 1}, []float64{1, 0.25}, 4, 2)

	for _, want := range []string{"apple, pear", "&lt;elm&gt;", "3 (75.00%)", "25.00%", "Top 2 words", `class="nthrow"`} {
		if !strings.Contains(out, want) {
			t.Errorf("table lacks %q", want)
		}
	}
	if strings.Contains(out, "plum") {
		t.Error("only the top 2 words belong in the table")
	}
}
