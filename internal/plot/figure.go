//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package plot

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/e-gun/topicmodels/internal/mm"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/google/uuid"
	"html/template"
	"io"
	"math"
	"regexp"
	"strings"
)

var (
	Msg = mm.NewMessageMakerWithDefaults()
)

var (
	ErrNoPanels   = errors.New("nothing to plot")
	ErrMisaligned = errors.New("labels and values differ in length")
)

//
// FIGURES
//

// Charter - anything the page can hold; *charts.Bar, *charts.WordCloud and *charts.Scatter all qualify
type Charter interface {
	components.Charter
}

// FigureOpts - zero values mean "work it out"
type FigureOpts struct {
	Columns    int
	Background string
}

// Figure - one page holding a grid of panels under a single title; owned by the caller
type Figure struct {
	Title      string
	Columns    int
	Background string
	page       *components.Page
	panels     []Charter
}

// NewFigure - a grid sized for the expected number of panels
func NewFigure(title string, panels int, fo FigureOpts) *Figure {
	_, cols := GridFor(panels)
	if fo.Columns > 0 {
		cols = fo.Columns
	}
	p := components.NewPage()
	p.PageTitle = title
	return &Figure{
		Title:      title,
		Columns:    cols,
		Background: fo.Background,
		page:       p,
	}
}

func (f *Figure) AddPanel(c Charter) {
	f.panels = append(f.panels, c)
}

func (f *Figure) Panels() int { return len(f.panels) }

// Render - write the html+js for the whole figure
func (f *Figure) Render(w io.Writer) error {
	if len(f.panels) == 0 {
		return ErrNoPanels
	}

	cols := f.Columns
	if cols < 1 {
		_, cols = GridFor(len(f.panels))
	}

	// [a] add assets to the page
	f.page.Charts = nil
	for _, c := range f.panels {
		c.Validate()
		assets := c.GetAssets()
		for _, v := range assets.JSAssets.Values {
			f.page.JSAssets.Add(v)
		}
		for _, v := range assets.CSSAssets.Values {
			f.page.CSSAssets.Add(v)
		}
		f.page.Charts = append(f.page.Charts, c)
	}

	// [b] render by hand so that the page gets a suptitle and a grid
	fp := &figurepage{
		Page:       f.page,
		Suptitle:   f.Title,
		Columns:    cols,
		Background: f.Background,
	}
	f.page.Renderer = NewCustomPageRender(fp, f.page.Validate)
	return f.page.Render(w)
}

// GridFor - cols = ceil(sqrt(n)); rows = ceil(n/cols)
func GridFor(n int) (int, int) {
	if n < 1 {
		return 0, 0
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	return rows, cols
}

// chartid - echarts ids end up inside js variable names: no dashes
func chartid() string {
	return "tpm" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

type figurepage struct {
	*components.Page
	Suptitle   string
	Columns    int
	Background string
}

//
// OVERRIDE GO-ECHARTS [original code at https://github.com/go-echarts/go-echarts]
//

// ModRenderer etc modified from https://github.com/go-echarts/go-echarts/render/engine.go
type ModRenderer interface {
	Render(w io.Writer) error
}

type CustomPageRender struct {
	c      interface{}
	before []func()
}

// NewCustomPageRender returns a render implementation for Page.
func NewCustomPageRender(c interface{}, before ...func()) ModRenderer {
	return &CustomPageRender{c: c, before: before}
}

// Render renders the page into the given io.Writer.
func (r *CustomPageRender) Render(w io.Writer) error {
	const (
		TEMPLNAME = "figure"
		PATTERN   = `(__f__")|("__f__)|(__f__)`
	)

	for _, fn := range r.before {
		fn()
	}

	contents := []string{CustomHeaderTpl, CustomBaseTpl, CustomFigureTpl}
	tpl := ModMustTemplate(TEMPLNAME, contents)

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, TEMPLNAME, r.c); err != nil {
		return fmt.Errorf("rendering the figure: %w", err)
	}

	pat := regexp.MustCompile(PATTERN)
	content := pat.ReplaceAll(buf.Bytes(), []byte(""))

	_, err := w.Write(content)
	return err
}

// ModMustTemplate creates a new template with the given name and parsed contents.
func ModMustTemplate(name string, contents []string) *template.Template {
	const (
		JSNAME = "safeJS"
	)

	tpl := template.Must(template.New(name).Parse(contents[0])).Funcs(template.FuncMap{
		JSNAME: func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	})

	for _, cont := range contents[1:] {
		tpl = template.Must(tpl.Parse(cont))
	}
	return tpl
}

// CustomHeaderTpl etc. adapted from https://github.com/go-echarts/go-echarts/templates/
var CustomHeaderTpl = `
{{ define "header" }}
<head>
    <meta charset="utf-8">
    <title>{{ .PageTitle }}</title>
{{- range .JSAssets.Values }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CSSAssets.Values }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
    <style>
        .suptitle { text-align: center; font-family: sans-serif; }
        .grid { display: grid; justify-items: center; }
    </style>
</head>
{{ end }}
`

var CustomBaseTpl = `
{{- define "base" }}
<div class="item" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'), "{{ .Theme }}");
    let option_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | safeJS }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_{{ .ChartID | safeJS }});

    {{- range .JSFunctions.Fns }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var CustomFigureTpl = `
{{- define "figure" }}
<!DOCTYPE html>
<html>
{{- template "header" . }}
<body{{ if .Background }} style="background-color: {{ .Background }};"{{ end }}>
    <h1 class="suptitle">{{ .Suptitle }}</h1>
    <div class="grid" style="grid-template-columns: repeat({{ .Columns }}, auto);">
    {{- range .Charts }} {{ template "base" . }} {{- end }}
    </div>
</body>
</html>
{{ end }}
`
