// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/trhallam/rockavo/fdi"
	"github.com/trhallam/rockavo/mdl/avo"
	"github.com/trhallam/rockavo/refl"
	"github.com/wcharczuk/go-chart/v2"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Label   string    // legend label
	X       []float64 // x-values
	Y       []float64 // y-values
	Colour  string    // colour tag
	Scatter bool      // draw dots instead of lines
}

// Figure stores all data for one chart
type Figure struct {
	Title  string       // title of chart
	Xlbl   string       // x-axis label
	Ylbl   string       // y-axis label
	Width  int          // width in pixels; 0 means 800
	Height int          // height in pixels; 0 means 600
	Data   []*PltEntity // data and styles to be plotted
}

// NewFigure returns a new empty figure
func NewFigure(title, xlbl, ylbl string) *Figure {
	return &Figure{Title: title, Xlbl: xlbl, Ylbl: ylbl}
}

// Plot adds a series. Points with NaN coordinates are skipped
func (o *Figure) Plot(x, y []float64, label, colour string, scatter bool) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	e := &PltEntity{Label: label, Colour: colour, Scatter: scatter}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		e.X = append(e.X, x[i])
		e.Y = append(e.Y, y[i])
	}
	o.Data = append(o.Data, e)
}

// Chart returns the chart of this figure
func (o Figure) Chart() chart.Chart {
	w, h := o.Width, o.Height
	if w < 1 {
		w = 800
	}
	if h < 1 {
		h = 600
	}
	var series []chart.Series
	for _, e := range o.Data {
		if len(e.X) == 0 {
			continue
		}
		c := GetColour(e.Colour)
		sty := chart.Style{StrokeColor: c, StrokeWidth: 2}
		if e.Scatter {
			sty = chart.Style{StrokeWidth: chart.Disabled, DotColor: c, DotWidth: 2}
		}
		series = append(series, chart.ContinuousSeries{Name: e.Label, XValues: e.X, YValues: e.Y, Style: sty})
	}
	graph := chart.Chart{
		Title:  o.Title,
		Width:  w,
		Height: h,
		XAxis:  chart.XAxis{Name: o.Xlbl},
		YAxis:  chart.YAxis{Name: o.Ylbl},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// Draw saves the figure as a PNG file
//  dirout -- directory to save figure; created if needed
//  fname  -- file name; e.g. sweep.png
func (o Figure) Draw(dirout, fname string) (err error) {
	if len(o.Data) == 0 {
		return chk.Err("figure %q has no data", o.Title)
	}
	graph := o.Chart()
	var buf bytes.Buffer
	err = graph.Render(chart.PNG, &buf)
	if err != nil {
		return chk.Err("cannot render figure %q: %v", o.Title, err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	return os.WriteFile(filepath.Join(dirout, fname), buf.Bytes(), 0644)
}

// SweepFigure plots the Zoeppritz solutions and the approximations versus angle
func SweepFigure(s *refl.Sweep) *Figure {
	o := NewFigure("Rp versus angle", GetLabel(refl.KeyAng, "deg"), GetLabel(refl.KeyZoepRp, ""))
	for _, key := range []string{refl.KeyZoepRp, refl.KeyZoepFullR, refl.KeyBortfeld, refl.KeyArAvseth, refl.KeyArAr, refl.KeyShuey} {
		o.Plot(s.Ang, s.Column(key), key, sweepColours[key], false)
	}
	return o
}

// CrossSectionsFigures plots the image at constant saturation (versus pressure) and at
// constant pressure (versus saturation)
func CrossSectionsFigures(g *fdi.Grid) (csat, cpres *Figure) {
	ylbl := GetLabel("dimp", "%")
	if g.Absolute {
		ylbl = GetLabel("imp", "")
	}
	csat = NewFigure("constant saturation", GetLabel("pres", "MPa"), ylbl)
	csat.Plot(g.Pres, g.DImpCSat, "sw", "blue", false)
	cpres = NewFigure("constant pressure", GetLabel("sw", ""), ylbl)
	cpres.Plot(g.Sw, g.DImpCPres, "pres", "red", false)
	return
}

// InterfacesFigure plots the intercept A versus the gradient B of all realisations
func InterfacesFigure(intfs ...*avo.Interface) *Figure {
	o := NewFigure("intercept versus gradient", "B", "A")
	for _, intf := range intfs {
		o.Plot(intf.Column(avo.B), intf.Column(avo.A), intf.Name, intf.Colour, true)
	}
	return o
}
