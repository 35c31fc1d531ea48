// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/trhallam/rockavo/refl"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// colours maps the colour tags of lithologies to chart colours
var colours = map[string]drawing.Color{
	"purple":   {R: 128, G: 0, B: 128, A: 255},
	"orange":   {R: 255, G: 165, B: 0, A: 255},
	"darkblue": {R: 0, G: 0, B: 139, A: 255},
	"darkred":  {R: 139, G: 0, B: 0, A: 255},
	"blue":     {R: 0, G: 0, B: 255, A: 255},
	"red":      {R: 255, G: 0, B: 0, A: 255},
	"green":    {R: 0, G: 128, B: 0, A: 255},
	"black":    {R: 0, G: 0, B: 0, A: 255},
	"grey":     {R: 128, G: 128, B: 128, A: 255},
}

// sweepColours holds the colours of the sweep series
var sweepColours = map[string]string{
	refl.KeyZoepRp:    "black",
	refl.KeyZoepFullR: "grey",
	refl.KeyBortfeld:  "blue",
	refl.KeyArAvseth:  "green",
	refl.KeyArAr:      "orange",
	refl.KeyShuey:     "red",
}

// GetColour returns the chart colour of a colour tag; unknown tags give grey
//  Note: tags starting with '#' are parsed as hex codes
func GetColour(tag string) drawing.Color {
	if len(tag) > 0 && tag[0] == '#' {
		return drawing.ColorFromHex(tag[1:])
	}
	if c, ok := colours[tag]; ok {
		return c
	}
	return colours["grey"]
}

// GetLabel returns the axis label of key including its unit
func GetLabel(key, unit string) string {
	l := key
	switch key {
	case refl.KeyAng:
		l = "angle of incidence"
	case refl.KeyZoepRp, refl.KeyZoepFullR, refl.KeyBortfeld, refl.KeyArAvseth, refl.KeyArAr, refl.KeyShuey:
		l = "Rp"
	case "pres":
		l = "reservoir pressure"
	case "sw":
		l = "water saturation"
	case "dimp":
		l = "impedance change"
	case "imp":
		l = "acoustic impedance"
	}
	if unit != "" {
		l += " [" + unit + "]"
	}
	return l
}
