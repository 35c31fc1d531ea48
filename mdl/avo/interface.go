// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avo

import (
	"math/rand/v2"

	"github.com/cpmech/gosl/chk"
	"github.com/trhallam/rockavo/mdl/lith"
)

// Interface holds a Monte-Carlo AVO model of one lithology on top of another
type Interface struct {
	Name   string             // "top on bottom"
	Colour string             // colour tag used by charts
	VpVs   float64            // background Vp/Vs of the Fatti terms
	Top    *lith.Realizations // realizations of the top lithology
	Bot    *lith.Realizations // realizations of the bottom lithology
	Table  Table              // AVO terms; one row per realization
}

// NewInterface realizes both lithologies independently and computes the AVO terms
func NewInterface(top, bot *lith.Lithology, n int, std, vari, vpvs float64, colour string, src rand.Source) (o *Interface, err error) {
	if top == nil || bot == nil {
		return nil, chk.Err("avo: top and bottom lithologies are required")
	}
	o = &Interface{Name: top.Name + " on " + bot.Name, Colour: colour, VpVs: vpvs}
	o.Top, err = top.Realize(n, std, vari, src)
	if err != nil {
		return
	}
	o.Bot, err = bot.Realize(n, std, vari, src)
	if err != nil {
		return
	}
	o.Table, err = Calc(o.Top.Vp, o.Bot.Vp, o.Top.Vs, o.Bot.Vs, o.Top.Rho, o.Bot.Rho, vpvs)
	return
}

// N returns the number of realizations
func (o Interface) N() int { return len(o.Table) }

// Rp returns the Fatti P-wave reflectivity of realization i (equal to the intercept)
func (o Interface) Rp(i int) float64 { return o.Table[i][A] }

// Rs returns the Fatti S-wave reflectivity of realization i
func (o Interface) Rs(i int) float64 { return o.Table[i][Rs] }

// Column returns a copy of column j of all realizations
func (o Interface) Column(j int) []float64 { return o.Table.Col(j) }
