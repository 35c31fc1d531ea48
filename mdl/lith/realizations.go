// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lith

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Realizations holds Monte-Carlo samples of a lithology
type Realizations struct {
	Name string    // name of lithology
	Std  float64   // scale factor of standard deviations
	Var  float64   // variation fraction
	Seed []float64 // seed vector
	Vp   []float64 // P-wave velocity
	Vs   []float64 // S-wave velocity
	Rho  []float64 // density
	AI   []float64 // acoustic impedance
	SI   []float64 // shear impedance
	VpVs []float64 // Vp/Vs ratio
	LR   []float64 // λρ = AI² - 2 SI²
	MR   []float64 // μρ = SI²
}

// Stats holds summary statistics of a sample
type Stats struct {
	Mean, Std, Min, Max float64
}

// Summary maps keys of realizations to statistics
type Summary map[string]Stats

// Keys returns the sorted keys
func (o Summary) Keys() (keys []string) {
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

// N returns the number of realizations
func (o Realizations) N() int { return len(o.Seed) }

// Get returns the samples corresponding to key; nil if key is unknown
//  keys: "seed", "vp", "vs", "rho", "ai", "si", "vpvs", "lr", "mr"
func (o Realizations) Get(key string) []float64 {
	switch key {
	case "seed":
		return o.Seed
	case "vp":
		return o.Vp
	case "vs":
		return o.Vs
	case "rho":
		return o.Rho
	case "ai":
		return o.AI
	case "si":
		return o.SI
	case "vpvs":
		return o.VpVs
	case "lr":
		return o.LR
	case "mr":
		return o.MR
	}
	return nil
}

// Summary computes the statistics of all properties
func (o Realizations) Summary() (s Summary) {
	s = make(Summary)
	if o.N() == 0 {
		return
	}
	for _, key := range []string{"vp", "vs", "rho", "ai", "si", "vpvs", "lr", "mr"} {
		x := o.Get(key)
		mean, std := stat.MeanStdDev(x, nil)
		s[key] = Stats{Mean: mean, Std: std, Min: floats.Min(x), Max: floats.Max(x)}
	}
	return
}

// derive computes the impedances and Lamé products from the samples
func (o *Realizations) derive() {
	n := len(o.Vp)
	o.AI = make([]float64, n)
	o.SI = make([]float64, n)
	o.VpVs = make([]float64, n)
	o.LR = make([]float64, n)
	o.MR = make([]float64, n)
	for i := 0; i < n; i++ {
		o.AI[i] = o.Vp[i] * o.Rho[i]
		o.SI[i] = o.Vs[i] * o.Rho[i]
		o.VpVs[i] = o.Vp[i] / o.Vs[i]
		o.MR[i] = o.SI[i] * o.SI[i]
		o.LR[i] = o.AI[i]*o.AI[i] - 2.0*o.MR[i]
	}
}
