// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lith

// default Monte-Carlo settings of the examples
const (
	ExampleNsim = 200 // number of realizations
	ExampleVar  = 0.4 // variation fraction
	ExampleStd  = 1.5 // scale factor of standard deviations
)

// Pair holds the top and bottom lithologies of an interface
type Pair struct {
	Top, Bot *Lithology
	Colour   string
}

// Examples returns a new table of lithologies from well logs (velocities in m/s; density in g/cc)
func Examples() []*Lithology {
	return []*Lithology{
		New("88Shale", "purple", 3418.495962, 1752.987063, 2.511256121, 135.4004251, 87.36126824, 0.02921484),
		New("86Shale", "purple", 3136.638766, 1551.366701, 2.451602365, 136.9440216, 69.52937955, 0.051839809),
		New("FlaxSand", "orange", 3663.504934, 2034.815946, 2.350170833, 660.7719596, 237.4747584, 0.11979099),
		New("WarC_NorPor_Brine", "darkblue", 3792.742707, 2232.982847, 2.321682669, 121.1846522, 114.0411247, 0.01972362),
		New("WarC_NorPor_Gas", "darkred", 3660.358995, 2300.630797, 2.186832257, 135.8816038, 116.0905371, 0.024889946),
		New("WarC_LowPor_Brine", "blue", 3705.559909, 2069.811364, 2.373842343, 329.6156111, 242.0803495, 0.076480652),
		New("WarC_LowPor_Gas", "red", 3634.742642, 2106.368042, 2.300648574, 329.023622, 268.5826829, 0.131645288),
		New("Coal", "green", 2961.5, 1563.465, 2.045182162, 212.9567022, 117.2511315, 0.082144079),
	}
}

// ExampleInterfaces returns the 88Shale overburden on each of the reservoir lithologies
func ExampleInterfaces() (pairs []Pair) {
	l := Examples()
	top := l[0]
	for _, bot := range []*Lithology{l[0], l[3], l[4], l[5], l[6], l[7]} {
		pairs = append(pairs, Pair{Top: top, Bot: bot, Colour: bot.Colour})
	}
	return
}

// Find returns the lithology named name or nil
func Find(liths []*Lithology, name string) *Lithology {
	for _, l := range liths {
		if l.Name == name {
			return l
		}
	}
	return nil
}
