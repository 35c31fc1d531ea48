// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refl

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Model defines the interface for P-wave reflectivity models
type Model interface {
	Name() string                                      // returns the name of this model
	Rpp(thetai float64, m1, m2 Medium) (float64, error) // computes the P-P reflectivity; thetai in radians
}

// New returns new reflectivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'refl' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{
	"zoeppritz":       func() Model { return new(Full) },
	"zoeppritz-pdown": func() Model { return new(Pdown) },
	"bortfeld":        func() Model { return new(BortfeldModel) },
	"ar-avseth":       func() Model { return &AkiRichardsModel{Method: Avseth} },
	"ar":              func() Model { return &AkiRichardsModel{Method: AR} },
	"shuey":           func() Model { return new(ShueyModel) },
}

// Full implements the full Zoeppritz solution
type Full struct{}

// Pdown implements the Zoeppritz solution for a down-going P-wave
type Pdown struct{}

// BortfeldModel implements the Bortfeld approximation
type BortfeldModel struct{}

// AkiRichardsModel implements the Aki-Richards approximation
type AkiRichardsModel struct {
	Method ArMethod
}

// ShueyModel implements the two-term Shuey approximation
type ShueyModel struct{}

func (o Full) Name() string { return "zoeppritz" }
func (o Pdown) Name() string { return "zoeppritz-pdown" }
func (o BortfeldModel) Name() string { return "bortfeld" }
func (o ShueyModel) Name() string { return "shuey" }
func (o AkiRichardsModel) Name() string {
	if o.Method == Avseth {
		return "ar-avseth"
	}
	return "ar"
}

func (o Full) Rpp(thetai float64, m1, m2 Medium) (float64, error) {
	res, err := ZoeppritzFull(thetai, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho)
	return res[0], err
}

func (o Pdown) Rpp(thetai float64, m1, m2 Medium) (float64, error) {
	return ZoeppritzPdown(thetai, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho)[0], nil
}

func (o BortfeldModel) Rpp(thetai float64, m1, m2 Medium) (float64, error) {
	return Bortfeld(thetai, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho), nil
}

func (o AkiRichardsModel) Rpp(thetai float64, m1, m2 Medium) (float64, error) {
	return AkiRichards(thetai, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho, o.Method), nil
}

func (o ShueyModel) Rpp(thetai float64, m1, m2 Medium) (float64, error) {
	return Shuey(thetai, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho, RTheta)[0], nil
}
