// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reports of rock models, reflectivity sweeps, 4D grids and
// Monte-Carlo AVO models as text tables, spreadsheets and PNG charts
package out

import (
	"bytes"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/trhallam/rockavo/fdi"
	"github.com/trhallam/rockavo/mdl/avo"
	"github.com/trhallam/rockavo/mdl/lith"
	"github.com/trhallam/rockavo/mdl/rock"
	"github.com/trhallam/rockavo/refl"
)

// RockRow holds one row of the rock table
type RockRow struct {
	Rock, Fluid       string
	Vp, Vs, Rho, Pimp float64
	Ksat, Kdry, Gdry  float64
}

// RockTable returns one row per rock
func RockTable(rocks ...*rock.Rock) (rows []RockRow) {
	for _, r := range rocks {
		rows = append(rows, RockRow{
			Rock: r.Frame.Name, Fluid: r.Fluid.Name,
			Vp: r.Vp, Vs: r.Vs, Rho: r.Rho, Pimp: r.Pimp,
			Ksat: r.Ksat, Kdry: r.Frame.Kdry, Gdry: r.Frame.Gdry,
		})
	}
	return
}

// RocksString returns a text table of rocks
func RocksString(rocks ...*rock.Rock) string {
	var b bytes.Buffer
	line := strings.Repeat("-", 96) + "\n"
	io.Ff(&b, "%s", line)
	io.Ff(&b, "%-12s%-12s%12s%12s%12s%12s%12s%12s\n", "rock", "fluid", "Vp", "Vs", "rho", "pimp", "Kdry", "Gdry")
	io.Ff(&b, "%s", line)
	for _, r := range RockTable(rocks...) {
		io.Ff(&b, "%-12s%-12s%12.5f%12.5f%12.5f%12.5f%12.5f%12.5f\n", r.Rock, r.Fluid, r.Vp, r.Vs, r.Rho, r.Pimp, r.Kdry, r.Gdry)
	}
	io.Ff(&b, "%s", line)
	return b.String()
}

// SweepString returns a text table of a reflectivity sweep
func SweepString(s *refl.Sweep) string {
	var b bytes.Buffer
	keys := refl.SweepKeys()
	line := strings.Repeat("-", 13*len(keys)) + "\n"
	io.Ff(&b, "%s", line)
	for _, key := range keys {
		io.Ff(&b, "%13s", key)
	}
	io.Ff(&b, "\n")
	io.Ff(&b, "%s", line)
	for i := range s.Ang {
		for _, key := range keys {
			io.Ff(&b, "%13.6f", s.Column(key)[i])
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "%s", line)
	return b.String()
}

// CrossSectionsString returns a text table of the cross sections of a 4D grid
func CrossSectionsString(g *fdi.Grid) string {
	var b bytes.Buffer
	label := "dImp(%)"
	if g.Absolute {
		label = "Imp"
	}
	line := strings.Repeat("-", 52) + "\n"
	io.Ff(&b, "constant pressure = %g MPa; constant saturation Sw = %g\n", g.Pres[g.IPres], g.Sw[g.ISat])
	io.Ff(&b, "%s", line)
	io.Ff(&b, "%13s%13s%13s%13s\n", "pres", label, "sw", label)
	io.Ff(&b, "%s", line)
	for k := 0; k < g.N; k++ {
		io.Ff(&b, "%13.4f%13.5f%13.4f%13.5f\n", g.Pres[k], g.DImpCSat[k], g.Sw[k], g.DImpCPres[k])
	}
	io.Ff(&b, "%s", line)
	return b.String()
}

// SummaryString returns a text table with the statistics of a realization
func SummaryString(r *lith.Realizations) string {
	var b bytes.Buffer
	s := r.Summary()
	line := strings.Repeat("-", 58) + "\n"
	io.Ff(&b, "%s: %d realizations (std=%g, var=%g)\n", r.Name, r.N(), r.Std, r.Var)
	io.Ff(&b, "%s", line)
	io.Ff(&b, "%-6s%13s%13s%13s%13s\n", "key", "mean", "std", "min", "max")
	io.Ff(&b, "%s", line)
	for _, key := range s.Keys() {
		v := s[key]
		io.Ff(&b, "%-6s%13.5g%13.5g%13.5g%13.5g\n", key, v.Mean, v.Std, v.Min, v.Max)
	}
	io.Ff(&b, "%s", line)
	return b.String()
}

// InterfacesString returns a text table with the mean AVO terms of interfaces
func InterfacesString(intfs ...*avo.Interface) string {
	var b bytes.Buffer
	line := strings.Repeat("-", 72) + "\n"
	io.Ff(&b, "%s", line)
	io.Ff(&b, "%-34s%13s%13s%12s\n", "interface", "A", "B", "Rs")
	io.Ff(&b, "%s", line)
	for _, o := range intfs {
		io.Ff(&b, "%-34s%13.5f%13.5f%12.5f\n", o.Name, mean(o.Column(avo.A)), mean(o.Column(avo.B)), mean(o.Column(avo.Rs)))
	}
	io.Ff(&b, "%s", line)
	return b.String()
}

// mean returns the mean of x
func mean(x []float64) (res float64) {
	if len(x) == 0 {
		return
	}
	for _, v := range x {
		res += v
	}
	return res / float64(len(x))
}
