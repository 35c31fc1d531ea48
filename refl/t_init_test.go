// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// half-spaces used in all tests
var (
	tθ                = 0.349066
	tvp1, tvs1, trho1 = 3000.0, 1800.0, 2.4
	tvp2, tvs2, trho2 = 3500.0, 2200.0, 2.55
	ttop              = Medium{tvp1, tvs1, trho1}
	tbot              = Medium{tvp2, tvs2, trho2}
)

// normal incidence reflectivities
var (
	tR0normal = 0.10722610722610722 // linearised
	tRnormal  = 1725.0 / 16125.0    // (I2-I1)/(I2+I1)
)
