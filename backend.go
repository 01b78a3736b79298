// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import "math"

// Backend provides the standard normal distribution's CDF, PDF, and
// quantile function (inverse CDF). The core algorithm depends on nothing
// about a Backend beyond these three functions being correct at whatever
// precision the backend offers.
type Backend interface {
	// CDF returns Phi(x), the standard normal cumulative distribution.
	CDF(x float64) float64
	// PDF returns phi(x), the standard normal density.
	PDF(x float64) float64
	// InvCDF returns Phi^-1(p), the standard normal quantile function.
	// p must be in (0, 1).
	InvCDF(p float64) float64
}

// internalBackend implements Backend with the Go standard library's
// math.Erfc/math.Erfinv. It needs no third-party dependency and is the
// default backend for a new Environment.
type internalBackend struct{}

// InternalBackend is the built-in Backend, implemented on top of
// math.Erfc/math.Erfinv. It requires no external dependency and is used
// when an Environment is constructed without an explicit backend.
func InternalBackend() Backend { return internalBackend{} }

func (internalBackend) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

func (internalBackend) PDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

func (internalBackend) InvCDF(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
