// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import "gonum.org/v1/gonum/stat/distuv"

// gonumBackend implements Backend on gonum's distuv.Normal, which already
// exposes CDF, Prob (PDF), and Quantile for the standard normal.
type gonumBackend struct {
	dist distuv.Normal
}

// GonumBackend returns a Backend implemented on
// gonum.org/v1/gonum/stat/distuv. It is an alternative to InternalBackend
// for callers who already depend on gonum elsewhere and want one
// statistics implementation across their codebase.
func GonumBackend() Backend {
	return gonumBackend{dist: distuv.Normal{Mu: 0, Sigma: 1}}
}

func (b gonumBackend) CDF(x float64) float64    { return b.dist.CDF(x) }
func (b gonumBackend) PDF(x float64) float64    { return b.dist.Prob(x) }
func (b gonumBackend) InvCDF(p float64) float64 { return b.dist.Quantile(p) }
