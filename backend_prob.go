// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import "github.com/atgjack/prob"

// probBackend implements Backend on github.com/atgjack/prob's Normal
// distribution.
type probBackend struct {
	dist prob.Normal
}

// ProbBackend returns a Backend implemented on github.com/atgjack/prob.
// It is a second third-party alternative to InternalBackend, offered for
// the same reason GonumBackend is: callers standardizing on one
// statistics library elsewhere in their stack.
func ProbBackend() Backend {
	return probBackend{dist: prob.Normal{Mu: 0, Sigma: 1}}
}

func (b probBackend) CDF(x float64) float64    { return b.dist.Cdf(x) }
func (b probBackend) PDF(x float64) float64    { return b.dist.Pdf(x) }
func (b probBackend) InvCDF(p float64) float64 { return b.dist.Quantile(p) }
