// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import "math"

// minTruncationDenominator is the floor below which a V/W truncation
// correction's denominator is treated as numerically collapsed rather than
// trusted to produce a finite ratio. Below it, dividing would quietly turn
// a precision problem into a wrong-but-finite posterior, or into NaN/Inf;
// neither is acceptable, so the failure is surfaced as an error instead.
const minTruncationDenominator = 1e-10

// winTruncation computes V_w(t,eps) and W_w(t,eps), the truncated-Gaussian
// moment-matching corrections used when the outcome factor asserts
// "team difference > eps" (one team won).
func winTruncation(t, eps float64, b Backend) (v, w float64, err error) {
	x := t - eps
	denom := b.CDF(x)
	if denom < minTruncationDenominator {
		return 0, 0, precisionErrorf("win truncation denominator collapsed at t=%g, eps=%g (Phi=%g)", t, eps, denom)
	}
	v = b.PDF(x) / denom
	w = v * (v + x)
	return v, w, nil
}

// drawTruncation computes V_d(t,eps) and W_d(t,eps), the truncated-Gaussian
// moment-matching corrections used when the outcome factor asserts
// "team difference within +/-eps" (a draw).
func drawTruncation(t, eps float64, b Backend) (v, w float64, err error) {
	a := eps - t
	c := -eps - t
	denom := b.CDF(a) - b.CDF(c)
	if denom < minTruncationDenominator {
		return 0, 0, precisionErrorf("draw truncation denominator collapsed at t=%g, eps=%g (denom=%g)", t, eps, denom)
	}
	pdfA, pdfC := b.PDF(a), b.PDF(c)
	v = (pdfC - pdfA) / denom
	w = v*v + (a*pdfA-c*pdfC)/denom
	return v, w, nil
}

// drawMargin computes the draw margin eps from a draw probability, the
// performance noise stddev beta, and the total number of participants n:
//
//	eps = Phi^-1((p+1)/2) * sqrt(n) * beta
func drawMargin(p, beta float64, n int, b Backend) float64 {
	return b.InvCDF((p+1)/2) * math.Sqrt(float64(n)) * beta
}

// drawProbabilityFor is the inverse of drawMargin: it recovers the draw
// probability implied by a given margin, beta, and participant count. Not
// required by the rating/quality operations themselves, but useful to
// round-trip a margin back to a probability, and the factor graph's own
// margin computation already needs both directions' building blocks.
func drawProbabilityFor(eps, beta float64, n int, b Backend) float64 {
	return 2*b.CDF(eps/(math.Sqrt(float64(n))*beta)) - 1
}
