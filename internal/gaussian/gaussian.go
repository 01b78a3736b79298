// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package gaussian implements the one-dimensional normal distribution in
// canonical (precision, precision-mean) parameters.
//
// This code names fields according to the factor-graph literature the
// TrueSkill algorithm is built on:
//   - Pi: the precision, 1/sigma^2.
//   - Tau: the precision-mean, mu/sigma^2.
//
// Canonical form turns the two message-passing operations the algorithm
// needs — combining two beliefs and removing one belief from another — into
// plain addition and subtraction, which is why the factor graph is built on
// it instead of on (mu, sigma).
package gaussian

import "math"

// Gaussian is N(mu, sigma^2) in canonical form. The zero value is the
// "uninformative" distribution (Pi=0, Tau=0): no belief at all.
type Gaussian struct {
	Pi  float64
	Tau float64
}

// FromMeanVar builds a Gaussian from a mean and a standard deviation (not a
// variance): Pi = 1/sigma^2. sigma must be greater than zero; callers that need an exact (zero-variance) belief
// should construct Pi/Tau directly instead.
func FromMeanVar(mu, sigma float64) Gaussian {
	if sigma <= 0 {
		panic("gaussian: sigma must be greater than 0")
	}
	pi := 1 / (sigma * sigma)
	return Gaussian{Pi: pi, Tau: pi * mu}
}

// Uninformative returns the Gaussian carrying no information (Pi=0, Tau=0).
// It is the identity element for Mul and the zero message on an edge that
// has not sent one yet.
func Uninformative() Gaussian {
	return Gaussian{}
}

// Mu is the mean. Its value is meaningless when Pi is zero; callers must not
// read it in that case.
func (g Gaussian) Mu() float64 {
	if g.Pi == 0 {
		return 0
	}
	return g.Tau / g.Pi
}

// Sigma is the standard deviation. Returns +Inf when Pi is zero.
func (g Gaussian) Sigma() float64 {
	if g.Pi == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(1 / g.Pi)
}

// Variance is sigma^2. Returns +Inf when Pi is zero.
func (g Gaussian) Variance() float64 {
	if g.Pi == 0 {
		return math.Inf(1)
	}
	return 1 / g.Pi
}

// Mul combines two beliefs about the same quantity (message multiplication).
func (g Gaussian) Mul(other Gaussian) Gaussian {
	return Gaussian{Pi: g.Pi + other.Pi, Tau: g.Tau + other.Tau}
}

// Div removes other's contribution from g (the EP cavity operation).
func (g Gaussian) Div(other Gaussian) Gaussian {
	return Gaussian{Pi: g.Pi - other.Pi, Tau: g.Tau - other.Tau}
}

// Delta is the convergence metric between two canonical-form Gaussians:
// max(|delta Pi|, |delta Tau|).
func Delta(a, b Gaussian) float64 {
	piDelta := math.Abs(a.Pi - b.Pi)
	tauDelta := math.Abs(a.Tau - b.Tau)
	if piDelta > tauDelta {
		return piDelta
	}
	return tauDelta
}
