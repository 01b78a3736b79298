// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package graph

import (
	"fmt"
	"math"

	"github.com/corwinmath/trueskill/internal/gaussian"
)

// Kind tags which of the five closed factor kinds a Factor is. A finite,
// tagged-variant set instead of a class hierarchy: each kind is updated by
// its own Push method on Graph, not by virtual calls, and there is no sixth
// kind to add.
type Kind int

const (
	Prior Kind = iota
	Likelihood
	WeightedSum
	TruncateGreater
	TruncateEqual
)

// VWFunc computes the V and W truncation corrections for a truncation
// factor's cavity, expressed as t = cavity mean / cavity sigma and
// eps = draw margin / cavity sigma. It returns an error when the backend's
// precision has collapsed rather than a NaN/Inf result.
type VWFunc func(t, eps float64) (v, w float64, err error)

// Factor is a tagged variant over the five factor kinds the TrueSkill
// rating graph uses. Only the fields relevant to Kind are populated; which
// fields those are is documented per kind below.
type Factor struct {
	Kind Kind

	// Prior: single Var, fixed Value (the player's rating, tau-inflated).
	Var   int
	Value gaussian.Gaussian

	// Likelihood: Parent = skill, Child = performance, noise Variance = beta^2.
	Parent, Child int
	Variance      float64

	// WeightedSum: Sum = coeff . Terms. Used for both team performance
	// (Terms = a team's performance variables, Coeffs = partial-play
	// weights) and team difference (Terms = two adjacent team-performance
	// variables, Coeffs = [+1, -1]).
	Sum    int
	Terms  []int
	Coeffs []float64

	// TruncateGreater / TruncateEqual: single Var (a team-difference
	// variable), draw margin Epsilon, and the V/W function pair for the
	// outcome ("greater" uses win truncation, "equal" uses draw truncation).
	Epsilon float64
	VW      VWFunc
}

// NewPrior builds a Prior factor asserting value on var.
func NewPrior(v int, value gaussian.Gaussian) Factor {
	return Factor{Kind: Prior, Var: v, Value: value}
}

// NewLikelihood builds a Likelihood factor enforcing child = parent + N(0, variance).
func NewLikelihood(parent, child int, variance float64) Factor {
	return Factor{Kind: Likelihood, Parent: parent, Child: child, Variance: variance}
}

// NewWeightedSum builds a WeightedSum factor enforcing sum = sum_i coeffs[i]*terms[i].
func NewWeightedSum(sum int, terms []int, coeffs []float64) Factor {
	return Factor{Kind: WeightedSum, Sum: sum, Terms: terms, Coeffs: coeffs}
}

// NewTruncateGreater builds a TruncateGreater factor on var with the given
// draw margin and V/W function pair (win truncation).
func NewTruncateGreater(v int, epsilon float64, vw VWFunc) Factor {
	return Factor{Kind: TruncateGreater, Var: v, Epsilon: epsilon, VW: vw}
}

// NewTruncateEqual builds a TruncateEqual factor on var with the given
// draw margin and V/W function pair (draw truncation).
func NewTruncateEqual(v int, epsilon float64, vw VWFunc) Factor {
	return Factor{Kind: TruncateEqual, Var: v, Epsilon: epsilon, VW: vw}
}

// PushPrior sends the prior's value to its variable. Idempotent: calling it
// again re-asserts the same value.
func (g *Graph) PushPrior(factorIndex int) (float64, error) {
	f := &g.Factors[factorIndex]
	return g.sendValue(f.Var, factorIndex, f.Value), nil
}

// PushLikelihoodDown sends a message from the likelihood factor's parent to
// its child (skill -> performance).
func (g *Graph) PushLikelihoodDown(factorIndex int) (float64, error) {
	f := &g.Factors[factorIndex]
	cavity := g.cavity(f.Parent, factorIndex)
	pi := 1 / f.Variance
	a := pi / (pi + cavity.Pi)
	msg := gaussian.Gaussian{Pi: a * cavity.Pi, Tau: a * cavity.Tau}
	return g.sendMessage(f.Child, factorIndex, msg), nil
}

// PushLikelihoodUp sends a message from the likelihood factor's child back
// to its parent (performance -> skill).
func (g *Graph) PushLikelihoodUp(factorIndex int) (float64, error) {
	f := &g.Factors[factorIndex]
	cavity := g.cavity(f.Child, factorIndex)
	a := 1 / (1 + f.Variance*cavity.Pi)
	msg := gaussian.Gaussian{Pi: a * cavity.Pi, Tau: a * cavity.Tau}
	return g.sendMessage(f.Parent, factorIndex, msg), nil
}

// weightedSumUpdate is the shared linear-Gaussian closed form behind both
// directions of a WeightedSum factor: target's new message has
// pi = 1/sum(coeff_i^2/cavity_i.pi), tau = pi*sum(coeff_i*cavity_i.mu),
// computed over the (vals, coeffs) pairs supplied by the caller. A
// zero coefficient contributes nothing and is skipped outright, which is
// what makes a zero partial-play weight leave the corresponding player
// uninvolved in the sum instead of dividing by a zero cavity precision.
func (g *Graph) weightedSumUpdate(factorIndex, target int, vals []int, coeffs []float64) (float64, error) {
	piInv := 0.0
	mu := 0.0
	for i, vi := range vals {
		c := coeffs[i]
		if c == 0 {
			continue
		}
		cav := g.cavity(vi, factorIndex)
		mu += c * cav.Mu()
		if math.IsInf(piInv, 1) {
			continue
		}
		if cav.Pi == 0 {
			piInv = math.Inf(1)
			continue
		}
		piInv += c * c / cav.Pi
	}
	var pi float64
	if !math.IsInf(piInv, 1) && piInv != 0 {
		pi = 1 / piInv
	}
	tau := pi * mu
	return g.sendMessage(target, factorIndex, gaussian.Gaussian{Pi: pi, Tau: tau}), nil
}

// PushSumDown sends the weighted-sum message to the Sum variable from all
// of its Terms.
func (g *Graph) PushSumDown(factorIndex int) (float64, error) {
	f := &g.Factors[factorIndex]
	return g.weightedSumUpdate(factorIndex, f.Sum, f.Terms, f.Coeffs)
}

// PushSumUp sends the weighted-sum message to Terms[termIndex], inverting
// the linear relation using the Sum variable and the other terms. If
// Terms[termIndex]'s own coefficient is zero the relation cannot be
// inverted for it (it does not appear in the equation) and the push is
// skipped: the term is left exactly as the rest of the graph set it, which
// is what a zero-weight ("did not play") participant requires.
func (g *Graph) PushSumUp(factorIndex, termIndex int) (float64, error) {
	f := &g.Factors[factorIndex]
	coeff := f.Coeffs[termIndex]
	if coeff == 0 {
		return 0, nil
	}
	vals := make([]int, len(f.Terms))
	copy(vals, f.Terms)
	vals[termIndex] = f.Sum
	coeffs := make([]float64, len(f.Coeffs))
	for x, c := range f.Coeffs {
		if x == termIndex {
			coeffs[x] = 1 / coeff
		} else {
			coeffs[x] = -c / coeff
		}
	}
	return g.weightedSumUpdate(factorIndex, f.Terms[termIndex], vals, coeffs)
}

// PushTruncateUp applies the outcome factor's truncated-Gaussian
// moment-matching update to Var and sends the resulting value.
func (g *Graph) PushTruncateUp(factorIndex int) (float64, error) {
	f := &g.Factors[factorIndex]
	cavity := g.cavity(f.Var, factorIndex)
	if cavity.Pi <= 0 {
		return 0, fmt.Errorf("trueskill/graph: truncation factor %d has a non-positive cavity precision", factorIndex)
	}
	sqrtPi := math.Sqrt(cavity.Pi)
	t := cavity.Tau / sqrtPi
	eps := f.Epsilon * sqrtPi
	v, w, err := f.VW(t, eps)
	if err != nil {
		return 0, err
	}
	denom := 1 - w
	if denom <= 0 {
		return 0, fmt.Errorf("trueskill/graph: truncation factor %d moment match collapsed (1-W=%g)", factorIndex, denom)
	}
	newPi := cavity.Pi / denom
	newTau := (cavity.Tau + sqrtPi*v) / denom
	return g.sendValue(f.Var, factorIndex, gaussian.Gaussian{Pi: newPi, Tau: newTau}), nil
}
