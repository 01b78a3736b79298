// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corwinmath/trueskill/internal/gaussian"
)

func TestPriorSetsMarginal(t *testing.T) {
	g := New()
	v := g.AddVariable()
	value := gaussian.FromMeanVar(25, 8.333)
	f := g.AddFactor(NewPrior(v, value))

	_, err := g.PushPrior(f)
	require.NoError(t, err)
	assert.InDelta(t, value.Pi, g.Variables[v].Marginal.Pi, 1e-12)
	assert.InDelta(t, value.Tau, g.Variables[v].Marginal.Tau, 1e-12)
}

func TestLikelihoodDownKeepsMeanAndWidensVariance(t *testing.T) {
	g := New()
	skill := g.AddVariable()
	perf := g.AddVariable()
	priorValue := gaussian.FromMeanVar(25, 8.333)
	priorFactor := g.AddFactor(NewPrior(skill, priorValue))
	likelihood := g.AddFactor(NewLikelihood(skill, perf, 4.166*4.166))

	_, err := g.PushPrior(priorFactor)
	require.NoError(t, err)
	_, err = g.PushLikelihoodDown(likelihood)
	require.NoError(t, err)

	assert.InDelta(t, priorValue.Mu(), g.Variables[perf].Marginal.Mu(), 1e-9)
	assert.Greater(t, g.Variables[perf].Marginal.Variance(), priorValue.Variance())
}

func TestWeightedSumZeroCoefficientLeavesTermUntouched(t *testing.T) {
	g := New()
	a := g.AddVariable()
	b := g.AddVariable()
	sum := g.AddVariable()

	priorA := gaussian.FromMeanVar(30, 5)
	priorB := gaussian.FromMeanVar(20, 5)
	_, _ = g.PushPrior(g.AddFactor(NewPrior(a, priorA)))
	_, _ = g.PushPrior(g.AddFactor(NewPrior(b, priorB)))

	f := g.AddFactor(NewWeightedSum(sum, []int{a, b}, []float64{1, 0}))
	_, err := g.PushSumDown(f)
	require.NoError(t, err)
	assert.InDelta(t, 30, g.Variables[sum].Marginal.Mu(), 1e-9)

	// Pushing "up" into the zero-weight term must be a no-op: b's marginal
	// is unchanged from its prior.
	_, err = g.PushSumUp(f, 1)
	require.NoError(t, err)
	assert.InDelta(t, priorB.Pi, g.Variables[b].Marginal.Pi, 1e-12)
	assert.InDelta(t, priorB.Tau, g.Variables[b].Marginal.Tau, 1e-12)
}

func TestWeightedSumInvertsForNonzeroTerm(t *testing.T) {
	g := New()
	a := g.AddVariable()
	b := g.AddVariable()
	sum := g.AddVariable()
	f := g.AddFactor(NewWeightedSum(sum, []int{a, b}, []float64{1, -1}))

	_, _ = g.PushPrior(g.AddFactor(NewPrior(a, gaussian.FromMeanVar(30, 5))))
	_, _ = g.PushPrior(g.AddFactor(NewPrior(b, gaussian.FromMeanVar(20, 5))))
	_, err := g.PushSumDown(f)
	require.NoError(t, err)

	// Assert a tighter belief onto sum and push back up to a.
	_, err = g.sendValueForTest(sum, f, gaussian.FromMeanVar(10, 1))
	require.NoError(t, err)
	_, err = g.PushSumUp(f, 0)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(g.Variables[a].Marginal.Mu()))
}

func TestTruncateGreaterNarrowsVariance(t *testing.T) {
	g := New()
	d := g.AddVariable()
	_, _ = g.PushPrior(g.AddFactor(NewPrior(d, gaussian.FromMeanVar(0, 10))))

	vw := func(t, eps float64) (float64, float64, error) {
		x := t - eps
		cdf := 0.5 * math.Erfc(-x/math.Sqrt2)
		pdf := math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
		v := pdf / cdf
		return v, v * (v + x), nil
	}
	f := g.AddFactor(NewTruncateGreater(d, 0, vw))
	before := g.Variables[d].Marginal.Variance()
	_, err := g.PushTruncateUp(f)
	require.NoError(t, err)
	assert.Less(t, g.Variables[d].Marginal.Variance(), before)
}

func TestTruncatePropagatesPrecisionError(t *testing.T) {
	g := New()
	d := g.AddVariable()
	_, _ = g.PushPrior(g.AddFactor(NewPrior(d, gaussian.FromMeanVar(-100, 1))))

	vw := func(t, eps float64) (float64, float64, error) {
		return 0, 0, errCollapsed
	}
	f := g.AddFactor(NewTruncateGreater(d, 0, vw))
	_, err := g.PushTruncateUp(f)
	require.Error(t, err)
}

var errCollapsed = errTest("collapsed")

type errTest string

func (e errTest) Error() string { return string(e) }

// sendValueForTest exposes sendValue to the test file without widening the
// package's public API: tests live in the same package, so this is just a
// readable alias at the call site above.
func (g *Graph) sendValueForTest(target, factorIndex int, value gaussian.Gaussian) (float64, error) {
	return g.sendValue(target, factorIndex, value), nil
}
