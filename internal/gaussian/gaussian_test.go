// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gaussian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMeanVar(t *testing.T) {
	g := FromMeanVar(25, 25.0/3)
	assert.InDelta(t, 25, g.Mu(), 1e-9)
	assert.InDelta(t, 25.0/3, g.Sigma(), 1e-9)
}

func TestFromMeanVarPanicsOnNonPositiveSigma(t *testing.T) {
	assert.Panics(t, func() { FromMeanVar(0, 0) })
	assert.Panics(t, func() { FromMeanVar(0, -1) })
}

func TestUninformativeIsIdentityForMul(t *testing.T) {
	g := FromMeanVar(10, 2)
	require.Equal(t, g, g.Mul(Uninformative()))
}

func TestMulDivRoundTrip(t *testing.T) {
	a := FromMeanVar(25, 25.0/3)
	b := FromMeanVar(10, 5)
	got := a.Mul(b).Div(b)
	assert.InDelta(t, a.Pi, got.Pi, 1e-15)
	assert.InDelta(t, a.Tau, got.Tau, 1e-12)
}

func TestMulIsPrecisionWeightedCombination(t *testing.T) {
	a := Gaussian{Pi: 1, Tau: 1}
	b := Gaussian{Pi: 1, Tau: -1}
	m := a.Mul(b)
	assert.Equal(t, 2.0, m.Pi)
	assert.Equal(t, 0.0, m.Tau)
}

func TestSigmaAndVarianceOfUninformative(t *testing.T) {
	g := Uninformative()
	assert.True(t, math.IsInf(g.Sigma(), 1))
	assert.True(t, math.IsInf(g.Variance(), 1))
}

func TestDelta(t *testing.T) {
	a := Gaussian{Pi: 1, Tau: 2}
	b := Gaussian{Pi: 1.1, Tau: 2.05}
	assert.InDelta(t, 0.1, Delta(a, b), 1e-9)
}
