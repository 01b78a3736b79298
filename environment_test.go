// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnvironmentConstants(t *testing.T) {
	env := DefaultEnvironment()
	assert.InDelta(t, 25.0, env.Mu, 1e-9)
	assert.InDelta(t, 25.0/3, env.Sigma, 1e-9)
	assert.InDelta(t, env.Sigma/2, env.Beta, 1e-9)
	assert.InDelta(t, env.Sigma/100, env.Tau, 1e-9)
	assert.InDelta(t, 0.10, env.DrawProbability, 1e-9)
}

func TestNewEnvironmentRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name                                    string
		mu, sigma, beta, tau, drawProbability   float64
	}{
		{"non-positive sigma", 25, 0, 4, 0.08, 0.1},
		{"non-positive beta", 25, 8, 0, 0.08, 0.1},
		{"negative tau", 25, 8, 4, -1, 0.1},
		{"draw probability too low", 25, 8, 4, 0.08, -0.1},
		{"draw probability too high", 25, 8, 4, 0.08, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewEnvironment(c.mu, c.sigma, c.beta, c.tau, c.drawProbability, nil)
			require.Error(t, err)
			var verr *ValueError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestNewEnvironmentDefaultsToInternalBackend(t *testing.T) {
	env, err := NewEnvironment(25, 8, 4, 0.08, 0.1, nil)
	require.NoError(t, err)
	assert.NotNil(t, env.backend())
}

func TestExposeDefaultK(t *testing.T) {
	env := DefaultEnvironment()
	r := Rating{Mu: 30, Sigma: 2}
	assert.InDelta(t, 30-3*2, env.Expose(r), 1e-9)
}

func TestExposeCustomK(t *testing.T) {
	env := DefaultEnvironment()
	env.ExposureK = 1
	r := Rating{Mu: 30, Sigma: 2}
	assert.InDelta(t, 28, env.Expose(r), 1e-9)
}

func TestGlobalEnvironmentLazyInitAndSnapshot(t *testing.T) {
	original := GlobalEnvironment()
	t.Cleanup(func() { SetGlobalEnvironment(original) })

	custom, err := NewEnvironment(1500, 350, 175, 3, 0.05, nil)
	require.NoError(t, err)
	SetGlobalEnvironment(custom)

	got := GlobalEnvironment()
	assert.InDelta(t, 1500, got.Mu, 1e-9)
	assert.InDelta(t, 350, got.Sigma, 1e-9)
}
