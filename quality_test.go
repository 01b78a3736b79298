// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityIdenticalTinySigmaApproachesOne(t *testing.T) {
	env := DefaultEnvironment()
	r := Rating{Mu: 25, Sigma: 0.001}
	q, err := env.Quality1vs1(r, r)
	require.NoError(t, err)
	assert.Greater(t, q, 0.9999)
	assert.LessOrEqual(t, q, 1.0)
}

func TestQualityDefault2v1(t *testing.T) {
	env := DefaultEnvironment()
	teamA := Team{defaultRating(), defaultRating()}
	teamB := Team{defaultRating()}
	q, err := env.Quality([]Team{teamA, teamB}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.1347, q, 5e-3)
}

func TestQualityIsInUnitInterval(t *testing.T) {
	env := DefaultEnvironment()
	q, err := env.Quality1vs1(Rating{Mu: 40, Sigma: 5}, Rating{Mu: 10, Sigma: 5})
	require.NoError(t, err)
	assert.Greater(t, q, 0.0)
	assert.LessOrEqual(t, q, 1.0)
}

func TestQualityRejectsSingleTeam(t *testing.T) {
	env := DefaultEnvironment()
	_, err := env.Quality([]Team{{defaultRating()}}, nil)
	require.Error(t, err)
}

func TestQualityUnaffectedByRate(t *testing.T) {
	env := DefaultEnvironment()
	r1, r2 := defaultRating(), defaultRating()
	before, err := env.Quality1vs1(r1, r2)
	require.NoError(t, err)

	_, _, err = env.Rate1vs1(r1, r2, false)
	require.NoError(t, err)

	after, err := env.Quality1vs1(r1, r2)
	require.NoError(t, err)
	assert.InDelta(t, before, after, 1e-12)
}
