// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import (
	"fmt"
	"sort"
)

// minWeightFloor is the numerical floor a positive-but-tiny partial-play
// weight is clamped to, so that a weighted-sum factor never divides by a
// cavity precision scaled by a coefficient close enough to zero to lose
// precision. A weight of exactly zero is left at zero: it is handled by
// skipping the player's edge outright (see internal/graph.PushSumUp),
// not by flooring it into a very small but nonzero influence.
const minWeightFloor = 1e-6

// Team is an ordered team of Ratings, used by the positional form of Rate
// and Quality.
type Team []Rating

// KeyedTeam is a team of Ratings addressed by an arbitrary comparable key,
// used by the keyed form of RateKeyed. Map order is not meaningful; the
// key is only ever used to look a player's Rating back up.
type KeyedTeam[K comparable] map[K]Rating

// normalizedMatch is a match description normalized to positional form,
// sorted by rank ascending, with the permutation needed to restore the
// caller's original team order.
type normalizedMatch struct {
	teams   [][]Rating
	ranks   []int
	weights [][]float64
	// perm[i] is the index in the caller's original team order that ended
	// up at sorted position i.
	perm []int
	n    int // total participant count across all teams
}

// validateShapeAndValues checks the invariants every rate/quality call
// requires before any graph is built: at least two teams, no empty team,
// ranks the same length as teams if supplied, every Rating's sigma > 0,
// and every weight in [0, 1].
func validateShapeAndValues(teams [][]Rating, ranks []int, weights [][]float64) error {
	if len(teams) == 0 {
		return shapeErrorf("no teams supplied")
	}
	if len(teams) < 2 {
		return shapeErrorf("need at least two teams, got %d (a single-team match has no outcome to compare)", len(teams))
	}
	for i, team := range teams {
		if len(team) == 0 {
			return shapeErrorf("team %d has zero players", i)
		}
		for j, r := range team {
			if err := validateRating(r); err != nil {
				return fmt.Errorf("team %d player %d: %w", i, j, err)
			}
		}
	}
	if ranks != nil && len(ranks) != len(teams) {
		return shapeErrorf("ranks has length %d, want %d (one per team)", len(ranks), len(teams))
	}
	if weights != nil {
		if len(weights) != len(teams) {
			return shapeErrorf("weights has length %d, want %d (one per team)", len(weights), len(teams))
		}
		for i, team := range teams {
			if len(weights[i]) != len(team) {
				return shapeErrorf("weights[%d] has length %d, want %d (one per player)", i, len(weights[i]), len(team))
			}
			for j, w := range weights[i] {
				if w < 0 || w > 1 {
					return valueErrorf("weights[%d][%d] = %g is outside [0, 1]", i, j, w)
				}
			}
		}
	}
	return nil
}

// normalizeMatch validates the inputs, resolves ranks and weights to their
// positional defaults, sorts teams by rank ascending, and returns the
// sorted match plus the permutation needed to undo the sort.
func normalizeMatch(teams [][]Rating, ranks []int, weights [][]float64) (normalizedMatch, error) {
	if err := validateShapeAndValues(teams, ranks, weights); err != nil {
		return normalizedMatch{}, err
	}
	if ranks == nil {
		ranks = make([]int, len(teams))
		for i := range ranks {
			ranks[i] = i
		}
	}
	if weights == nil {
		weights = make([][]float64, len(teams))
		for i, team := range teams {
			row := make([]float64, len(team))
			for j := range row {
				row[j] = 1
			}
			weights[i] = row
		}
	}
	// Clamp tiny positive weights away from zero; leave exact zero alone.
	clamped := make([][]float64, len(weights))
	for i, row := range weights {
		clampedRow := make([]float64, len(row))
		for j, w := range row {
			if w > 0 && w < minWeightFloor {
				w = minWeightFloor
			}
			clampedRow[j] = w
		}
		clamped[i] = clampedRow
	}

	order := make([]int, len(teams))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ranks[order[a]] < ranks[order[b]]
	})

	sortedTeams := make([][]Rating, len(teams))
	sortedRanks := make([]int, len(teams))
	sortedWeights := make([][]float64, len(teams))
	n := 0
	for i, orig := range order {
		sortedTeams[i] = teams[orig]
		sortedRanks[i] = ranks[orig]
		sortedWeights[i] = clamped[orig]
		n += len(teams[orig])
	}

	return normalizedMatch{
		teams:   sortedTeams,
		ranks:   sortedRanks,
		weights: sortedWeights,
		perm:    order,
		n:       n,
	}, nil
}

// restore un-permutes a per-sorted-team result back to the caller's
// original team order.
func restore[T any](sorted []T, perm []int) []T {
	out := make([]T, len(sorted))
	for sortedIdx, origIdx := range perm {
		out[origIdx] = sorted[sortedIdx]
	}
	return out
}

// keysInOrder returns a KeyedTeam's keys in an arbitrary but fixed-for-
// this-call order, alongside the parallel Ratings, so a keyed match can be
// converted to positional form and back.
func keysInOrder[K comparable](kt KeyedTeam[K]) ([]K, []Rating) {
	keys := make([]K, 0, len(kt))
	ratings := make([]Rating, 0, len(kt))
	for k, r := range kt {
		keys = append(keys, k)
		ratings = append(ratings, r)
	}
	return keys, ratings
}
