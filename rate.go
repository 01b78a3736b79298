// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

// Rate computes posterior Ratings for a match of arbitrarily many teams of
// arbitrary size. teams is the match in finishing order unless ranks is
// supplied; ranks, when non-nil, must have one entry per team (equal ranks
// mark a tie, lower is better). weights, when non-nil, must mirror teams'
// shape exactly and lie in [0, 1] (partial-play fraction; default 1).
// minDelta, if positive, overrides the chain loop's convergence tolerance;
// zero or a negative value uses the default of 1e-4.
//
// The returned slice mirrors teams' shape one-for-one: same team count,
// same per-team sizes, same order.
func (e Environment) Rate(teams []Team, ranks []int, weights [][]float64, minDelta float64) ([]Team, error) {
	rawTeams := make([][]Rating, len(teams))
	for i, t := range teams {
		rawTeams[i] = []Rating(t)
	}
	nm, err := normalizeMatch(rawTeams, ranks, weights)
	if err != nil {
		return nil, err
	}
	rg, err := buildRatingGraph(nm, e)
	if err != nil {
		return nil, err
	}
	sortedPosteriors, err := runInference(rg, minDelta)
	if err != nil {
		return nil, err
	}
	restored := restore(sortedPosteriors, nm.perm)
	out := make([]Team, len(restored))
	for i, row := range restored {
		out[i] = Team(row)
	}
	return out, nil
}

// Rate is sugar over GlobalEnvironment().Rate.
func Rate(teams []Team, ranks []int, weights [][]float64, minDelta float64) ([]Team, error) {
	return GlobalEnvironment().Rate(teams, ranks, weights, minDelta)
}

// RateKeyed is the keyed-team form of Rate: each team is a KeyedTeam[K]
// instead of an ordered Team, and weights are looked up by the same key.
// The returned slice mirrors teams' shape: same team count and same keys
// per team, in no particular iteration order beyond "matches the input
// KeyedTeam's own key set".
func RateKeyed[K comparable](e Environment, teams []KeyedTeam[K], ranks []int, weights []map[K]float64, minDelta float64) ([]KeyedTeam[K], error) {
	rawTeams := make([][]Rating, len(teams))
	keys := make([][]K, len(teams))
	for i, kt := range teams {
		ks, rs := keysInOrder(kt)
		keys[i] = ks
		rawTeams[i] = rs
	}
	var posWeights [][]float64
	if weights != nil {
		if len(weights) != len(teams) {
			return nil, shapeErrorf("weights has length %d, want %d (one per team)", len(weights), len(teams))
		}
		posWeights = make([][]float64, len(teams))
		for i, ks := range keys {
			row := make([]float64, len(ks))
			for j, k := range ks {
				w, ok := weights[i][k]
				if !ok {
					w = 1
				}
				row[j] = w
			}
			posWeights[i] = row
		}
	}

	positionalTeams := make([]Team, len(rawTeams))
	for i, row := range rawTeams {
		positionalTeams[i] = Team(row)
	}
	out, err := e.Rate(positionalTeams, ranks, posWeights, minDelta)
	if err != nil {
		return nil, err
	}

	result := make([]KeyedTeam[K], len(out))
	for i, team := range out {
		kt := make(KeyedTeam[K], len(team))
		for j, r := range team {
			kt[keys[i][j]] = r
		}
		result[i] = kt
	}
	return result, nil
}

// Rate1vs1 is sugar over Rate for the common two-player, single-team-each
// case. drawn=true asserts a tie; otherwise r1's team is the winner.
func (e Environment) Rate1vs1(r1, r2 Rating, drawn bool) (Rating, Rating, error) {
	ranks := []int{0, 1}
	if drawn {
		ranks = []int{0, 0}
	}
	out, err := e.Rate([]Team{{r1}, {r2}}, ranks, nil, 0)
	if err != nil {
		return Rating{}, Rating{}, err
	}
	return out[0][0], out[1][0], nil
}

// Rate1vs1 is sugar over GlobalEnvironment().Rate1vs1.
func Rate1vs1(r1, r2 Rating, drawn bool) (Rating, Rating, error) {
	return GlobalEnvironment().Rate1vs1(r1, r2, drawn)
}
