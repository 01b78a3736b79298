// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import (
	"math"

	"github.com/corwinmath/trueskill/internal/gaussian"
	"github.com/corwinmath/trueskill/internal/graph"
)

// ratingGraph is a normalized match's factor graph plus the indices the
// driver needs to run the schedule and the extraction needs to read
// posteriors back out. It is built fresh per call and discarded afterward;
// nothing here outlives one Rate call.
type ratingGraph struct {
	g *graph.Graph

	skillVars [][]int // [team][player] -> skill variable index
	perfVars  [][]int // [team][player] -> performance variable index

	priorFactors      [][]int // [team][player] -> prior factor index
	likelihoodFactors [][]int // [team][player] -> likelihood factor index

	teamPerfVars   []int // [team] -> team-performance variable index
	teamSumFactors []int // [team] -> weighted-sum factor index (perf -> team perf)

	teamDiffVars   []int // [pair] -> team-difference variable index
	diffSumFactors []int // [pair] -> weighted-sum factor index (team perf -> diff)
	truncFactors   []int // [pair] -> outcome factor index
}

// buildRatingGraph assembles a skill and performance variable per player, a
// team-performance variable per team, a team-difference variable between
// each adjacent sorted-team pair, and the factors connecting them. Draw
// margin per pair is derived from that pair's own player count (the two
// adjacent teams being compared), following the reference implementation's
// factor-graph construction. The whole-match participant count does not
// enter the rating graph at all.
func buildRatingGraph(nm normalizedMatch, env Environment) (*ratingGraph, error) {
	g := graph.New()
	backend := env.backend()

	rg := &ratingGraph{
		g:                 g,
		skillVars:         make([][]int, len(nm.teams)),
		perfVars:          make([][]int, len(nm.teams)),
		priorFactors:      make([][]int, len(nm.teams)),
		likelihoodFactors: make([][]int, len(nm.teams)),
		teamPerfVars:      make([]int, len(nm.teams)),
		teamSumFactors:    make([]int, len(nm.teams)),
		teamDiffVars:      make([]int, len(nm.teams)-1),
		diffSumFactors:    make([]int, len(nm.teams)-1),
		truncFactors:      make([]int, len(nm.teams)-1),
	}

	betaSq := env.Beta * env.Beta

	for ti, team := range nm.teams {
		rg.skillVars[ti] = make([]int, len(team))
		rg.perfVars[ti] = make([]int, len(team))
		rg.priorFactors[ti] = make([]int, len(team))
		rg.likelihoodFactors[ti] = make([]int, len(team))

		for pi, rating := range team {
			sv := g.AddVariable()
			pv := g.AddVariable()
			rg.skillVars[ti][pi] = sv
			rg.perfVars[ti][pi] = pv

			priorSigma := math.Sqrt(rating.Sigma*rating.Sigma + env.Tau*env.Tau)
			priorValue := gaussian.FromMeanVar(rating.Mu, priorSigma)
			rg.priorFactors[ti][pi] = g.AddFactor(graph.NewPrior(sv, priorValue))
			rg.likelihoodFactors[ti][pi] = g.AddFactor(graph.NewLikelihood(sv, pv, betaSq))
		}
	}

	for ti, perfRow := range rg.perfVars {
		tv := g.AddVariable()
		rg.teamPerfVars[ti] = tv
		rg.teamSumFactors[ti] = g.AddFactor(graph.NewWeightedSum(tv, perfRow, nm.weights[ti]))
	}

	for i := 0; i < len(nm.teams)-1; i++ {
		dv := g.AddVariable()
		rg.teamDiffVars[i] = dv
		rg.diffSumFactors[i] = g.AddFactor(graph.NewWeightedSum(
			dv, []int{rg.teamPerfVars[i], rg.teamPerfVars[i+1]}, []float64{1, -1}))

		pairSize := len(nm.teams[i]) + len(nm.teams[i+1])
		eps := drawMargin(env.DrawProbability, env.Beta, pairSize, backend)

		if nm.ranks[i] == nm.ranks[i+1] {
			vw := func(t, e float64) (float64, float64, error) { return drawTruncation(t, e, backend) }
			rg.truncFactors[i] = g.AddFactor(graph.NewTruncateEqual(dv, eps, vw))
		} else {
			vw := func(t, e float64) (float64, float64, error) { return winTruncation(t, e, backend) }
			rg.truncFactors[i] = g.AddFactor(graph.NewTruncateGreater(dv, eps, vw))
		}
	}

	return rg, nil
}
