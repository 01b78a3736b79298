// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

// defaultMinDelta is the default convergence tolerance for the chain loop's
// per-sweep maximum message delta, matching rate's min_delta default.
const defaultMinDelta = 1e-4

// sweepsPerTeam bounds the chain loop's iteration cap: 10 * number of
// adjacent team-difference pairs. Reference implementations converge in
// 1-5 sweeps in practice; this cap only fires on a genuine precision
// problem, not on a slow-but-legitimate convergence.
const sweepsPerTeam = 10

// runInference executes the full TrueSkill message-passing schedule over a
// built graph: a one-time downward pass from priors to team performances,
// an iterated chain loop over the team-difference/outcome factors until
// convergence, and a one-time upward pass back to skills. It returns the
// sorted-order posterior Ratings, one slice per team, mirroring rg's team
// shape.
func runInference(rg *ratingGraph, minDelta float64) ([][]Rating, error) {
	if minDelta <= 0 {
		minDelta = defaultMinDelta
	}
	g := rg.g

	for ti := range rg.priorFactors {
		for pi := range rg.priorFactors[ti] {
			if _, err := g.PushPrior(rg.priorFactors[ti][pi]); err != nil {
				return nil, err
			}
			if _, err := g.PushLikelihoodDown(rg.likelihoodFactors[ti][pi]); err != nil {
				return nil, err
			}
		}
	}
	for ti := range rg.teamSumFactors {
		if _, err := g.PushSumDown(rg.teamSumFactors[ti]); err != nil {
			return nil, err
		}
	}

	numPairs := len(rg.teamDiffVars)
	if numPairs > 0 {
		sweepCap := sweepsPerTeam * numPairs
		converged := false
		for sweep := 0; sweep < sweepCap; sweep++ {
			maxDelta := 0.0
			for i := 0; i < numPairs; i++ {
				if _, err := g.PushSumDown(rg.diffSumFactors[i]); err != nil {
					return nil, err
				}
				delta, err := g.PushTruncateUp(rg.truncFactors[i])
				if err != nil {
					return nil, err
				}
				if delta > maxDelta {
					maxDelta = delta
				}
				if _, err := g.PushSumUp(rg.diffSumFactors[i], 0); err != nil {
					return nil, err
				}
				if _, err := g.PushSumUp(rg.diffSumFactors[i], 1); err != nil {
					return nil, err
				}
			}
			if maxDelta < minDelta {
				converged = true
				break
			}
		}
		if !converged {
			return nil, precisionErrorf("chain loop did not converge within %d sweeps (min_delta=%g)", sweepCap, minDelta)
		}
	}

	for ti := range rg.teamSumFactors {
		for pi := range rg.perfVars[ti] {
			if _, err := g.PushSumUp(rg.teamSumFactors[ti], pi); err != nil {
				return nil, err
			}
		}
	}
	for ti := range rg.likelihoodFactors {
		for pi := range rg.likelihoodFactors[ti] {
			if _, err := g.PushLikelihoodUp(rg.likelihoodFactors[ti][pi]); err != nil {
				return nil, err
			}
		}
	}

	posteriors := make([][]Rating, len(rg.skillVars))
	for ti, row := range rg.skillVars {
		posteriors[ti] = make([]Rating, len(row))
		for pi, sv := range row {
			marginal := g.Variables[sv].Marginal
			r := ratingFromGaussian(marginal)
			if err := invariantCheck(r); err != nil {
				return nil, err
			}
			posteriors[ti][pi] = r
		}
	}
	return posteriors, nil
}

// invariantCheck enforces the internal-invariant error: an output Rating
// must have a finite mean and a positive sigma.
func invariantCheck(r Rating) error {
	if r.Mu != r.Mu || r.Mu > 1e300 || r.Mu < -1e300 {
		return invariantErrorf("posterior mean is non-finite (mu=%g)", r.Mu)
	}
	if !(r.Sigma > 0) {
		return invariantErrorf("posterior sigma is non-positive (sigma=%g)", r.Sigma)
	}
	return nil
}
