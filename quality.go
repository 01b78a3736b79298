// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Quality computes the match-quality scalar: the probability mass of the
// draw region under the pre-match performance-difference distribution
// implied by teams' priors, in input order (teams are not rank-sorted for
// this computation; only adjacency in the given order matters). weights,
// when non-nil, mirrors teams' shape and defaults entries to 1 as usual.
//
// The computation follows the reference's exact matrix form: flatten all
// participants into one vector, build the per-adjacent-pair comparison
// matrix A (row r has +weight on team r's players, -weight on team r+1's
// players, 0 elsewhere), and reduce
//
//	quality = sqrt(det(beta^2*A*A^T) / det(beta^2*A*A^T + A*diag(sigma_i^2)*A^T))
//	        * exp(-0.5 * (A*mu)^T * (beta^2*A*A^T + A*diag(sigma_i^2)*A^T)^-1 * (A*mu))
//
// which is algebraically equivalent to a det(beta^2*n*I + A*Sigma*A^T) form
// with Sigma's beta^2 term folded into the A*A^T coefficient instead of
// kept as a separate diagonal; the two agree exactly in the two-team case
// and the general form is what the reference computes for arbitrarily
// many teams.
func (e Environment) Quality(teams []Team, weights [][]float64) (float64, error) {
	rawTeams := make([][]Rating, len(teams))
	for i, t := range teams {
		rawTeams[i] = []Rating(t)
	}
	if err := validateShapeAndValues(rawTeams, nil, weights); err != nil {
		return 0, err
	}
	if weights == nil {
		weights = make([][]float64, len(rawTeams))
		for i, team := range rawTeams {
			row := make([]float64, len(team))
			for j := range row {
				row[j] = 1
			}
			weights[i] = row
		}
	}

	n := 0
	for _, team := range rawTeams {
		n += len(team)
	}
	numPairs := len(rawTeams) - 1

	mu := mat.NewVecDense(n, nil)
	sigmaSq := make([]float64, n)
	idx := 0
	teamStart := make([]int, len(rawTeams))
	for ti, team := range rawTeams {
		teamStart[ti] = idx
		for _, r := range team {
			mu.SetVec(idx, r.Mu)
			sigmaSq[idx] = r.Sigma * r.Sigma
			idx++
		}
	}

	a := mat.NewDense(numPairs, n, nil)
	for ti := 0; ti < numPairs; ti++ {
		cur, next := rawTeams[ti], rawTeams[ti+1]
		for j := range cur {
			a.Set(ti, teamStart[ti]+j, weights[ti][j])
		}
		for j := range next {
			a.Set(ti, teamStart[ti+1]+j, -weights[ti+1][j])
		}
	}

	var aT mat.Dense
	aT.CloneFrom(a.T())

	var aat mat.Dense
	aat.Mul(a, &aT)

	sigma := mat.NewDiagDense(n, sigmaSq)
	var aSigma mat.Dense
	aSigma.Mul(a, sigma)
	var aSigmaAT mat.Dense
	aSigmaAT.Mul(&aSigma, &aT)

	beta2 := e.Beta * e.Beta
	ata := mat.NewDense(numPairs, numPairs, nil)
	ata.Scale(beta2, &aat)

	var middle mat.Dense
	middle.Add(ata, &aSigmaAT)

	detAta := mat.Det(ata)
	detMiddle := mat.Det(&middle)
	if detMiddle <= 0 {
		return 0, precisionErrorf("match quality denominator determinant collapsed (det=%g)", detMiddle)
	}
	sArg := detAta / detMiddle
	if sArg < 0 {
		sArg = 0
	}

	var aMu mat.VecDense
	aMu.MulVec(a, mu)

	var middleInv mat.Dense
	if err := middleInv.Inverse(&middle); err != nil {
		return 0, precisionErrorf("match quality covariance is not invertible: %v", err)
	}
	var tmp mat.VecDense
	tmp.MulVec(&middleInv, &aMu)
	eArg := -0.5 * mat.Dot(&aMu, &tmp)

	quality := math.Exp(eArg) * math.Sqrt(sArg)
	return quality, nil
}

// Quality is sugar over GlobalEnvironment().Quality.
func Quality(teams []Team, weights [][]float64) (float64, error) {
	return GlobalEnvironment().Quality(teams, weights)
}

// Quality1vs1 is sugar over Quality for the two-player case.
func (e Environment) Quality1vs1(r1, r2 Rating) (float64, error) {
	return e.Quality([]Team{{r1}, {r2}}, nil)
}

// Quality1vs1 is sugar over GlobalEnvironment().Quality1vs1.
func Quality1vs1(r1, r2 Rating) (float64, error) {
	return GlobalEnvironment().Quality1vs1(r1, r2)
}
