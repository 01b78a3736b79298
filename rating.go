// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import "github.com/corwinmath/trueskill/internal/gaussian"

// Rating is a Gaussian belief N(Mu, Sigma^2) over a single player's latent
// skill. Ratings are value objects: every operation in this package takes
// Ratings by value and returns new ones, never mutating an argument in
// place.
type Rating struct {
	Mu    float64
	Sigma float64
}

// CreateRating returns a Rating, defaulting Mu and Sigma from the
// process-wide global Environment when the corresponding argument is nil.
func CreateRating(mu, sigma *float64) (Rating, error) {
	return GlobalEnvironment().CreateRating(mu, sigma)
}

// Expose returns r.Mu - k*r.Sigma using the process-wide global
// Environment's k (default 3).
func Expose(r Rating) float64 {
	return GlobalEnvironment().Expose(r)
}

// toGaussian converts a Rating to its internal canonical-form
// representation. Panics if Sigma <= 0; callers must validate Ratings with
// validateRating before reaching here.
func (r Rating) toGaussian() gaussian.Gaussian {
	return gaussian.FromMeanVar(r.Mu, r.Sigma)
}

// ratingFromGaussian converts a canonical-form marginal back to a Rating.
func ratingFromGaussian(g gaussian.Gaussian) Rating {
	return Rating{Mu: g.Mu(), Sigma: g.Sigma()}
}

// validateRating checks the one invariant every input Rating must satisfy:
// Sigma > 0.
func validateRating(r Rating) error {
	if r.Sigma <= 0 {
		return valueErrorf("rating sigma must be > 0, got %g", r.Sigma)
	}
	return nil
}
