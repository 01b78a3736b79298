// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import "sync/atomic"

// Default environment constants, matching the reference TrueSkill
// parameterization.
const (
	DefaultMu              = 25.0
	DefaultSigma           = DefaultMu / 3
	DefaultBeta            = DefaultSigma / 2
	DefaultTau             = DefaultSigma / 100
	DefaultDrawProbability = 0.10
	// defaultExposureK is the default k in Expose's mu - k*sigma formula.
	defaultExposureK = 3.0
)

// Environment is an immutable bundle of the constants that every rate and
// quality computation is derived from: the default rating (Mu, Sigma), the
// performance noise stddev (Beta), the between-match dynamics stddev (Tau),
// the draw probability of the underlying match model (DrawProbability), and
// a Backend providing Phi/phi/Phi^-1. Two Environment values with the same
// fields behave identically; there is nothing to mutate.
type Environment struct {
	Mu              float64
	Sigma           float64
	Beta            float64
	Tau             float64
	DrawProbability float64
	// ExposureK scales Expose's mu - k*sigma formula. Zero means "use the
	// default of 3", so the zero Environment{} is never accidentally wired
	// to an unintended exposure scale.
	ExposureK float64
	Backend   Backend
}

// NewEnvironment validates and constructs an Environment. sigma and beta
// must be greater than zero, tau must be non-negative, and drawProbability
// must be in [0, 1). A nil backend defaults to InternalBackend().
func NewEnvironment(mu, sigma, beta, tau, drawProbability float64, backend Backend) (Environment, error) {
	if sigma <= 0 {
		return Environment{}, valueErrorf("sigma0 must be > 0, got %g", sigma)
	}
	if beta <= 0 {
		return Environment{}, valueErrorf("beta must be > 0, got %g", beta)
	}
	if tau < 0 {
		return Environment{}, valueErrorf("tau must be >= 0, got %g", tau)
	}
	if drawProbability < 0 || drawProbability >= 1 {
		return Environment{}, valueErrorf("draw probability must be in [0, 1), got %g", drawProbability)
	}
	if backend == nil {
		backend = InternalBackend()
	}
	return Environment{
		Mu:              mu,
		Sigma:           sigma,
		Beta:            beta,
		Tau:             tau,
		DrawProbability: drawProbability,
		Backend:         backend,
	}, nil
}

// DefaultEnvironment returns the canonical TrueSkill defaults
// (mu=25, sigma=25/3, beta=sigma/2, tau=sigma/100, p_draw=0.10) on the
// internal backend. Construction cannot fail.
func DefaultEnvironment() Environment {
	env, err := NewEnvironment(DefaultMu, DefaultSigma, DefaultBeta, DefaultTau, DefaultDrawProbability, InternalBackend())
	if err != nil {
		panic("trueskill: default environment parameters are invalid: " + err.Error())
	}
	return env
}

// backend returns e.Backend, or InternalBackend() if the Environment was
// built without NewEnvironment (e.g. a bare Environment{} literal).
func (e Environment) backend() Backend {
	if e.Backend == nil {
		return InternalBackend()
	}
	return e.Backend
}

// exposureK returns e.ExposureK, or the default of 3 if unset.
func (e Environment) exposureK() float64 {
	if e.ExposureK == 0 {
		return defaultExposureK
	}
	return e.ExposureK
}

// CreateRating returns a new Rating using the Environment's defaults for
// any argument that is nil.
func (e Environment) CreateRating(mu, sigma *float64) (Rating, error) {
	m, s := e.Mu, e.Sigma
	if mu != nil {
		m = *mu
	}
	if sigma != nil {
		s = *sigma
	}
	if s <= 0 {
		return Rating{}, valueErrorf("sigma must be > 0, got %g", s)
	}
	return Rating{Mu: m, Sigma: s}, nil
}

// Expose returns r.Mu - k*r.Sigma, a single scalar usable for leaderboard
// sorting. k defaults to 3 and is configurable via Environment.ExposureK;
// callers whose formulas depend on Beta may prefer a different scaling of
// k, which is why it lives on the Environment rather than being hardcoded.
func (e Environment) Expose(r Rating) float64 {
	return r.Mu - e.exposureK()*r.Sigma
}

// globalEnvironment is the process-wide default Environment used by the
// package-level convenience wrappers. It is lazily initialized with
// DefaultEnvironment() on first read and atomically replaceable by
// SetGlobalEnvironment, so concurrent readers always observe a complete,
// internally-consistent Environment snapshot.
var globalEnvironment atomic.Pointer[Environment]

// GlobalEnvironment returns the process-wide default Environment,
// initializing it to DefaultEnvironment() on first call if it has not
// been set yet.
func GlobalEnvironment() Environment {
	p := globalEnvironment.Load()
	if p == nil {
		def := DefaultEnvironment()
		globalEnvironment.CompareAndSwap(nil, &def)
		p = globalEnvironment.Load()
	}
	return *p
}

// SetGlobalEnvironment installs env as the process-wide default
// Environment. The swap is a single atomic pointer store: concurrent
// readers either see the old Environment in full or the new one in full,
// never a mix of the two.
func SetGlobalEnvironment(env Environment) {
	globalEnvironment.Store(&env)
}
