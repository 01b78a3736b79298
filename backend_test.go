// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// allBackends exercises a shared contract across every Backend
// implementation: the three providers must match the same reference values
// within the tolerances below, since the core depends only on the
// capability, never on which library backs it.
func allBackends() map[string]Backend {
	return map[string]Backend{
		"internal": InternalBackend(),
		"gonum":    GonumBackend(),
		"prob":     ProbBackend(),
	}
}

func TestBackendsAgreeOnCDF(t *testing.T) {
	for name, b := range allBackends() {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.5, b.CDF(0), 1e-9)
			assert.InDelta(t, 0.8413447, b.CDF(1), 1e-6)
			assert.InDelta(t, 0.1586553, b.CDF(-1), 1e-6)
		})
	}
}

func TestBackendsAgreeOnPDF(t *testing.T) {
	for name, b := range allBackends() {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.3989423, b.PDF(0), 1e-6)
		})
	}
}

func TestBackendsAgreeOnInvCDF(t *testing.T) {
	for name, b := range allBackends() {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, b.InvCDF(0.5), 1e-6)
			assert.InDelta(t, 1, b.InvCDF(b.CDF(1)), 1e-5)
		})
	}
}
