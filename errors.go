// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package trueskill

import "fmt"

// ShapeError reports that a match description does not have the shape
// the operation requires: a ranks/weights slice of the wrong length, an
// empty team list, a team with zero players, or a single-team match (no
// adjacent pair to compare).
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string { return "trueskill: shape mismatch: " + e.Reason }

// ValueError reports an out-of-domain numeric input: a non-positive
// sigma, a non-positive beta or sigma0, a negative tau, a draw
// probability outside [0, 1), or a weight outside [0, 1].
type ValueError struct {
	Reason string
}

func (e *ValueError) Error() string { return "trueskill: invalid value: " + e.Reason }

// PrecisionError reports that the current Backend's floating-point
// precision was not sufficient to complete the computation: a truncation
// correction's denominator collapsed, or the chain loop did not converge
// within its iteration cap. The documented remedy is a higher-precision
// Backend.
type PrecisionError struct {
	Reason string
}

func (e *PrecisionError) Error() string {
	return "trueskill: floating-point precision failure: " + e.Reason
}

// InvariantError reports that an internal computation produced a
// non-finite mean or a non-positive sigma in an output Rating. This is
// always a bug, never a caller error.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "trueskill: internal invariant violated: " + e.Reason }

func shapeErrorf(format string, args ...any) error {
	return &ShapeError{Reason: fmt.Sprintf(format, args...)}
}

func valueErrorf(format string, args ...any) error {
	return &ValueError{Reason: fmt.Sprintf(format, args...)}
}

func precisionErrorf(format string, args ...any) error {
	return &PrecisionError{Reason: fmt.Sprintf(format, args...)}
}

func invariantErrorf(format string, args ...any) error {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}
