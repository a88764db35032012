// SPDX-License-Identifier: MIT

package solve

import "errors"

var (
	// ErrFactor is returned when LU factorization fails (singular or structurally empty system).
	ErrFactor = errors.New("solve: factorization failed")

	// ErrSolve is returned when forward/back substitution fails after a successful factorization.
	ErrSolve = errors.New("solve: substitution failed")
)
