// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

const (
	zero = 0.0
	one  = 1.0
)

// Kind identifies the penalty carried by an Operator.
type Kind int

const (
	// KindCustom user supplied value and proximal functions.
	KindCustom Kind = iota
	// KindL1 l1-norm penalty λ‖𝐱‖₁.
	KindL1
	// KindSimplex indicator of the scaled non-negative simplex.
	KindSimplex
	// KindNonneg indicator of the non-negative orthant.
	KindNonneg
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindL1:
		return "l1"
	case KindSimplex:
		return "simplex"
	case KindNonneg:
		return "nonneg"
	}
	return "unknown"
}

// Status is the termination flag reported by a proximal solver.
// Nothing in this package sets it.
type Status int

const (
	// StatusOptim optimality below tolerance.
	StatusOptim Status = iota + 1
	// StatusXTol relative change of location below tolerance.
	StatusXTol
	// StatusFTol relative change of function value below tolerance.
	StatusFTol
	// StatusMaxIter more than max iterations.
	StatusMaxIter
	// StatusMaxFev more than max function evaluations.
	StatusMaxFev
	// StatusOther any other termination.
	StatusOther
)

func (s Status) String() string {
	switch s {
	case StatusOptim:
		return "Optimality below optim_tol."
	case StatusXTol:
		return "Relative change in x below xtol."
	case StatusFTol:
		return "Relative change in function value below ftol."
	case StatusMaxIter:
		return "Max iterations reached."
	case StatusMaxFev:
		return "Max function evaluations reached."
	}
	return "Other termination."
}
