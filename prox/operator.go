// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ValueFunc evaluates the nonsmooth term 𝒈(𝐱) : ℝⁿ → ℝ.
type ValueFunc func(x []float64) (float64, error)

// ProxFunc evaluates the proximal map of 𝒈 at 𝐱 with step length 𝒕:
//
//	𝚙𝚛𝚘𝚡(𝐱, 𝒕) = 𝚊𝚛𝚐𝚖𝚒𝚗_𝐲 ½‖𝐲 - 𝐱‖² + 𝒕·𝒈(𝐲)
//
// The returned slice must not alias x.
type ProxFunc func(x []float64, t float64) ([]float64, error)

// Step is an optional step length.
type Step struct {
	t  float64
	ok bool
}

// NoStep requests evaluation at the given point without applying the proximal map.
var NoStep = Step{}

// At returns a present step length t. A zero step is still a step.
func At(t float64) Step {
	return Step{t: t, ok: true}
}

// Value reports the step length and whether it is present.
func (s Step) Value() (float64, bool) {
	return s.t, s.ok
}

type custom struct {
	value ValueFunc
	prox  ProxFunc
}

// Operator composes the nonsmooth term 𝒈 with its proximal map.
// The zero value is an invalid custom operator.
type Operator struct {
	Kind   Kind
	Lambda float64
	fn     *custom
}

// Proximal builds an operator from a value function and its proximal map.
func Proximal(f ValueFunc, p ProxFunc) Operator {
	return Operator{Kind: KindCustom, fn: &custom{value: f, prox: p}}
}

// ProxL1 builds the operator of the l1 penalty λ‖𝐱‖₁.
func ProxL1(lambda float64) Operator {
	return Operator{Kind: KindL1, Lambda: lambda}
}

// ProjNonnegSimplex builds the projection onto {𝐱 ≥ 0, Σ𝐱 = λ}.
func ProjNonnegSimplex(lambda float64) Operator {
	return Operator{Kind: KindSimplex, Lambda: lambda}
}

// ProjNonneg builds the projection onto {𝐱 ≥ 0}.
func ProjNonneg() Operator {
	return Operator{Kind: KindNonneg}
}

// Evaluate applies the proximal map to x when step is present, then evaluates 𝒈
// at the resulting point. It returns the value and the point, which never aliases x.
func (op Operator) Evaluate(x []float64, step Step) (float64, Vector, error) {
	if len(x) == 0 {
		return zero, nil, fmt.Errorf("%w: empty vector", ErrInvalidShape)
	}
	var y Vector
	if t, ok := step.Value(); ok {
		var err error
		if y, err = op.prox(x, t); err != nil {
			return zero, nil, err
		}
	} else {
		y = slices.Clone(x)
	}
	v, err := op.value(y)
	if err != nil {
		return zero, nil, err
	}
	return v, y, nil
}

// EvaluateMatrix is Evaluate for a single column matrix.
// The point is returned as an n×1 matrix.
func (op Operator) EvaluateMatrix(x mat.Matrix, step Step) (float64, *mat.Dense, error) {
	v, err := AsVector(x)
	if err != nil {
		return zero, nil, err
	}
	f, y, err := op.Evaluate(v, step)
	if err != nil {
		return zero, nil, err
	}
	return f, column(y), nil
}

func (op Operator) value(x Vector) (float64, error) {
	switch op.Kind {
	case KindL1:
		if err := checkLambda(op.Lambda); err != nil {
			return zero, err
		}
		return l1Value(x, op.Lambda), nil
	case KindSimplex, KindNonneg:
		return zero, nil
	case KindCustom:
		if op.fn == nil || op.fn.value == nil {
			return zero, fmt.Errorf("%w: value function is required", ErrInvalidParam)
		}
		v, err := op.fn.value(x)
		if err != nil {
			return zero, fmt.Errorf("prox: value: %w", err)
		}
		return v, nil
	}
	return zero, fmt.Errorf("%w: unknown operator kind %d", ErrInvalidParam, int(op.Kind))
}

func (op Operator) prox(x []float64, t float64) (Vector, error) {
	switch op.Kind {
	case KindL1:
		return Shrink(x, t, op.Lambda)
	case KindSimplex:
		return SimplexProjection(x, op.Lambda)
	case KindNonneg:
		return NonnegProjection(x), nil
	case KindCustom:
		if op.fn == nil || op.fn.prox == nil {
			return nil, fmt.Errorf("%w: proximal function is required", ErrInvalidParam)
		}
		y, err := op.fn.prox(x, t)
		if err != nil {
			return nil, fmt.Errorf("prox: proximal map: %w", err)
		}
		return y, nil
	}
	return nil, fmt.Errorf("%w: unknown operator kind %d", ErrInvalidParam, int(op.Kind))
}

func checkLambda(lambda float64) (err error) {
	switch {
	case math.IsNaN(lambda):
		err = fmt.Errorf("%w: lambda is NaN", ErrInvalidParam)
	case math.IsInf(lambda, 1):
		err = fmt.Errorf("%w: lambda must be finite", ErrInvalidParam)
	case lambda < zero:
		err = fmt.Errorf("%w: lambda must not less than 0, got %g", ErrInvalidParam, lambda)
	}
	return
}
