// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// SimplexProjection computes the euclidean projection of v onto the scaled simplex
//
//	𝚂(λ) = {𝐱 : 𝐱 ≥ 0, Σ𝐱ᵢ = λ}
//
// Sort the clipped entries descending as 𝐮, then with partial sums 𝐬ₖ = Σᵢ₌₁..ₖ 𝐮ᵢ:
//
//	ρ = 𝚖𝚊𝚡 { k : 𝐮ₖ > (𝐬ₖ - λ)/k }
//	θ = (𝐬ᵨ - λ)/ρ
//	𝐱ᵢ = 𝚖𝚊𝚡(𝐯ᵢ - θ, 0)
//
// Negative entries are clipped before sorting. If the clipped entries sum to less
// than λ the search is repeated on the unclipped entries, which admits θ < 0.
//
// The input is not modified.
func SimplexProjection(v []float64, lambda float64) (Vector, error) {
	n := len(v)
	switch {
	case n == 0:
		return nil, fmt.Errorf("%w: empty vector", ErrInvalidShape)
	case math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < zero:
		return nil, fmt.Errorf("%w: simplex radius must be finite and not less than 0, got %g", ErrInvalidParam, lambda)
	case n == 1:
		return Vector{lambda}, nil
	case floats.HasNaN(v):
		return nil, fmt.Errorf("%w: n=%d contains NaN", ErrProjection, n)
	case lambda == zero:
		return make(Vector, n), nil
	}

	theta, ok := simplexThreshold(NonnegProjection(v), lambda)
	if ok && theta < zero {
		theta, ok = simplexThreshold(slices.Clone(v), lambda)
	}
	if !ok {
		return nil, fmt.Errorf("%w: n=%d lambda=%g (no entry exceeds its threshold, max entry %g)",
			ErrProjection, n, lambda, slices.Max(v))
	}

	x := make(Vector, n)
	for i, vi := range v {
		x[i] = math.Max(vi-theta, zero)
	}
	return x, nil
}

// simplexThreshold sorts u descending in place and returns (𝐬ᵨ - λ)/ρ.
func simplexThreshold(u []float64, lambda float64) (float64, bool) {
	n := len(u)
	slices.SortFunc(u, func(a, b float64) int { return cmp.Compare(b, a) })
	sv := floats.CumSum(make([]float64, n), u)
	for k := n; k > 0; k-- {
		if u[k-1] > (sv[k-1]-lambda)/float64(k) {
			return (sv[k-1] - lambda) / float64(k), true
		}
	}
	return zero, false
}

// ProjectSimplex is SimplexProjection for any representation accepted by AsVector.
func ProjectSimplex(v any, lambda float64) (Vector, error) {
	x, err := AsVector(v)
	if err != nil {
		return nil, err
	}
	return SimplexProjection(x, lambda)
}

// NonnegProjection clips negative entries of x to zero:
//
//	𝐲ᵢ = 𝚖𝚊𝚡(𝐱ᵢ, 0)
func NonnegProjection(x []float64) Vector {
	y := make(Vector, len(x))
	for i, xi := range x {
		y[i] = math.Max(xi, zero)
	}
	return y
}
