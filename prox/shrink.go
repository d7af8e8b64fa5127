// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

func l1Value(x []float64, lambda float64) float64 {
	return lambda * floats.Norm(x, 1)
}

// Shrink computes the proximal map of λ‖𝐱‖₁ with step length t (soft-thresholding):
//
//	𝐲ᵢ = 𝐱ᵢ·𝚖𝚊𝚡(1 - tλ/|𝐱ᵢ|, 0)
//
// Entries with |𝐱ᵢ| ≤ tλ map to exactly zero, including 𝐱ᵢ = 0.
func Shrink(x []float64, t, lambda float64) (Vector, error) {
	if err := checkLambda(lambda); err != nil {
		return nil, err
	}
	switch {
	case math.IsNaN(t):
		return nil, fmt.Errorf("%w: step is NaN", ErrInvalidParam)
	case t < zero:
		return nil, fmt.Errorf("%w: step must not less than 0, got %g", ErrInvalidParam, t)
	}

	tl := t * lambda
	y := make(Vector, len(x))
	for i, xi := range x {
		if a := math.Abs(xi); a > tl {
			y[i] = xi * (one - tl/a)
		}
	}
	return y, nil
}
