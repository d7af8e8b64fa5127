// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Vector is a dense one-dimensional array of reals.
type Vector []float64

// AsVector converts a vector or column matrix representation into a fresh Vector.
//
// Accepted representations are:
//   - []float64 and Vector
//   - mat.Vector (e.g. *mat.VecDense)
//   - mat.Matrix with exactly one column
//   - [][]float64 whose rows each hold one element
func AsVector(v any) (Vector, error) {
	var x Vector
	switch v := v.(type) {
	case Vector:
		x = slices.Clone(v)
	case []float64:
		x = slices.Clone(v)
	case mat.Vector:
		n := v.Len()
		x = make(Vector, n)
		for i := range x {
			x[i] = v.AtVec(i)
		}
	case mat.Matrix:
		r, c := v.Dims()
		if c != 1 {
			return nil, fmt.Errorf("%w: got %d×%d matrix", ErrInvalidShape, r, c)
		}
		x = mat.Col(nil, 0, v)
	case [][]float64:
		x = make(Vector, len(v))
		for i, row := range v {
			if len(row) != 1 {
				return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidShape, i, len(row))
			}
			x[i] = row[0]
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrInvalidShape)
	}
	return x, nil
}

// column wraps x as an n×1 matrix without copying.
func column(x Vector) *mat.Dense {
	return mat.NewDense(len(x), 1, x)
}
