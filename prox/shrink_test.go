// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShrinkSoftThreshold(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for iter := 0; iter < 1000; iter++ {
		x := randVec(r, 1+r.IntN(40), 4)
		if iter%3 == 0 {
			x[r.IntN(len(x))] = 0
		}
		step, lambda := r.Float64()*2, r.Float64()*3
		y, err := Shrink(x, step, lambda)
		require.NoError(t, err)
		for i, xi := range x {
			want := math.Copysign(math.Max(math.Abs(xi)-step*lambda, 0), xi)
			require.InDelta(t, want, y[i], 1e-12)
			require.False(t, math.IsNaN(y[i]))
		}
	}
}

func TestShrinkZeroEntries(t *testing.T) {
	y, err := Shrink([]float64{0, 0, 0}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, Vector{0, 0, 0}, y)

	// 0/0 must not leak NaN when tλ = 0.
	y, err = Shrink([]float64{0, 2, -3}, 0, 1)
	require.NoError(t, err)
	require.Equal(t, Vector{0, 2, -3}, y)

	y, err = Shrink([]float64{0, 2, -3}, 1, 0)
	require.NoError(t, err)
	require.Equal(t, Vector{0, 2, -3}, y)
}

func TestShrinkInvalid(t *testing.T) {
	cases := []struct {
		name      string
		t, lambda float64
	}{
		{"negative lambda", 1, -1},
		{"nan lambda", 1, math.NaN()},
		{"inf lambda", 1, math.Inf(1)},
		{"negative step", -0.5, 1},
		{"nan step", math.NaN(), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Shrink([]float64{1, 2}, c.t, c.lambda)
			require.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}

func TestL1Value(t *testing.T) {
	require.InDelta(t, 2*(3+0.5+4), l1Value([]float64{3, -0.5, 0, -4}, 2), 1e-15)
}
