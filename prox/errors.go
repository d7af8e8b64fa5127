// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import "errors"

var (
	// ErrInvalidShape the argument is not a one-dimensional vector or single column matrix.
	ErrInvalidShape = errors.New("prox: vector must be one-dimensional or a single column")
	// ErrUnsupportedType the argument is neither a vector nor a column matrix representation.
	ErrUnsupportedType = errors.New("prox: unsupported vector type")
	// ErrProjection the simplex projection found no positive support.
	ErrProjection = errors.New("prox: simplex projection has no qualifying index")
	// ErrInvalidParam a regularization weight or step size is out of range.
	ErrInvalidParam = errors.New("prox: invalid parameter")
)
