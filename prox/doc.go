// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prox provides proximal and projection operators for first-order
// convex solvers such as proximal gradient and SpaRSA.
//
// For an objective 𝑭(𝐱) = 𝒇(𝐱) + 𝒈(𝐱) with smooth 𝒇 and nonsmooth 𝒈,
// an [Operator] evaluates 𝒈 and, given a step size 𝒕, the proximal map
//
//	𝚙𝚛𝚘𝚡(𝐲, 𝒕) = 𝚊𝚛𝚐𝚖𝚒𝚗 ½‖𝐱 - 𝐲‖² + 𝒕·𝒈(𝐱)
//
// The built-in operators are:
//
//	ProxL1(λ)            𝒈(𝐱) = λ‖𝐱‖₁            soft-thresholding
//	ProjNonnegSimplex(λ) 𝒈(𝐱) = 𝛿{𝐱 ≥ 0, Σ𝐱 = λ}  simplex projection
//	ProjNonneg()         𝒈(𝐱) = 𝛿{𝐱 ≥ 0}         orthant projection
//
// Operators are immutable values and safe for concurrent use.
//
// # Reference:
//
//   - J. Duchi, S. Shalev-Shwartz, Y. Singer, T. Chandra (2008) 'Efficient Projections onto the
//     l1-Ball for Learning in High Dimensions.' ICML.
//   - S. J. Wright, R. D. Nowak, M. A. T. Figueiredo (2009) 'Sparse Reconstruction by Separable
//     Approximation.' IEEE Trans. Signal Processing 57(7).
package prox
