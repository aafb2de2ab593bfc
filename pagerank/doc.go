// SPDX-License-Identifier: MIT

// Package pagerank computes PageRank vectors for a small webgraph given as a
// dense connectivity matrix M (M[i][j] is the weight of the link from page
// j+1 to page i+1).
//
// An Engine holds a private copy of M and offers three interchangeable
// methods, selected by Method:
//
//   - InitialApproximation: solve (I − p·M·D)·x = e and normalize.
//   - PowerMethod: iterate x ← A·x with A = p·S + e·zᵗ until the scaled step
//     ‖(x_k − x_{k−1})/n‖₂ drops to Tolerance, then normalize.
//   - PrincipalEigenvector: take the eigenvector of the first eigenvalue the
//     decomposition returns, if that eigenvalue is real, and normalize.
//
// Shared quantities (column sums, linked and dangling columns, the diagonal
// D of inverse out-degrees and the stochastic matrix S) are exposed through
// Engine.Setup. The damping factor p is the constant Damping.
//
// Every successful result has length n and sums to 1. Engines are safe for
// concurrent use: the matrix is read-only after NewEngine and each call
// allocates its own working storage.
package pagerank
