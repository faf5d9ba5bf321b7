// SPDX-License-Identifier: MIT

// Package systems builds the test systems used to exercise the solvers:
// the Hilbert matrix (the classic ill-conditioned stress case, exact solution
// all ones), systems with a prescribed solution, the two matrices of the LU
// exercise and diagonally dominant systems on which every iterative method
// converges.
//
// All constructors return fresh, caller-owned buffers.
package systems
