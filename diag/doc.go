// SPDX-License-Identifier: MIT

// Package diag measures and reports the quality of a computed solution:
// relative error against a known exact solution, residual b − A·x,
// deviation of A·A⁻¹ from the identity and the ∞-norm condition number.
//
// The Write* printers render statuses, vectors, error reports and matrices
// as aligned text for terminals and logs. They are display-only and never
// alter their inputs.
package diag
