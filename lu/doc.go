// SPDX-License-Identifier: MIT

// Package lu implements Doolittle LU factorization without pivoting,
// forward/backward substitution and matrix inversion through the factors.
//
// Unlike package gauss, this engine degrades instead of failing: a pivot or
// diagonal entry below the tolerance does not abort the computation. It is
// reported through an explicit "unstable" result (Factors.Unstable and the
// bool returned by every substitution), and callers must check it whenever a
// successful inverse may be numerically suspect. Errors are reserved for
// invalid arguments.
//
// No state is shared between calls, so independent factorizations may run
// concurrently.
//
// Complexity: Decompose O(n³); each substitution O(n²); Inverse O(n³).
package lu
