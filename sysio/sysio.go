// SPDX-License-Identifier: MIT

// Package sysio reads and writes augmented systems in the plain-text format
// used by the exercise data files: the order n, then n rows of n+1
// whitespace-separated numbers (the coefficients followed by b_i).
//
//	3
//	10  2 -1   9
//	-3 -6  2  -7
//	 1  1  5   7
//
// Line breaks carry no meaning; any whitespace separates tokens.
package sysio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/linsolve/matrix"
)

// ErrFormat reports a malformed system file.
var ErrFormat = errors.New("sysio: malformed system")

// MaxOrder is the largest order Read accepts.
const MaxOrder = 1 << 20

// Read parses one system from r.
//
// Errors:
//   - ErrFormat (wrapping strconv errors or io.ErrUnexpectedEOF) for bad or
//     short input, or an order outside [1, MaxOrder].
//
// Storage grows with the rows actually read, so a header promising more
// data than the input holds fails with io.ErrUnexpectedEOF rather than
// allocating for the declared order.
//   - Read errors from r.
func Read(r io.Reader) (*matrix.Augmented, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("%w: missing %s: %w", ErrFormat, what, io.ErrUnexpectedEOF)
	}

	tok, err := next("order")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: order: %w", ErrFormat, err)
	}
	if n < 1 || n > MaxOrder {
		return nil, fmt.Errorf("%w: order %d not in [1, %d]", ErrFormat, n, MaxOrder)
	}

	var (
		rows [][]float64
		row  []float64
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		row = make([]float64, n+1)
		for j = 0; j <= n; j++ {
			if tok, err = next(fmt.Sprintf("entry (%d,%d)", i, j)); err != nil {
				return nil, err
			}
			if v, err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("%w: entry (%d,%d): %w", ErrFormat, i, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	sys, err := matrix.AugmentedFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return sys, nil
}

// ReadFile opens path and parses one system from it.
func ReadFile(path string) (*matrix.Augmented, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sys, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sys, nil
}

// Write renders sys in the format accepted by Read, with enough digits
// (%.17g) to round-trip every value exactly.
func Write(w io.Writer, sys *matrix.Augmented) error {
	if err := matrix.ValidateNotNil(sys); err != nil {
		return fmt.Errorf("sysio.Write: %w", err)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", sys.Order())
	for i := 0; i < sys.Order(); i++ {
		for j, v := range sys.Row(i) {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', 17, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
