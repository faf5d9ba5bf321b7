// SPDX-License-Identifier: MIT
package iterative_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/systems"
)

var sinkRes iterative.Result

func BenchmarkMethods(b *testing.B) {
	const n = 128
	sys, err := systems.Random(n, 1)
	if err != nil {
		b.Fatal(err)
	}
	opts := iterative.DefaultOptions()
	opts.Criterion = iterative.Displacement
	x := make([]float64, n)

	for _, m := range allMethods {
		b.Run(fmt.Sprintf("%s/n=%d", m, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := iterative.Solve(sys, x, m, 0.8, opts)
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
	}
}
