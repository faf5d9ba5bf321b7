// SPDX-License-Identifier: MIT

// Command linsolve runs the linsolve solvers on Hilbert systems or on systems
// loaded from text files and reports status, solution, error and timing.
//
//	linsolve gauss   --hilbert 8 --pivot total
//	linsolve lu      --input a1.txt --inverse
//	linsolve iterate --hilbert 6 --method sor --omega 1.4
//	linsolve sweep   --hilbert 6 --method sor --plot sor.png
//	linsolve batch   -f plan.yaml
package main

import (
	"flag"
	"os"

	"k8s.io/klog"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := NewLinsolveCommand(os.Stdout)
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := cmd.Execute(); err != nil {
		klog.Exitf("linsolve: %v", err)
	}
}
