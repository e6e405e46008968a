// Command codecexplorer runs the educational codec over image files and
// reports fidelity, rate and per-block internals.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
