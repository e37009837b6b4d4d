// SPDX-License-Identifier: MIT

// Command csrbench creates, populates and exercises a CSR sparse matrix and
// reports creation, population, insertion and multiplication timings.
//
// Usage:
//
//	csrbench populate --rows 100000 --cols 100000 --density 0.0001 --dump formatted
//	csrbench multiply --iterations 100 --metrics
//	csrbench insert --growth double --config bench.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
