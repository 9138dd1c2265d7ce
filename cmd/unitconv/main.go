// SPDX-License-Identifier: MIT

// Command unitconv converts values between the units of the lvunits catalog
// using exact conversion factors.
//
//	unitconv convert 1 km m          # 1000 m
//	unitconv convert --integral 3 ft in
//	unitconv factor psi Pa
//	unitconv common m km ft
//	unitconv list --system international
package main

import "os"

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
