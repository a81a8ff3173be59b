// SPDX-License-Identifier: MIT

// Command jigsaw derives composition skeletons from the command line.
//
//	jigsaw derive comp.yaml other.yaml --min-run 5
//	jigsaw row closure 18234567
//	jigsaw row mul 13425678 43217568
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&app{out: os.Stdout}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
