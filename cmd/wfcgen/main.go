// SPDX-License-Identifier: MIT
// Command wfcgen is an illustrative CLI over the core engine: it never
// implements generation semantics itself, only wires config loading, a
// Generator, and the observer stream together (§4.7).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wfcgen",
	Short: "Drive a procedural grid generator from a YAML authoring document",
}

func main() {
	rootCmd.AddCommand(runCmd(), watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wfcgen: %v\n", err)
		os.Exit(1)
	}
}
