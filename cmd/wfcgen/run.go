// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latticeworks/wfc/analysis"
	"github.com/latticeworks/wfc/configdoc"
	"github.com/latticeworks/wfc/generator"
	"github.com/latticeworks/wfc/observer"
	"github.com/latticeworks/wfc/rule"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a generator from a config file and run it to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd)
		},
	}

	cmd.Flags().String("config", "", "path to a YAML authoring document")
	cmd.Flags().Int64("seed", -1, "PRNG seed; random if unset")
	cmd.Flags().Int("max-retries", 10, "contradiction retry ceiling")
	cmd.Flags().Int("steps", 0, "run a bounded number of steps instead of to completion (0 = unbounded)")
	cmd.Flags().Bool("regions", false, "print a region summary (component count per model) when the run finishes")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func buildGenerator(cmd *cobra.Command) (*generator.Generator, error) {
	configPath, _ := cmd.Flags().GetString("config")
	seed, _ := cmd.Flags().GetInt64("seed")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	doc, err := configdoc.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	sockets, models, gridDef, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("build config: %w", err)
	}

	rules, err := rule.Compile(models, sockets, gridDef.Geometry())
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}

	b := generator.NewBuilder().Rules(rules).Grid(gridDef).MaxRetries(maxRetries)
	if seed >= 0 {
		b = b.RNG(generator.SeededMode(uint64(seed)))
	}
	return b.Build()
}

func runGenerate(cmd *cobra.Command) error {
	gen, err := buildGenerator(cmd)
	if err != nil {
		return err
	}
	steps, _ := cmd.Flags().GetInt("steps")
	showRegions, _ := cmd.Flags().GetBool("regions")

	sub := gen.Subscribe()
	if steps > 0 {
		for i := 0; i < steps && gen.Status() != generator.Done; i++ {
			if _, err := gen.Step(); err != nil {
				return err
			}
			printEvents(cmd, sub)
		}
		return nil
	}

	for gen.Status() != generator.Done {
		if _, err := gen.Step(); err != nil {
			return err
		}
		printEvents(cmd, sub)
	}
	if showRegions {
		printRegions(cmd, gen)
	}
	return nil
}

func printRegions(cmd *cobra.Command, gen *generator.Generator) {
	counts := analysis.CountsByLabel(gen.Regions())
	for model, n := range counts {
		fmt.Fprintf(cmd.OutOrStdout(), "model=%d regions=%d\n", model, n)
	}
}

func printEvents(cmd *cobra.Command, sub *observer.Subscription) {
	for _, e := range sub.Drain() {
		switch e.Kind {
		case observer.Generated:
			fmt.Fprintf(cmd.OutOrStdout(), "generated cell=%d variant=%d model=%d rotation=%s\n",
				e.CellIndex, e.VariantIndex, e.OriginalModelIndex, e.Rotation)
		case observer.Reinitializing:
			fmt.Fprintf(cmd.OutOrStdout(), "reinitializing retry=%d\n", e.RetryCount)
		case observer.Failed:
			fmt.Fprintf(cmd.OutOrStdout(), "failed cell=%d\n", e.FailedCellIndex)
		}
	}
}
