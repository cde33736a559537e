package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/npillmayer/avl/scenario"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

var errScenariosFailed = errors.New("some scenarios failed")

func runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE.yaml",
		Short: "Run the scenarios of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			pass := color.New(color.FgGreen)
			fail := color.New(color.FgRed, color.Bold)
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range f.Run() {
				if r.Passed() {
					pass.Fprint(out, "PASS")
					fmt.Fprintf(out, " %s\n", r.Name)
					continue
				}
				failed++
				fail.Fprint(out, "FAIL")
				fmt.Fprintf(out, " %s: %v\n", r.Name, r.Err)
			}
			fmt.Fprintf(out, "%d scenarios, %d failed\n", len(f.Scenarios), failed)
			if failed > 0 {
				return errScenariosFailed
			}
			return nil
		},
	}
}
