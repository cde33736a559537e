/*
Command avltree builds balanced trees from the command line.

	avltree insert [--remove v,...] [--unbalanced] [--dot] [--print] v...
	avltree words [--fold] [--min n] [--progress] FILE
	avltree run FILE.yaml

Use --trace=Debug|Info|Error to see what the tree is doing.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var level string
	var rootCmd = &cobra.Command{
		Use:          "avltree",
		Short:        "Build and inspect AVL trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(level)
		},
	}
	rootCmd.PersistentFlags().StringVar(&level, "trace", "Error", "trace level (Debug|Info|Error)")
	rootCmd.AddCommand(insertCommand(), wordsCommand(), runCommand())
	return rootCmd
}

func setupTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error", "":
		l = tracing.LevelError
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	return nil
}
