package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/npillmayer/avl"
	"github.com/spf13/cobra"
)

type insertOptions struct {
	remove     []string
	unbalanced bool
	dot        bool
	print      bool
}

func insertCommand() *cobra.Command {
	var opts insertOptions
	var cmd = &cobra.Command{
		Use:   "insert [flags] value...",
		Short: "Insert values into a tree and show the result",
		Long: `Insert builds a tree from the given values, then removes the values given
with --remove. Values are compared as integers if all of them are integers,
as strings otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ints, ok := parseInts(slices.Concat(args, opts.remove)); ok {
				return build(cmd.OutOrStdout(), ints[:len(args)], ints[len(args):], opts)
			}
			return build(cmd.OutOrStdout(), args, opts.remove, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.remove, "remove", nil, "values to remove after inserting")
	cmd.Flags().BoolVar(&opts.unbalanced, "unbalanced", false, "do not rebalance (plain binary search tree)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write the tree in GraphViz DOT format")
	cmd.Flags().BoolVar(&opts.print, "print", false, "draw the tree on the console")
	return cmd
}

// parseInts returns the values as integers, if all of them are.
func parseInts(values []string) ([]int, bool) {
	ints := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false
		}
		ints[i] = n
	}
	return ints, true
}

func build[T cmp.Ordered](w io.Writer, insert, remove []T, opts insertOptions) error {
	tree, err := avl.New(avl.Config[T]{
		Compare:    cmp.Compare[T],
		Unbalanced: opts.unbalanced,
	})
	if err != nil {
		return err
	}
	for _, x := range insert {
		tree.Insert(x)
	}
	for _, x := range remove {
		tree.Remove(x)
	}
	if err := tree.Check(); err != nil {
		return err
	}
	return report(w, tree, opts)
}

func report[T any](w io.Writer, tree *avl.Tree[T], opts insertOptions) error {
	fmt.Fprintf(w, "in-order: %v\n", tree.Values())
	if lo, err := tree.FindMin(); err == nil {
		hi, _ := tree.FindMax()
		fmt.Fprintf(w, "min=%v max=%v ", lo, hi)
	}
	fmt.Fprintf(w, "size=%d height=%d\n", tree.Len(), tree.Height())
	if opts.print {
		tree.Print(w, nil)
	}
	if opts.dot {
		return avl.Tree2Dot(tree, w)
	}
	return nil
}
