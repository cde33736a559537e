package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/avl/wordset"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func wordsCommand() *cobra.Command {
	var opts wordset.Options
	var progress bool
	var cmd = &cobra.Command{
		Use:   "words [flags] FILE",
		Short: "List the distinct words of a text or HTML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if progress {
				bar := progressbar.NewOptions(-1,
					progressbar.OptionSetDescription("Reading words..."),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetWidth(50),
					progressbar.OptionShowCount(),
					progressbar.OptionOnCompletion(func() {
						fmt.Fprintln(os.Stderr)
					}),
				)
				opts.Observer = func(ev wordset.Event) {
					if ev.Done {
						bar.Finish()
						return
					}
					bar.Add(1)
				}
			}
			tree, err := wordset.Load(args[0], &opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for w := range tree.All() {
				fmt.Fprintln(out, w)
			}
			tracer().Infof("%d distinct words, tree height %d", tree.Len(), tree.Height())
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.FoldCase, "fold", false, "map words to lower case")
	cmd.Flags().IntVar(&opts.MinLength, "min", 1, "minimum word length")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar while reading")
	return cmd
}
