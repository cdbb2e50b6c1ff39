// Package wscli implements the "wordspace" command-line demo: a Cobra
// command tree exposing every query operation in spec.md §4 against a
// word space opened from disk, grounded on the teacher's internal/cli —
// the same rootCmd-plus-init()-registered-subcommands shape, generalized
// from command-lookup queries to word-space queries.
package wscli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/version"
)

var (
	wordSpacePath  string
	loadIntoMemory bool
	measureFlag    string
	noColor        bool
	outputFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "wordspace",
	Short: "Query pre-computed distributional word-similarity databases",
	Long: `wordspace opens a word space built by a DISCO-style indexer and answers
the queries in its design: vector lookup, nearest-neighbor search, vector
composition, analogy solving, and short-text similarity.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&wordSpacePath, "path", "p", "", "path to the word space (directory for sparse, file for dense)")
	rootCmd.PersistentFlags().BoolVarP(&loadIntoMemory, "memory", "m", false, "force the word space fully into memory on open")
	rootCmd.PersistentFlags().StringVar(&measureFlag, "measure", "", "similarity measure to use: COSINE or KOLB (default: the word space's own)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, list, or json")

	rootCmd.MarkPersistentFlagRequired("path")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(vectorCmd)
	rootCmd.AddCommand(neighborsCmd)
	rootCmd.AddCommand(simvalCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(analogyCmd)
	rootCmd.AddCommand(nnCmd)
	rootCmd.AddCommand(textsimCmd)
	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(graphCmd)
}

// Execute runs the root command.
func Execute() error {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	return rootCmd.Execute()
}
