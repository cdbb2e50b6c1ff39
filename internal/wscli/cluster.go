package wscli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/wordspace"
	"github.com/mkrause/wordspace/internal/wsapi"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster and rank utilities built on stored neighbor lists",
}

var outlierCmd = &cobra.Command{
	Use:   "outlier <word>",
	Short: "List word's neighbors that are not corroborated by a peer (spec.md §4.11)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := requireWord(args[0])
		if err != nil {
			return err
		}
		h, err := openWordSpace()
		if err != nil {
			return err
		}
		filtered, err := wordspace.OutlierFilter(h, word)
		if err != nil {
			return err
		}
		printNeighborResults(filtered)
		return nil
	},
}

var setGrowthTopN int

var setGrowthCmd = &cobra.Command{
	Use:   "setgrowth <word> [word...]",
	Short: "Grow a seed word set by its members' combined neighbor lists (spec.md §4.11)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openWordSpace()
		if err != nil {
			return err
		}
		measure := resolveMeasure(h)

		words := make([]string, len(args))
		for i, a := range args {
			w, err := requireWord(a)
			if err != nil {
				return err
			}
			words[i] = w
		}

		grown, ok := wordspace.SetGrowth(h, words, setGrowthTopN, measure)
		if !ok {
			return fmt.Errorf("no candidates found: none of %s have stored neighbor lists", strings.Join(words, ", "))
		}
		printNeighborResults(grown)
		return nil
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank <word> [word...]",
	Short: "Rank candidates by similarity or collocation rank product across a word set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openWordSpace()
		if err != nil {
			return err
		}

		words := make([]string, len(args))
		for i, a := range args {
			w, err := requireWord(a)
			if err != nil {
				return err
			}
			words[i] = w
		}

		byCollocation, _ := cmd.Flags().GetBool("by-collocation")

		var ranked []wsapi.Neighbor
		if byCollocation {
			ranked = wordspace.HighestRankingCollocation(h, words)
		} else {
			ranked = wordspace.HighestRankingSimilarity(h, words)
		}
		printNeighborResults(ranked)
		return nil
	},
}

func init() {
	setGrowthCmd.Flags().IntVar(&setGrowthTopN, "top", 10, "number of candidates to print")
	rankCmd.Flags().Bool("by-collocation", false, "rank by collocation rank product instead of similarity rank product")

	clusterCmd.AddCommand(outlierCmd)
	clusterCmd.AddCommand(setGrowthCmd)
	clusterCmd.AddCommand(rankCmd)
}
