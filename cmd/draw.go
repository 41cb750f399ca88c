package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/mandarin-master/internal/catalog"
)

// drawCmd records stroke-order practice results reported by the external
// drawing widget. Only zero-mistake completions count toward mastery.
var drawCmd = &cobra.Command{
	Use:   "draw <hanzi>",
	Short: "Record a stroke-order practice result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mistakes, _ := cmd.Flags().GetInt("mistakes")
		hanzi := args[0]

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		perfect, err := a.progress.RecordDraw(cmd.Context(), hanzi, mistakes)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if perfect {
			fmt.Fprintf(out, "✨ Perfect draw for %s recorded.\n", hanzi)
		} else {
			fmt.Fprintf(out, "%d mistake(s) on %s — keep practicing!\n", mistakes, hanzi)
		}
		if entry, ok := catalog.HanziIndex(catalog.Vocabulary())[hanzi]; ok && entry.Radical != "" {
			fmt.Fprintf(out, "Hint: radical %s means %q.\n", entry.Radical, entry.RadicalMeaning)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().Int("mistakes", 0, "total stroke mistakes reported by the widget")
}
