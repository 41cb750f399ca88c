package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/mandarin-master/internal/usecase"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		state := a.progress.Load(ctx)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, a.progress.ShareSummary(state))

		today := state.TodayXPOn(nowDate())
		fmt.Fprintf(out, "\n🎯 Daily goal: %d / %d XP\n", today, state.DailyXPGoal)
		fmt.Fprintf(out, "⚡ Next level at %d XP\n", usecase.XPForLevel(state.Level))
		if state.StreakFreezes > 0 {
			fmt.Fprintf(out, "🧊 %d streak freeze(s) available\n", state.StreakFreezes)
		}

		if draws, err := a.progress.PerfectDraws(ctx); err == nil && len(draws) > 0 {
			fmt.Fprintf(out, "✍️  Characters drawn perfectly: %d\n", len(draws))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
