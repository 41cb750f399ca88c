package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal <xp>",
	Short: "Set the daily XP goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("parse goal: %w", err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		state, err := a.progress.SetDailyGoal(ctx, a.progress.Load(ctx), goal)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Daily goal set to %d XP.\n", state.DailyXPGoal)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
}
