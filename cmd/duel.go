package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/mandarin-master/internal/catalog"
	"github.com/eslsoft/mandarin-master/internal/entity"
	"github.com/eslsoft/mandarin-master/internal/usecase"
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Free-play sentence duels",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficultyFlag, _ := cmd.Flags().GetString("difficulty")
		unlockedOnly, _ := cmd.Flags().GetBool("unlocked")

		difficulty, err := entity.ParseDifficulty(difficultyFlag)
		if err != nil {
			return fmt.Errorf("%w: %q", err, difficultyFlag)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		state := a.progress.Load(ctx)

		pool := catalog.Vocabulary()
		if unlockedOnly {
			pool = catalog.VocabByIDs(state.UnlockedCards)
		}

		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())
		winStreak := 0

		for {
			quest := a.duel.GenerateQuest(pool, difficulty)
			if quest == nil {
				// Expected for small pools: offer a wider one instead of failing.
				fmt.Fprintln(out, "No quest available for this difficulty and pool.")
				if unlockedOnly {
					fmt.Fprintln(out, "Complete more lessons, or retry without --unlocked.")
				}
				return nil
			}

			fmt.Fprintf(out, "\n⚔️  Translate: %q (+%d XP · win streak %d)\n",
				quest.English, quest.XPReward, winStreak)
			placed := pickSentence(in, out, quest)
			if placed == nil {
				fmt.Fprintln(out, "Duel abandoned.")
				return nil
			}

			won := a.duel.CheckAnswer(quest, placed)
			state = a.progress.RecordDuel(ctx, state, won)
			if won {
				winStreak++
				xp := a.duel.XPForStreak(quest.XPReward, winStreak)
				state = a.progress.AddXP(ctx, state, xp)
				state = a.progress.UpdateStreak(ctx, state)
				fmt.Fprintf(out, "✨ Excellent! +%d XP (level %d, %d/%d)\n",
					xp, state.Level, state.XP, usecase.XPForLevel(state.Level))
			} else {
				winStreak = 0
				fmt.Fprintf(out, "Not quite — answer: %s (%s)\n",
					joinHanzi(quest.TargetOrder), joinPinyin(quest.TargetOrder))
			}

			answer := strings.ToLower(prompt(in, out, "Next challenge? [Y/n] "))
			if strings.HasPrefix(answer, "n") || answer == "q" {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duelCmd)

	duelCmd.Flags().String("difficulty", "", "easy, medium, or hard (default: any)")
	duelCmd.Flags().Bool("unlocked", false, "draw the word pool from unlocked cards only")
}
