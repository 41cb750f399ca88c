package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/eslsoft/mandarin-master/internal/catalog"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Show the lesson roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		state := a.progress.Load(cmd.Context())
		out := cmd.OutOrStdout()

		for _, unit := range catalog.Units() {
			fmt.Fprintf(out, "\n%s — %s\n", unit.Name, unit.Description)
			for _, lesson := range unit.Lessons {
				marker := "  "
				switch {
				case lo.Contains(state.CompletedLessons, lesson.ID):
					marker = "✅"
				case lesson.ID == state.CurrentLessonID:
					marker = "▶️"
				}
				fmt.Fprintf(out, "  %s %s: %s (%d words)\n", marker, lesson.ID, lesson.Name, len(lesson.NewWords))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
}
