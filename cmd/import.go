package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eslsoft/mandarin-master/internal/entity"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import progress from a JSON backup",
	Long:  "Import a progress backup from a file, or from stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		state, err := a.progress.Import(cmd.Context(), data)
		if errors.Is(err, entity.ErrInvalidBackup) {
			// User-facing validation failure; the stored record is untouched.
			fmt.Fprintln(cmd.ErrOrStderr(), "Invalid backup: expected a JSON progress record with numeric xp and level.")
			return err
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Progress imported: level %d, %d XP, %d cards.\n",
			state.Level, state.XP, len(state.UnlockedCards))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
