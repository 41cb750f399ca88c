package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const exportOutputKey = "backup.export.output"

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress as a JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		data, err := a.progress.Export(a.progress.Load(ctx))
		if err != nil {
			return err
		}

		outputPath := viper.GetString(exportOutputKey)
		if outputPath == "" {
			outputPath = fmt.Sprintf("mandarin-master-progress-%s.json", nowDate())
		}
		if outputPath == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		if err := os.WriteFile(outputPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Progress exported to %s\n", outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "backup file path (\"-\" for stdout)")
	bindFlagToViper(exportOutputKey, exportCmd.Flags().Lookup("output"))
}
