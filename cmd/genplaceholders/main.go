package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/raceday/internal/placeholders"
)

func main() {
	var dir string
	cmd := &cobra.Command{
		Use:          "genplaceholders",
		Short:        "Write placeholder graphics for raceday",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Raceday Placeholder Graphics Generator")
			fmt.Fprintln(out, "======================================")
			fmt.Fprintln(out)

			if err := placeholders.GenerateAndSave(dir); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Done! Placeholder graphics are ready to use.")
			fmt.Fprintf(out, "Run the game with --assets %s to see them.\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "out", "Assets", "directory to write the placeholder assets into")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
