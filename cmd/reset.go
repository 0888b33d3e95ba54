package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear unlocked achievements and preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, _ := cmd.Flags().GetBool("history")

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		if err := env.unlocks.Reset(ctx); err != nil {
			return err
		}
		if err := env.prefs.Reset(); err != nil {
			return fmt.Errorf("reset prefs: %w", err)
		}
		if history {
			if err := env.puzzles.DeleteAll(ctx); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Achievements and preferences cleared.")
		if history {
			fmt.Fprintln(cmd.OutOrStdout(), "Puzzle history cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("history", false, "Also delete recorded puzzle history")
}
