package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/cryptogram/internal/achievements"
	"github.com/abhisek/cryptogram/internal/puzzle"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a puzzle history export and re-check achievements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		records, err := puzzle.DecodeImport(f)
		if err != nil {
			return err
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		for _, rec := range records {
			if err := env.puzzles.Save(ctx, rec); err != nil {
				return err
			}
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Imported %d puzzle(s).\n", len(records))
		return evaluate(ctx, w, env, func(ctx context.Context) (achievements.Result, error) {
			return env.evaluator.Check(ctx)
		})
	},
}
