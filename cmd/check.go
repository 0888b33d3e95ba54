package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/cryptogram/internal/achievements"
	"github.com/abhisek/cryptogram/internal/ui/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate the puzzle history and unlock earned achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		return evaluate(ctx, cmd.OutOrStdout(), env, func(ctx context.Context) (achievements.Result, error) {
			return env.evaluator.Check(ctx)
		})
	},
}

// evaluate runs an evaluator pass and prints the achievements that were not
// in the ledger before it.
func evaluate(ctx context.Context, w io.Writer, env *appEnv, pass func(context.Context) (achievements.Result, error)) error {
	before, err := unlockedSet(ctx, env)
	if err != nil {
		return err
	}

	res, passErr := pass(ctx)

	fresh := 0
	for _, a := range res.Unlocked {
		if before[a.ID()] {
			continue
		}
		ok, err := env.unlocks.IsUnlocked(ctx, a.ID())
		if err != nil {
			env.logger.WarnContext(ctx, "read unlock ledger failed", "achievement", a.ID(), "error", err)
			continue
		}
		if !ok {
			continue
		}
		fresh++
		fmt.Fprintf(w, "%s %s %s\n", theme.Unlocked.Render("Unlocked:"), a.Tier().Icon(), a.Name())
	}
	if fresh == 0 && passErr == nil {
		fmt.Fprintln(w, theme.Hint.Render("No new achievements."))
	}
	if passErr != nil {
		fmt.Fprintln(w, theme.Failure.Render("Some achievements could not be saved."))
		return fmt.Errorf("evaluate achievements: %w", passErr)
	}
	return nil
}

func unlockedSet(ctx context.Context, env *appEnv) (map[string]bool, error) {
	records, err := env.unlocks.Unlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("load unlocks: %w", err)
	}
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.AchievementID] = true
	}
	return set, nil
}
