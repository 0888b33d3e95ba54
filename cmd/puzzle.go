package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/cryptogram/internal/achievements"
	"github.com/abhisek/cryptogram/internal/puzzle"
	"github.com/abhisek/cryptogram/internal/store"
)

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Record puzzle progress",
}

var puzzleStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Record that a puzzle was started",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePuzzleID(args[0])
		if err != nil {
			return err
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		if err := env.puzzles.MarkStarted(ctx, id, time.Now()); err != nil {
			return err
		}
		if err := env.prefs.SetCurrentID(id); err != nil {
			warn(cmd, "save current puzzle: %v", err)
		}
		if err := env.evaluator.OnPuzzleStart(ctx); err != nil {
			warn(cmd, "%v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Puzzle %d started.\n", id)
		return nil
	},
}

var puzzleCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Record a finished puzzle and unlock any earned achievements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePuzzleID(args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		score, _ := flags.GetFloat64("score")
		excess, _ := flags.GetInt("excess")
		reveals, _ := flags.GetInt("reveals")
		hints, _ := flags.GetBool("hints")
		duration, _ := flags.GetDuration("duration")

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		rec, err := env.puzzles.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("puzzle %d was never started", id)
		}
		if err != nil {
			return err
		}
		duration, err = solveDuration(rec, duration, time.Now())
		if err != nil {
			return err
		}

		err = env.puzzles.MarkCompleted(ctx, id, puzzle.Result{
			Score:       score,
			ExcessCount: excess,
			Reveals:     reveals,
			HadHints:    hints,
			Duration:    duration,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Puzzle %d completed in %s.\n", id, duration.Round(time.Second))
		return evaluate(ctx, w, env, func(ctx context.Context) (achievements.Result, error) {
			return env.evaluator.OnPuzzleCompleted(ctx)
		})
	},
}

var puzzleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded puzzles",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		records, err := env.puzzles.All(cmd.Context())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(w, "No puzzles recorded.")
			return nil
		}

		fmt.Fprintf(w, "%-5s  %-16s  %-16s  %-9s  %-5s  %-6s  %-7s  %s\n",
			"ID", "Started", "Finished", "Duration", "Score", "Excess", "Reveals", "Hints")
		fmt.Fprintln(w, strings.Repeat("─", 86))
		for _, r := range records {
			started, finished, duration := "-", "-", "-"
			if r.Started() {
				started = r.StartTime.In(env.loc).Format("2006-01-02 15:04")
			}
			if end := r.Finish(); !end.IsZero() {
				finished = end.In(env.loc).Format("2006-01-02 15:04")
			}
			if r.Completed {
				duration = r.Duration.Round(time.Second).String()
			}
			fmt.Fprintf(w, "%-5d  %-16s  %-16s  %-9s  %5.0f%%  %-6d  %-7d  %v\n",
				r.ID, started, finished, duration, r.Score*100, r.ExcessCount, r.Reveals, r.HadHints)
		}
		return nil
	},
}

// solveDuration picks the duration to record for rec. An explicit flag value
// wins; otherwise a completed puzzle keeps its stored duration and a started
// one is timed from its start.
func solveDuration(rec puzzle.Record, flag time.Duration, now time.Time) (time.Duration, error) {
	switch {
	case flag < 0:
		return 0, fmt.Errorf("--duration must not be negative, got %s", flag)
	case flag > 0:
		return flag, nil
	case rec.Completed:
		return rec.Duration, nil
	case !rec.Started():
		return 0, fmt.Errorf("puzzle %d has no start time; pass --duration", rec.ID)
	}
	d := now.Sub(rec.StartTime)
	if d < 0 {
		return 0, fmt.Errorf("puzzle %d starts in the future (%s)", rec.ID, rec.StartTime.Format(time.RFC3339))
	}
	return d, nil
}

func parsePuzzleID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid puzzle ID %q", s)
	}
	return id, nil
}

func init() {
	puzzleCompleteCmd.Flags().Float64("score", 1, "Score between 0 and 1")
	puzzleCompleteCmd.Flags().Int("excess", 0, "Number of excess inputs")
	puzzleCompleteCmd.Flags().Int("reveals", 0, "Number of revealed letters")
	puzzleCompleteCmd.Flags().Bool("hints", false, "Whether the hint bar was used")
	puzzleCompleteCmd.Flags().Duration("duration", 0, "Solve time (default: time since start)")

	puzzleCmd.AddCommand(puzzleStartCmd)
	puzzleCmd.AddCommand(puzzleCompleteCmd)
	puzzleCmd.AddCommand(puzzleListCmd)
}
