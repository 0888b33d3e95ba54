package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abhisek/cryptogram/internal/achievements"
	"github.com/abhisek/cryptogram/internal/puzzle"
	"github.com/abhisek/cryptogram/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show puzzle statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		records, err := env.puzzles.All(ctx)
		if err != nil {
			return fmt.Errorf("load puzzles: %w", err)
		}
		s := achievements.ComputeStats(records, env.loc)

		started := lo.CountBy(records, func(r puzzle.Record) bool { return r.Started() })
		completed := lo.Filter(records, func(r puzzle.Record, _ int) bool { return r.Completed })
		var fastest time.Duration
		if len(completed) > 0 {
			fastest = lo.MinBy(completed, func(a, b puzzle.Record) bool { return a.Duration < b.Duration }).Duration
		}

		p := message.NewPrinter(language.English)
		var b strings.Builder
		w := &b
		p.Fprintf(w, "Puzzles started:     %d\n", started)
		p.Fprintf(w, "Puzzles completed:   %d\n", s.Completed)
		p.Fprintf(w, "Perfect scores:      %d\n", s.PerfectScores)
		p.Fprintf(w, "Longest streak:      %d day(s)\n", s.LongestStreak)
		if fastest > 0 {
			p.Fprintf(w, "Fastest solve:       %s\n", fastest.Round(time.Second))
		}
		p.Fprintf(w, "Clean solve:         %s\n", yesNo(s.CleanSolve))
		p.Fprintf(w, "Flight mode:         %s\n", yesNo(env.evaluator.FlightModeUnlocked()))
		p.Fprintf(w, "Current puzzle:      %d", env.prefs.CurrentID())

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render("Puzzle statistics"))
		fmt.Fprintln(out, theme.Card.Render(b.String()))
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
