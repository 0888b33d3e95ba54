package cmd

import (
	"fmt"
	"image/color"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/cryptogram/internal/achievements"
	"github.com/abhisek/cryptogram/internal/ui/theme"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List all achievements and which ones are unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		records, err := env.unlocks.Unlocked(ctx)
		if err != nil {
			return fmt.Errorf("load unlocks: %w", err)
		}
		unlockedAt := make(map[string]string, len(records))
		for _, r := range records {
			if _, ok := achievements.Parse(r.AchievementID); !ok {
				warn(cmd, "ignoring unknown achievement %q in ledger", r.AchievementID)
				continue
			}
			unlockedAt[r.AchievementID] = r.UnlockedAt.In(env.loc).Format("2006-01-02 15:04")
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("Achievements (%d/%d)", len(unlockedAt), len(achievements.All()))))
		fmt.Fprintln(w)

		printCatalog(w, unlockedAt)
		return nil
	},
}

// printCatalog lists every achievement grouped by tier, lowest tier first.
// unlockedAt maps unlocked achievement IDs to a display timestamp.
func printCatalog(w io.Writer, unlockedAt map[string]string) {
	for _, tier := range achievements.AllTiers() {
		group := lo.Filter(achievements.All(), func(a achievements.Achievement, _ int) bool {
			return a.Tier() == tier
		})
		if len(group) == 0 {
			continue
		}
		header := lipgloss.NewStyle().Bold(true).Foreground(tierColor(tier))
		fmt.Fprintln(w, header.Render(fmt.Sprintf("%s %s", tier.Icon(), tier.DisplayName())))

		for _, a := range group {
			if at, ok := unlockedAt[a.ID()]; ok {
				fmt.Fprintf(w, "  %s %s  %s\n",
					theme.Unlocked.Render("✓"), theme.Body.Render(a.Name()), theme.Hint.Render(at))
			} else {
				fmt.Fprintf(w, "  %s %s\n", theme.Locked.Render("·"), theme.Locked.Render(a.Name()))
			}
			fmt.Fprintf(w, "      %s\n", theme.Subtitle.Render(a.Description()))
		}
		fmt.Fprintln(w)
	}
}

func tierColor(t achievements.Tier) color.Color {
	switch t {
	case achievements.TierCommon:
		return theme.Text
	case achievements.TierRare:
		return theme.Secondary
	case achievements.TierEpic:
		return theme.Primary
	case achievements.TierLegendary:
		return theme.Accent
	default:
		return theme.Text
	}
}
