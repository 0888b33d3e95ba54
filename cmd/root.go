package cmd

import (
	"github.com/abhisek/cryptogram/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cryptogram",
	Short:         "Cryptogram achievements and preferences",
	Long:          "Cryptogram tracks puzzle history and unlocks achievements as you play.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CRYPTOGRAM_DB env var)")
	rootCmd.PersistentFlags().String("prefs", "", "Path to preferences file (overrides CRYPTOGRAM_PREFS env var)")
	rootCmd.PersistentFlags().String("tz", "", "Time zone whose calendar days count for streaks (overrides CRYPTOGRAM_TZ)")
	rootCmd.PersistentFlags().String("log-level", "", "debug|info|warn|error (overrides CRYPTOGRAM_LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("airplane", false, "Treat the device as being in airplane mode (overrides CRYPTOGRAM_AIRPLANE_MODE)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(puzzleCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CRYPTOGRAM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, fromEnv string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fromEnv != "" {
		return fromEnv, store.EnsureDir(fromEnv)
	}
	return store.DefaultDBPath()
}

// resolvePrefsPath mirrors resolveDBPath for the preferences file.
func resolvePrefsPath(cmd *cobra.Command, fromEnv string) (string, error) {
	if p, _ := cmd.Flags().GetString("prefs"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fromEnv != "" {
		return fromEnv, store.EnsureDir(fromEnv)
	}
	return store.DefaultPrefsPath()
}
