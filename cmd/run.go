package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/cryptogram/internal/achievements"
	"github.com/abhisek/cryptogram/internal/config"
	"github.com/abhisek/cryptogram/internal/kv"
	"github.com/abhisek/cryptogram/internal/logging"
	"github.com/abhisek/cryptogram/internal/prefs"
	"github.com/abhisek/cryptogram/internal/store"
)

// appEnv bundles the opened stores and the evaluator for one command run.
type appEnv struct {
	logger    *slog.Logger
	loc       *time.Location
	store     *store.Store
	kv        *kv.Bolt
	prefs     *prefs.Prefs
	puzzles   store.PuzzleRepo
	unlocks   store.UnlockRepo
	evaluator *achievements.Evaluator
}

// openEnv loads configuration, opens both stores and builds the evaluator.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	prefsPath, err := resolvePrefsPath(cmd, cfg.PrefsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve prefs path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	kvStore, err := kv.Open(prefsPath)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("open prefs: %w", err)
	}

	p := prefs.New(kvStore, logger)
	puzzles := st.PuzzleRepo()
	unlocks := st.UnlockRepo()
	airplane := cfg.AirplaneMode

	env := &appEnv{
		logger:  logger,
		loc:     loc,
		store:   st,
		kv:      kvStore,
		prefs:   p,
		puzzles: puzzles,
		unlocks: unlocks,
		evaluator: achievements.NewEvaluator(achievements.Options{
			Puzzles:      puzzles,
			Unlocker:     achievements.WithLogging(unlocks, logger),
			State:        p,
			AirplaneMode: func() bool { return airplane },
			Location:     loc,
			Logger:       logger,
		}),
	}
	logger.Debug("environment opened", "db", dbPath, "prefs", prefsPath, "tz", loc.String())
	return env, nil
}

func (e *appEnv) Close() error {
	return errors.Join(e.kv.Close(), e.store.Close())
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("tz"); v != "" {
		cfg.TimeZone = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if flags.Changed("airplane") {
		cfg.AirplaneMode, _ = flags.GetBool("airplane")
	}
}

// warn prints a non-fatal problem to stderr.
func warn(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: "+format+"\n", args...)
}
