package achievements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/abhisek/cryptogram/internal/puzzle"
)

// StateStore persists the evaluator's flight-mode tracking between runs.
type StateStore interface {
	StartedInAirplaneMode() bool
	SetStartedInAirplaneMode(on bool) error
	UnlockedFlightMode() bool
	SetUnlockedFlightMode(on bool) error
}

// Options configures an Evaluator.
type Options struct {
	Puzzles puzzle.Provider

	// Unlocker receives one call per satisfied achievement. Nil evaluates
	// without unlocking anything.
	Unlocker Unlocker

	// State is read once at construction. Nil keeps state in memory only.
	State StateStore

	// AirplaneMode reports whether the device is offline. Nil means never.
	AirplaneMode func() bool

	// Location decides calendar days for streaks. Default: time.Local.
	Location *time.Location

	Logger *slog.Logger
}

// Result is the outcome of one evaluation pass.
type Result struct {
	Unlocked []Achievement
	Stats    Stats
}

// Has reports whether a was unlocked in this pass.
func (r Result) Has(a Achievement) bool {
	return slices.Contains(r.Unlocked, a)
}

// Evaluator scores the puzzle history and unlocks achievements.
type Evaluator struct {
	puzzles      puzzle.Provider
	unlocker     Unlocker
	state        StateStore
	airplaneMode func() bool
	loc          *time.Location
	logger       *slog.Logger

	startedInAirplaneMode bool
	unlockedFlightMode    bool
}

// NewEvaluator creates an Evaluator and loads its persisted state.
func NewEvaluator(opts Options) *Evaluator {
	e := &Evaluator{
		puzzles:      opts.Puzzles,
		unlocker:     opts.Unlocker,
		state:        opts.State,
		airplaneMode: opts.AirplaneMode,
		loc:          opts.Location,
		logger:       opts.Logger,
	}
	if e.puzzles == nil {
		e.puzzles = puzzle.StaticProvider(nil)
	}
	if e.airplaneMode == nil {
		e.airplaneMode = func() bool { return false }
	}
	if e.loc == nil {
		e.loc = time.Local
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	if e.state != nil {
		e.startedInAirplaneMode = e.state.StartedInAirplaneMode()
		e.unlockedFlightMode = e.state.UnlockedFlightMode()
	}
	return e
}

// FlightModeUnlocked reports whether a puzzle has been solved entirely in
// airplane mode.
func (e *Evaluator) FlightModeUnlocked() bool {
	return e.unlockedFlightMode
}

// OnPuzzleStart records whether the puzzle was started in airplane mode.
func (e *Evaluator) OnPuzzleStart(ctx context.Context) error {
	e.startedInAirplaneMode = e.airplaneMode()
	e.logger.DebugContext(ctx, "puzzle started", "airplane_mode", e.startedInAirplaneMode)
	return e.save()
}

// OnPuzzleCompleted updates flight-mode tracking and runs Check.
func (e *Evaluator) OnPuzzleCompleted(ctx context.Context) (Result, error) {
	if e.startedInAirplaneMode && e.airplaneMode() {
		e.unlockedFlightMode = true
	}
	if err := e.save(); err != nil {
		return Result{}, err
	}
	return e.Check(ctx)
}

// Check evaluates every achievement against the full puzzle history and
// unlocks the ones whose condition holds. Unlock failures do not stop the
// pass; they are returned joined together with the complete Result.
func (e *Evaluator) Check(ctx context.Context) (Result, error) {
	records, err := e.puzzles.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load puzzles: %w", err)
	}

	res := Result{Stats: ComputeStats(records, e.loc)}
	f := facts{Stats: res.Stats, FlightMode: e.unlockedFlightMode}

	var errs []error
	for _, a := range All() {
		if !a.met(f) {
			continue
		}
		res.Unlocked = append(res.Unlocked, a)
		if e.unlocker == nil {
			continue
		}
		if err := e.unlocker.Unlock(ctx, a.ID()); err != nil {
			errs = append(errs, fmt.Errorf("unlock %s: %w", a.ID(), err))
		}
	}

	e.logger.DebugContext(ctx, "achievements checked",
		"puzzles", len(records),
		"completed", res.Stats.Completed,
		"longest_streak", res.Stats.LongestStreak,
		"unlocked", len(res.Unlocked))

	return res, errors.Join(errs...)
}

func (e *Evaluator) save() error {
	if e.state == nil {
		return nil
	}
	if err := e.state.SetStartedInAirplaneMode(e.startedInAirplaneMode); err != nil {
		return fmt.Errorf("save airplane mode state: %w", err)
	}
	if err := e.state.SetUnlockedFlightMode(e.unlockedFlightMode); err != nil {
		return fmt.Errorf("save flight mode state: %w", err)
	}
	return nil
}
