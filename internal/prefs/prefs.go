// Package prefs holds typed accessors for the app's persisted preferences.
package prefs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/samber/lo"

	"github.com/abhisek/cryptogram/internal/kv"
)

// Preference keys.
const (
	KeyCurrentID             = "current_puzzle_index"
	KeyProgress              = "puzzle_progress"
	KeyRandomize             = "randomize"
	KeyOnboarding            = "onboarding"
	KeyShowHints             = "show_hints"
	KeyStartedInAirplaneMode = "started_in_airplane_mode"
	KeyUnlockedFlightMode    = "unlocked_flight_mode"
)

// Keys lists every preference key this package manages.
func Keys() []string {
	return []string{
		KeyCurrentID,
		KeyProgress,
		KeyRandomize,
		KeyOnboarding,
		KeyShowHints,
		KeyStartedInAirplaneMode,
		KeyUnlockedFlightMode,
	}
}

// Prefs reads and writes preferences. Getters never fail: a missing or
// unreadable value yields the default.
type Prefs struct {
	store  kv.Store
	logger *slog.Logger
}

// New creates Prefs over store. A nil logger discards decode warnings.
func New(store kv.Store, logger *slog.Logger) *Prefs {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Prefs{store: store, logger: logger}
}

func (p *Prefs) CurrentID() int            { return p.getInt(KeyCurrentID, -1) }
func (p *Prefs) SetCurrentID(id int) error { return p.putInt(KeyCurrentID, id) }

// Progress returns the serialized per-puzzle progress entries in insertion
// order, or nil if none were saved.
func (p *Prefs) Progress() []string {
	raw, ok := p.get(KeyProgress)
	if !ok {
		return nil
	}
	var set []string
	if err := json.Unmarshal(raw, &set); err != nil {
		p.warn(KeyProgress, err)
		return nil
	}
	return set
}

// SetProgress stores the progress entries as an ordered set; duplicates
// after the first occurrence are dropped.
func (p *Prefs) SetProgress(set []string) error {
	if set == nil {
		return p.store.Delete(KeyProgress)
	}
	raw, err := json.Marshal(lo.Uniq(set))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", KeyProgress, err)
	}
	return p.store.Put(KeyProgress, raw)
}

func (p *Prefs) Randomize() bool                   { return p.getBool(KeyRandomize, false) }
func (p *Prefs) SetRandomize(randomize bool) error { return p.putBool(KeyRandomize, randomize) }

func (p *Prefs) Onboarding() int              { return p.getInt(KeyOnboarding, -1) }
func (p *Prefs) SetOnboarding(page int) error { return p.putInt(KeyOnboarding, page) }

func (p *Prefs) ShowHints() bool              { return p.getBool(KeyShowHints, false) }
func (p *Prefs) SetShowHints(show bool) error { return p.putBool(KeyShowHints, show) }

func (p *Prefs) StartedInAirplaneMode() bool { return p.getBool(KeyStartedInAirplaneMode, false) }
func (p *Prefs) SetStartedInAirplaneMode(on bool) error {
	return p.putBool(KeyStartedInAirplaneMode, on)
}

func (p *Prefs) UnlockedFlightMode() bool { return p.getBool(KeyUnlockedFlightMode, false) }
func (p *Prefs) SetUnlockedFlightMode(on bool) error {
	return p.putBool(KeyUnlockedFlightMode, on)
}

// Reset deletes every managed key.
func (p *Prefs) Reset() error {
	for _, k := range Keys() {
		if err := p.store.Delete(k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return nil
}

func (p *Prefs) get(key string) ([]byte, bool) {
	raw, ok, err := p.store.Get(key)
	if err != nil {
		p.warn(key, err)
		return nil, false
	}
	return raw, ok
}

func (p *Prefs) getInt(key string, def int) int {
	raw, ok := p.get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		p.warn(key, err)
		return def
	}
	return v
}

func (p *Prefs) putInt(key string, v int) error {
	return p.store.Put(key, []byte(strconv.Itoa(v)))
}

func (p *Prefs) getBool(key string, def bool) bool {
	raw, ok := p.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(string(raw))
	if err != nil {
		p.warn(key, err)
		return def
	}
	return v
}

func (p *Prefs) putBool(key string, v bool) error {
	return p.store.Put(key, []byte(strconv.FormatBool(v)))
}

func (p *Prefs) warn(key string, err error) {
	p.logger.Warn("read preference failed, using default", "key", key, "error", err)
}
