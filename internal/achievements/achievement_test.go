package achievements

import (
	"strings"
	"testing"
)

func TestCatalogComplete(t *testing.T) {
	all := All()
	if len(all) != 14 {
		t.Fatalf("All() returned %d achievements, want 14", len(all))
	}

	seen := map[string]bool{}
	for _, a := range all {
		if rules[a] == nil {
			t.Errorf("%v has no rule", a)
		}
		id := a.ID()
		if !strings.HasPrefix(id, "achievement_") {
			t.Errorf("%v has unexpected ID %q", a, id)
		}
		if seen[id] {
			t.Errorf("duplicate ID %q", id)
		}
		seen[id] = true
		if a.Name() == "" || a.Description() == "" {
			t.Errorf("%v missing name or description", a)
		}
	}
}

func TestParse(t *testing.T) {
	for _, a := range All() {
		got, ok := Parse(a.ID())
		if !ok || got != a {
			t.Errorf("Parse(%q) = %v, %v; want %v", a.ID(), got, ok, a)
		}
	}
	if _, ok := Parse("achievement_unknown"); ok {
		t.Error("Parse of unknown ID should fail")
	}
}

func TestUnknownAchievementPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"ID", func() { _ = Achievement(99).ID() }},
		{"negative", func() { _ = Achievement(-1).Name() }},
		{"rule", func() { Achievement(achievementCount).met(facts{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if !strings.Contains(r.(string), "unknown achievement") {
					t.Errorf("panic = %v, want unknown achievement", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestString_Unknown(t *testing.T) {
	if got := Achievement(42).String(); got != "Achievement(42)" {
		t.Errorf("String() = %q", got)
	}
	if got := ZenMaster.String(); got != "achievement_zen_master" {
		t.Errorf("String() = %q", got)
	}
}

func TestTier_DisplayName(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierCommon, "Common"},
		{TierRare, "Rare"},
		{TierEpic, "Epic"},
		{TierLegendary, "Legendary"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tier.DisplayName(); got != tt.want {
			t.Errorf("Tier(%q).DisplayName() = %q, want %q", tt.tier, got, tt.want)
		}
	}
	if len(AllTiers()) != 4 {
		t.Errorf("AllTiers() = %v", AllTiers())
	}
}
