package achievements

// Tier ranks how hard an achievement is to earn.
type Tier string

const (
	TierCommon    Tier = "common"
	TierRare      Tier = "rare"
	TierEpic      Tier = "epic"
	TierLegendary Tier = "legendary"
)

// tiers is ordered from easiest to hardest.
var tiers = []struct {
	tier  Tier
	label string
	icon  string
}{
	{TierCommon, "Common", "✦"},
	{TierRare, "Rare", "⚡"},
	{TierEpic, "Epic", "💎"},
	{TierLegendary, "Legendary", "🏆"},
}

// AllTiers returns every tier, easiest first. Listings group by it.
func AllTiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		out[i] = t.tier
	}
	return out
}

// DisplayName is the tier's heading in achievement listings. Unknown tiers
// fall back to the raw value.
func (t Tier) DisplayName() string {
	for _, ti := range tiers {
		if ti.tier == t {
			return ti.label
		}
	}
	return string(t)
}

// Icon prefixes unlock notices and tier headings.
func (t Tier) Icon() string {
	for _, ti := range tiers {
		if ti.tier == t {
			return ti.icon
		}
	}
	return "·"
}
