package achievements

import "fmt"

// Achievement identifies one of the fixed game achievements.
type Achievement int

const (
	BonedUp Achievement = iota
	Bookworm
	WhizKid
	NoBrainer
	FlightMode
	BeesKnees
	CreamOfTheCrop
	JackOfAllTrades
	HopeYoureComfortable
	HopeYoureReallyComfortable
	ZenMaster
	TwoDayStreak
	ThreeDayStreak
	FiveDayStreak

	achievementCount
)

type info struct {
	id          string
	name        string
	description string
	tier        Tier
}

// catalog is indexed by Achievement; its length is fixed by achievementCount,
// so a constant outside the table fails to compile.
var catalog = [achievementCount]info{
	BonedUp: {
		id:          "achievement_boned_up",
		name:        "Boned Up",
		description: "Complete your first puzzle to figure out how cryptograms work by trial and error.",
		tier:        TierCommon,
	},
	Bookworm: {
		id:          "achievement_bookworm",
		name:        "Bookworm",
		description: "Complete ten puzzles.",
		tier:        TierRare,
	},
	WhizKid: {
		id:          "achievement_whizkid",
		name:        "Whiz Kid",
		description: "Complete twenty puzzles.",
		tier:        TierEpic,
	},
	NoBrainer: {
		id:          "achievement_nobrainer",
		name:        "No-Brainer",
		description: "Breeze through a puzzle in 45 seconds or less.",
		tier:        TierEpic,
	},
	FlightMode: {
		id:          "achievement_flight_mode",
		name:        "Flight Mode",
		description: "Solve a puzzle in airplane mode.",
		tier:        TierRare,
	},
	BeesKnees: {
		id:          "achievement_its_the_bees_knees",
		name:        "It's the Bee's Knees",
		description: "Score a perfect 100%.",
		tier:        TierCommon,
	},
	CreamOfTheCrop: {
		id:          "achievement_cream_of_the_crop",
		name:        "Cream of the Crop",
		description: "Secure ten perfect scores.",
		tier:        TierEpic,
	},
	JackOfAllTrades: {
		id:          "achievement_jack_of_all_trades",
		name:        "Jack of All Trades",
		description: "Solve a puzzle with no reveals or excess inputs, and without using the hint bar.",
		tier:        TierRare,
	},
	HopeYoureComfortable: {
		id:          "achievement_hope_youre_comfortable",
		name:        "Hope You're Comfortable",
		description: "Complete five puzzles in ten minutes.",
		tier:        TierRare,
	},
	HopeYoureReallyComfortable: {
		id:          "achievement_hope_youre_really_comfortable",
		name:        "Hope You're Really Comfortable",
		description: "Complete ten puzzles in thirty minutes.",
		tier:        TierEpic,
	},
	ZenMaster: {
		id:          "achievement_zen_master",
		name:        "Zen Master",
		description: "Complete twenty puzzles in an hour.",
		tier:        TierLegendary,
	},
	TwoDayStreak: {
		id:          "achievement_twoday_streak",
		name:        "Two-Day Streak",
		description: "Play for two consecutive days.",
		tier:        TierCommon,
	},
	ThreeDayStreak: {
		id:          "achievement_threeday_streak",
		name:        "Three-Day Streak",
		description: "Play for three consecutive days.",
		tier:        TierRare,
	},
	FiveDayStreak: {
		id:          "achievement_fiveday_streak",
		name:        "Five-Day Streak",
		description: "Play for five consecutive days.",
		tier:        TierLegendary,
	},
}

// All returns every achievement in evaluation order.
func All() []Achievement {
	out := make([]Achievement, achievementCount)
	for i := range out {
		out[i] = Achievement(i)
	}
	return out
}

// Parse maps an achievements-service ID back to its Achievement.
func Parse(id string) (Achievement, bool) {
	for i, c := range catalog {
		if c.id == id {
			return Achievement(i), true
		}
	}
	return 0, false
}

// lookup panics for values outside the catalog; the list is exhaustive.
func (a Achievement) lookup() info {
	if a < 0 || a >= achievementCount || catalog[a].id == "" {
		panic(fmt.Sprintf("unknown achievement %d", int(a)))
	}
	return catalog[a]
}

// ID returns the opaque identifier sent to the achievements service.
func (a Achievement) ID() string { return a.lookup().id }

// Name returns the display name.
func (a Achievement) Name() string { return a.lookup().name }

// Description explains how the achievement is earned.
func (a Achievement) Description() string { return a.lookup().description }

// Tier returns the difficulty tier.
func (a Achievement) Tier() Tier { return a.lookup().tier }

func (a Achievement) String() string {
	if a < 0 || a >= achievementCount || catalog[a].id == "" {
		return fmt.Sprintf("Achievement(%d)", int(a))
	}
	return catalog[a].id
}
