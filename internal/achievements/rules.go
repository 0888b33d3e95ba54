package achievements

import "time"

// facts is everything a rule can look at.
type facts struct {
	Stats
	FlightMode bool
}

type rule func(f facts) bool

func series(n int, window time.Duration) rule {
	return func(f facts) bool {
		return HasSeries(f.Timeline, n, window)
	}
}

// rules is indexed by Achievement. A missing entry is a programming error and
// panics at evaluation time.
var rules = [achievementCount]rule{
	BonedUp:                    func(f facts) bool { return f.Completed >= 1 },
	Bookworm:                   func(f facts) bool { return f.Completed >= 10 },
	WhizKid:                    func(f facts) bool { return f.Completed >= 20 },
	FlightMode:                 func(f facts) bool { return f.FlightMode },
	BeesKnees:                  func(f facts) bool { return f.PerfectScores >= 1 },
	CreamOfTheCrop:             func(f facts) bool { return f.PerfectScores >= 10 },
	JackOfAllTrades:            func(f facts) bool { return f.CleanSolve },
	NoBrainer:                  func(f facts) bool { return f.NoBrainer },
	HopeYoureComfortable:       series(5, 10*time.Minute),
	HopeYoureReallyComfortable: series(10, 30*time.Minute),
	ZenMaster:                  series(20, time.Hour),
	TwoDayStreak:               func(f facts) bool { return f.LongestStreak >= 2 },
	ThreeDayStreak:             func(f facts) bool { return f.LongestStreak >= 3 },
	FiveDayStreak:              func(f facts) bool { return f.LongestStreak >= 5 },
}

func (a Achievement) met(f facts) bool {
	if a < 0 || a >= achievementCount || rules[a] == nil {
		panic("unknown achievement " + a.String())
	}
	return rules[a](f)
}
