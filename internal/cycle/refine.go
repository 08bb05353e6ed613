package cycle

import (
	"math"
	"sort"
	"time"
)

const (
	// refineWindow caps how many recent cycle lengths feed the average.
	refineWindow = 6
	// Gaps outside this range usually mean a missed or duplicated log.
	minPlausibleCycle = 15
	maxPlausibleCycle = 60
)

// RefineBaseline adjusts a profile baseline with logged period starts.
// The latest logged start replaces the last period date when it is more
// recent. With at least two plausible gaps between consecutive starts, the
// rounded mean of the most recent ones replaces the cycle length.
func RefineBaseline(b Baseline, periodStarts []time.Time) Baseline {
	starts := uniqueSortedDays(periodStarts)
	if len(starts) == 0 {
		return b
	}

	latest := starts[len(starts)-1]
	if b.LastPeriod.IsZero() || latest.After(Civil(b.LastPeriod)) {
		b.LastPeriod = latest
	}

	var gaps []int
	for i := 1; i < len(starts); i++ {
		gap := DaysBetween(starts[i-1], starts[i])
		if gap >= minPlausibleCycle && gap <= maxPlausibleCycle {
			gaps = append(gaps, gap)
		}
	}
	if len(gaps) < 2 {
		return b
	}
	if len(gaps) > refineWindow {
		gaps = gaps[len(gaps)-refineWindow:]
	}

	total := 0
	for _, g := range gaps {
		total += g
	}
	b.CycleLength = int(math.Round(float64(total) / float64(len(gaps))))
	return b
}

func uniqueSortedDays(days []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(days))
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		if d.IsZero() {
			continue
		}
		c := Civil(d)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
