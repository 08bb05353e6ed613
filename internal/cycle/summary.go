package cycle

import "time"

// UpcomingPeriodCount is how many future period windows a summary lists.
const UpcomingPeriodCount = 3

// Window is an inclusive range of calendar dates.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FertileWindow is a predicted fertile window and the ovulation date inside it.
type FertileWindow struct {
	Window
	Ovulation string `json:"ovulation"`
}

// Summary is the dashboard view of where today falls in the cycle.
type Summary struct {
	CurrentDay          int            `json:"current_day"`
	CycleLength         int            `json:"cycle_length"`
	PeriodLength        int            `json:"period_length"`
	DaysUntilNextPeriod int            `json:"days_until_next_period"`
	CurrentCycleStart   string         `json:"current_cycle_start,omitempty"`
	NextPeriodDate      string         `json:"next_period_date,omitempty"`
	Phase               PhaseInfo      `json:"phase"`
	UpcomingPeriods     []Window       `json:"upcoming_periods"`
	NextFertileWindow   *FertileWindow `json:"next_fertile_window,omitempty"`
}

// Summarize builds the dashboard summary for today. An unknown baseline
// produces day 0 with default lengths and an Unknown phase.
func Summarize(today time.Time, b Baseline) Summary {
	if !b.Known() {
		return Summary{
			CycleLength:     DefaultCycleLength,
			PeriodLength:    DefaultPeriodLength,
			Phase:           Phase(today, b),
			UpcomingPeriods: []Window{},
		}
	}

	today = Civil(today)
	periodLength := b.EffectivePeriodLength()
	start := CycleStart(today, b)
	day := DaysBetween(start, today) + 1
	next := start.AddDate(0, 0, b.CycleLength)

	upcoming := make([]Window, 0, UpcomingPeriodCount)
	for i := 0; i < UpcomingPeriodCount; i++ {
		s := next.AddDate(0, 0, i*b.CycleLength)
		upcoming = append(upcoming, Window{
			Start: s.Format(DateLayout),
			End:   s.AddDate(0, 0, periodLength-1).Format(DateLayout),
		})
	}

	return Summary{
		CurrentDay:          day,
		CycleLength:         b.CycleLength,
		PeriodLength:        periodLength,
		DaysUntilNextPeriod: b.CycleLength - day + 1,
		CurrentCycleStart:   start.Format(DateLayout),
		NextPeriodDate:      next.Format(DateLayout),
		Phase:               Phase(today, b),
		UpcomingPeriods:     upcoming,
		NextFertileWindow:   nextFertileWindow(today, start, b),
	}
}

// nextFertileWindow returns the first fertile window, starting with the one
// of the current cycle, that has not fully passed by today.
func nextFertileWindow(today, cycleStart time.Time, b Baseline) *FertileWindow {
	ovulationOffset := b.OvulationDay() - 1
	for cs := cycleStart; ; cs = cs.AddDate(0, 0, b.CycleLength) {
		ovulation := cs.AddDate(0, 0, ovulationOffset)
		end := ovulation.AddDate(0, 0, FertileDaysAfterOvulation)
		if end.Before(today) {
			continue
		}
		return &FertileWindow{
			Window: Window{
				Start: ovulation.AddDate(0, 0, -FertileDaysBeforeOvulation).Format(DateLayout),
				End:   end.Format(DateLayout),
			},
			Ovulation: ovulation.Format(DateLayout),
		}
	}
}
