// Package cycle implements the calendar arithmetic behind period, fertile
// window and ovulation predictions. Every function is pure: the same
// baseline and date always produce the same result, so results can be
// memoized by the caller.
package cycle

import "time"

const (
	// DefaultCycleLength is used by summaries when no cycle length is known.
	DefaultCycleLength = 28
	// DefaultPeriodLength applies whenever the period length is unset.
	DefaultPeriodLength = 5
	// LutealPhaseDays is the fixed distance between ovulation and the next period.
	LutealPhaseDays = 14
	// FertileDaysBeforeOvulation is how many days before ovulation the fertile window opens.
	FertileDaysBeforeOvulation = 5
	// FertileDaysAfterOvulation is how many days after ovulation the fertile window stays open.
	FertileDaysAfterOvulation = 1
)

// Baseline is the minimal profile data predictions are derived from.
// A zero LastPeriod means the last period date is unknown.
type Baseline struct {
	LastPeriod   time.Time
	CycleLength  int
	PeriodLength int
}

// Known reports whether the baseline carries enough data to predict anything.
func (b Baseline) Known() bool {
	return !b.LastPeriod.IsZero() && b.CycleLength > 0
}

// EffectivePeriodLength returns the period length, falling back to the default when unset.
func (b Baseline) EffectivePeriodLength() int {
	if b.PeriodLength <= 0 {
		return DefaultPeriodLength
	}
	return b.PeriodLength
}

// OvulationDay is the cycle day on which ovulation is expected. It is not
// clamped: cycles of 14 days or less yield zero or negative values.
func (b Baseline) OvulationDay() int {
	return b.CycleLength - LutealPhaseDays
}

// DayClassification describes one calendar date relative to the cycle.
type DayClassification struct {
	CycleDay    int  `json:"cycle_day"`
	IsPeriod    bool `json:"is_period"`
	IsPredicted bool `json:"is_predicted"`
	IsFertile   bool `json:"is_fertile"`
	IsOvulation bool `json:"is_ovulation"`
}

// Civil strips the clock from t, keeping the calendar date as seen in t's
// own location, and returns it as midnight UTC.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from "from" to "to".
// The result is negative when "to" precedes "from".
func DaysBetween(from, to time.Time) int {
	return int(Civil(to).Sub(Civil(from)).Hours() / 24)
}

// CycleDay maps a day offset from the last period start into [1, cycleLength].
// Negative offsets wrap backwards into earlier cycles.
func CycleDay(daysSince, cycleLength int) int {
	if cycleLength <= 0 {
		return 0
	}
	return ((daysSince%cycleLength)+cycleLength)%cycleLength + 1
}

// ClassifyDay computes the period, fertility and ovulation flags for date.
// An unknown baseline yields the zero classification.
//
// Only the literal recorded start date is treated as an actual period day:
// every other day inside a period window, including the remaining days of
// the recorded period, is reported as predicted.
func ClassifyDay(date time.Time, b Baseline) DayClassification {
	if !b.Known() {
		return DayClassification{}
	}

	daysSince := DaysBetween(b.LastPeriod, date)
	day := CycleDay(daysSince, b.CycleLength)
	ovulationDay := b.OvulationDay()

	c := DayClassification{CycleDay: day}
	if day <= b.EffectivePeriodLength() {
		c.IsPeriod = true
		c.IsPredicted = daysSince > 0
	}
	if day >= ovulationDay-FertileDaysBeforeOvulation && day <= ovulationDay+FertileDaysAfterOvulation {
		c.IsFertile = true
	}
	if day == ovulationDay {
		c.IsOvulation = true
	}
	return c
}

// CycleStart returns the first day of the cycle that contains date.
func CycleStart(date time.Time, b Baseline) time.Time {
	if !b.Known() {
		return time.Time{}
	}
	day := CycleDay(DaysBetween(b.LastPeriod, date), b.CycleLength)
	return Civil(date).AddDate(0, 0, -(day - 1))
}
