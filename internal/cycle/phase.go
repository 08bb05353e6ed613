package cycle

import "time"

// PhaseName identifies one of the four menstrual cycle phases.
type PhaseName string

const (
	PhaseMenstrual  PhaseName = "Menstrual"
	PhaseFollicular PhaseName = "Follicular"
	PhaseOvulation  PhaseName = "Ovulation"
	PhaseLuteal     PhaseName = "Luteal"
	PhaseUnknown    PhaseName = "Unknown"
)

var phaseDescriptions = map[PhaseName]string{
	PhaseMenstrual:  "Your period is active. Focus on rest and self-care.",
	PhaseFollicular: "Energy levels may be increasing and mood stabilizing.",
	PhaseOvulation:  "Peak fertility window. You may feel more energetic.",
	PhaseLuteal:     "PMS symptoms may occur. Focus on stress management.",
	PhaseUnknown:    "Complete your profile to see cycle phases",
}

// PhaseInfo is the phase a date falls into and how far through it the date is.
type PhaseInfo struct {
	Name        PhaseName `json:"name"`
	Progress    float64   `json:"progress"`
	Description string    `json:"description"`
	CycleDay    int       `json:"cycle_day"`
}

// Phase buckets the cycle day of date into a named phase.
//
// Boundaries:
//
//	Menstrual   1 .. periodLength
//	Follicular  periodLength+1 .. ovulationDay-1
//	Ovulation   ovulationDay .. ovulationDay+1
//	Luteal      ovulationDay+2 .. cycleLength
//
// Earlier buckets win when ranges overlap on very short cycles. Progress is
// a linear interpolation across the bucket and stays within [0, 100].
func Phase(date time.Time, b Baseline) PhaseInfo {
	if !b.Known() {
		return PhaseInfo{Name: PhaseUnknown, Description: phaseDescriptions[PhaseUnknown]}
	}

	day := CycleDay(DaysBetween(b.LastPeriod, date), b.CycleLength)
	periodLength := b.EffectivePeriodLength()
	ovulationDay := b.OvulationDay()

	var (
		name     PhaseName
		progress float64
	)
	switch {
	case day <= periodLength:
		name = PhaseMenstrual
		progress = ratio(day, periodLength)
	case day < ovulationDay:
		name = PhaseFollicular
		progress = ratio(day-periodLength, ovulationDay-periodLength)
	case day <= ovulationDay+FertileDaysAfterOvulation:
		name = PhaseOvulation
		progress = 100
	default:
		name = PhaseLuteal
		progress = ratio(day-ovulationDay-1, b.CycleLength-ovulationDay-1)
	}

	return PhaseInfo{
		Name:        name,
		Progress:    progress,
		Description: phaseDescriptions[name],
		CycleDay:    day,
	}
}

// ratio returns part/whole as a percentage clamped to [0, 100]; a
// non-positive whole yields 0.
func ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	p := float64(part) / float64(whole) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
