package cycle

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date    string `json:"date"`
	InMonth bool   `json:"in_month"`
	IsToday bool   `json:"is_today"`
	DayClassification
	Symptoms []string `json:"symptoms"`
}

// MonthGrid lays out the month containing monthStart as whole weeks starting
// on Sunday. Days borrowed from the neighbouring months are placeholders:
// they carry no classification, no symptoms and are never "today".
// symptoms maps a DateLayout-formatted date to the labels logged that day.
func MonthGrid(monthStart time.Time, b Baseline, today time.Time, symptoms map[string][]string) []CalendarDay {
	first := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))
	todayKey := Civil(today).Format(DateLayout)

	days := make([]CalendarDay, 0, DaysBetween(gridStart, gridEnd)+1)
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		if d.Month() != first.Month() {
			days = append(days, CalendarDay{Date: key, Symptoms: []string{}})
			continue
		}

		daySymptoms := symptoms[key]
		if daySymptoms == nil {
			daySymptoms = []string{}
		}
		days = append(days, CalendarDay{
			Date:              key,
			InMonth:           true,
			IsToday:           key == todayKey,
			DayClassification: ClassifyDay(d, b),
			Symptoms:          daySymptoms,
		})
	}
	return days
}
