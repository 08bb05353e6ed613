package domain

import (
	"github.com/flowise/cycle-tracker/internal/cycle"
)

// Snapshot is everything stored for one user.
type Snapshot struct {
	Profile        *Profile
	CycleEntries   []CycleEntry
	SymptomEntries []SymptomEntry
	AIInsights     []AIInsight
}

// SnapshotResponse is the response body of the store endpoint.
// @Description Complete stored state of a user.
type SnapshotResponse struct {
	// Null until the questionnaire has been submitted
	Profile        *ProfileResponse       `json:"profile"`
	CycleEntries   []CycleEntryResponse   `json:"cycle_entries"`
	SymptomEntries []SymptomEntryResponse `json:"symptom_entries"`
	AIInsights     []AIInsightResponse    `json:"ai_insights"`
}

func (s *Snapshot) ToResponse() SnapshotResponse {
	out := SnapshotResponse{
		CycleEntries:   make([]CycleEntryResponse, len(s.CycleEntries)),
		SymptomEntries: make([]SymptomEntryResponse, len(s.SymptomEntries)),
		AIInsights:     make([]AIInsightResponse, len(s.AIInsights)),
	}
	if s.Profile != nil {
		p := s.Profile.ToResponse()
		out.Profile = &p
	}
	for i := range s.CycleEntries {
		out.CycleEntries[i] = s.CycleEntries[i].ToResponse()
	}
	for i := range s.SymptomEntries {
		out.SymptomEntries[i] = s.SymptomEntries[i].ToResponse()
	}
	for i := range s.AIInsights {
		out.AIInsights[i] = s.AIInsights[i].ToResponse()
	}
	return out
}

// PeriodStarts returns the dates of all logged period_start entries.
func (s *Snapshot) PeriodStarts() []Date {
	var out []Date
	for _, e := range s.CycleEntries {
		if e.Type == CycleEntryPeriodStart {
			out = append(out, e.Date)
		}
	}
	return out
}

// BaselineSource selects what predictions are derived from.
type BaselineSource string

const (
	// SourceProfile uses the questionnaire averages as entered.
	SourceProfile BaselineSource = "profile"
	// SourceEntries refines the profile averages with logged period starts.
	SourceEntries BaselineSource = "entries"
)

// ParseBaselineSource maps a query value to a source, defaulting to profile.
func ParseBaselineSource(s string) (BaselineSource, error) {
	switch BaselineSource(s) {
	case "", SourceProfile:
		return SourceProfile, nil
	case SourceEntries:
		return SourceEntries, nil
	}
	return "", ErrInvalidInput
}

// CalendarResponse is the response body of the calendar endpoint.
// @Description Month grid with per-day predictions.
type CalendarResponse struct {
	// Month shown (YYYY-MM)
	Month string `json:"month" example:"2024-02"`
	// Source of the baseline used for predictions
	Source BaselineSource `json:"source" example:"profile"`
	// Whole weeks starting on Sunday
	Days []cycle.CalendarDay `json:"days"`
	// Phase of the user's today
	TodayPhase cycle.PhaseInfo `json:"today_phase"`
}

// DayResponse is the response body of the single-day endpoint.
// @Description Classification of one calendar date.
type DayResponse struct {
	Date string `json:"date" example:"2024-01-14"`
	cycle.DayClassification
	Phase    cycle.PhaseInfo `json:"phase"`
	Symptoms []string        `json:"symptoms"`
}

// TodaySymptom is a symptom logged today with its display severity.
// @Description Symptom logged today.
type TodaySymptom struct {
	Name     string   `json:"name" example:"cramps"`
	Severity Severity `json:"severity" example:"moderate" enums:"mild,moderate,severe"`
}

// DashboardResponse is the response body of the dashboard endpoint.
// @Description Dashboard summary of the current cycle.
type DashboardResponse struct {
	Today  string         `json:"today" example:"2024-01-10"`
	Source BaselineSource `json:"source" example:"profile"`
	cycle.Summary
	TodaySymptoms []TodaySymptom `json:"today_symptoms"`
}
