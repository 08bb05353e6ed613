package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CycleEntryType is the kind of cycle event a user logged.
// @Description Logged cycle event kind.
type CycleEntryType string

const (
	CycleEntryPeriodStart   CycleEntryType = "period_start"
	CycleEntryPeriodEnd     CycleEntryType = "period_end"
	CycleEntryOvulation     CycleEntryType = "ovulation"
	CycleEntryFertileWindow CycleEntryType = "fertile_window"
)

// FlowIntensity is the optional flow level of a period entry.
type FlowIntensity string

const (
	FlowLight  FlowIntensity = "light"
	FlowMedium FlowIntensity = "medium"
	FlowHeavy  FlowIntensity = "heavy"
)

// CycleEntry is one append-only cycle log record.
type CycleEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_cycle_entries_user_created" json:"user_id"`
	Date      Date           `gorm:"not null" json:"date"`
	Type      CycleEntryType `gorm:"type:varchar(20);not null" json:"type"`
	Flow      *FlowIntensity `gorm:"type:varchar(10)" json:"flow,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_cycle_entries_user_created" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CycleEntry) TableName() string {
	return "cycle_entries"
}

// CreateCycleEntryRequest is the request body for logging a cycle event.
// @Description Request payload for logging a cycle event.
type CreateCycleEntryRequest struct {
	// Date of the event (YYYY-MM-DD)
	Date *Date `json:"date" validate:"required" swaggertype:"string" example:"2024-01-29"`
	// Event kind
	Type CycleEntryType `json:"type" validate:"required,oneof=period_start period_end ovulation fertile_window" example:"period_start" enums:"period_start,period_end,ovulation,fertile_window"`
	// Optional flow intensity
	Flow *FlowIntensity `json:"flow,omitempty" validate:"omitempty,oneof=light medium heavy" example:"medium" enums:"light,medium,heavy"`
	// Optional free-text notes
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

// CycleEntryResponse is the response body for cycle entries.
// @Description Logged cycle event.
type CycleEntryResponse struct {
	ID        uuid.UUID      `json:"id"`
	Date      Date           `json:"date" swaggertype:"string" example:"2024-01-29"`
	Type      CycleEntryType `json:"type" example:"period_start"`
	Flow      *FlowIntensity `json:"flow,omitempty" example:"medium"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (e *CycleEntry) ToResponse() CycleEntryResponse {
	return CycleEntryResponse{
		ID:        e.ID,
		Date:      e.Date,
		Type:      e.Type,
		Flow:      e.Flow,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

// SymptomEntry is one append-only symptom log record.
type SymptomEntry struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;index:idx_symptom_entries_user_date" json:"user_id"`
	Date         Date                        `gorm:"not null;index:idx_symptom_entries_user_date" json:"date"`
	Symptoms     datatypes.JSONSlice[string] `json:"symptoms"`
	Mood         *int                        `gorm:"type:smallint" json:"mood,omitempty"`
	PainLevel    *int                        `gorm:"type:smallint" json:"pain_level,omitempty"`
	PainLocation datatypes.JSONSlice[string] `json:"pain_location,omitempty"`
	Notes        string                      `json:"notes,omitempty"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SymptomEntry) TableName() string {
	return "symptom_entries"
}

// CreateSymptomEntryRequest is the request body for logging symptoms.
// @Description Request payload for logging the symptoms of one day.
type CreateSymptomEntryRequest struct {
	// Date the symptoms occurred (YYYY-MM-DD)
	Date *Date `json:"date" validate:"required" swaggertype:"string" example:"2024-01-02"`
	// Symptom labels
	Symptoms []string `json:"symptoms" validate:"max=30,dive,required,max=100" example:"cramps,fatigue"`
	// Optional mood rating from 1 to 10
	Mood *int `json:"mood,omitempty" validate:"omitempty,min=1,max=10" example:"6" minimum:"1" maximum:"10"`
	// Optional pain level from 1 to 10
	PainLevel *int `json:"pain_level,omitempty" validate:"omitempty,min=1,max=10" example:"4" minimum:"1" maximum:"10"`
	// Optional pain locations
	PainLocation []string `json:"pain_location,omitempty" validate:"max=10,dive,required,max=100" example:"lower-abdomen"`
	// Optional free-text notes
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

// SymptomEntryResponse is the response body for symptom entries.
// @Description Logged symptoms of one day.
type SymptomEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         Date      `json:"date" swaggertype:"string" example:"2024-01-02"`
	Symptoms     []string  `json:"symptoms"`
	Mood         *int      `json:"mood,omitempty"`
	PainLevel    *int      `json:"pain_level,omitempty"`
	PainLocation []string  `json:"pain_location,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e *SymptomEntry) ToResponse() SymptomEntryResponse {
	return SymptomEntryResponse{
		ID:           e.ID,
		Date:         e.Date,
		Symptoms:     nonNil(e.Symptoms),
		Mood:         e.Mood,
		PainLevel:    e.PainLevel,
		PainLocation: e.PainLocation,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

// SymptomEntryFilter restricts a symptom listing to an inclusive date range.
type SymptomEntryFilter struct {
	From *Date
	To   *Date
}

// Severity buckets a pain level for display.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// SeverityOf maps a 1-10 pain level to a severity. An unknown level is mild.
func SeverityOf(painLevel *int) Severity {
	switch {
	case painLevel == nil || *painLevel <= 3:
		return SeverityMild
	case *painLevel <= 7:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// CycleEntryListResponse is the response body for listing cycle entries.
// @Description Cycle entries in the order they were logged.
type CycleEntryListResponse struct {
	Data []CycleEntryResponse `json:"data"`
}

// SymptomEntryListResponse is the response body for listing symptom entries.
// @Description Symptom entries in the order they were logged.
type SymptomEntryListResponse struct {
	Data []SymptomEntryResponse `json:"data"`
}
