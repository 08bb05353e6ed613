package domain

import (
	"time"

	"github.com/flowise/cycle-tracker/internal/cycle"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CycleRegularity is the user's own assessment of how regular their cycle is.
type CycleRegularity string

const (
	RegularityVeryRegular     CycleRegularity = "very-regular"
	RegularitySomewhatRegular CycleRegularity = "somewhat-regular"
	RegularityIrregular       CycleRegularity = "irregular"
	RegularityUnsure          CycleRegularity = "unsure"
)

// Valid reports whether r is one of the known categories.
func (r CycleRegularity) Valid() bool {
	switch r {
	case RegularityVeryRegular, RegularitySomewhatRegular, RegularityIrregular, RegularityUnsure:
		return true
	}
	return false
}

// Profile holds the questionnaire answers of one user. Only the last period
// date and the two averages feed predictions; everything else is context for
// insight generation.
type Profile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`

	Name  string `gorm:"type:varchar(100)" json:"name"`
	Age   int    `gorm:"type:smallint;not null;default:0" json:"age"`
	Email string `gorm:"type:varchar(255)" json:"email"`

	LastPeriodDate      *Date           `json:"last_period_date"`
	AverageCycleLength  int             `gorm:"type:smallint;not null" json:"average_cycle_length"`
	AveragePeriodLength int             `gorm:"type:smallint;not null" json:"average_period_length"`
	CycleRegularity     CycleRegularity `gorm:"type:varchar(32)" json:"cycle_regularity"`

	ContraceptiveMethod string                      `gorm:"type:varchar(64)" json:"contraceptive_method"`
	PregnancyHistory    string                      `gorm:"type:varchar(64)" json:"pregnancy_history"`
	Medications         string                      `json:"medications"`
	MedicalConditions   datatypes.JSONSlice[string] `json:"medical_conditions"`

	SymptomsToTrack datatypes.JSONSlice[string] `json:"symptoms_to_track"`
	MoodTracking    bool                        `gorm:"not null;default:false" json:"mood_tracking"`
	FlowTracking    bool                        `gorm:"not null;default:false" json:"flow_tracking"`
	PainTracking    bool                        `gorm:"not null;default:false" json:"pain_tracking"`

	PrimaryGoal             string                      `gorm:"type:varchar(64)" json:"primary_goal"`
	NotificationPreferences datatypes.JSONSlice[string] `json:"notification_preferences"`
	PrivacyLevel            string                      `gorm:"type:varchar(16)" json:"privacy_level"`
	Lifestyle               string                      `json:"lifestyle"`
	AdditionalNotes         string                      `json:"additional_notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Baseline extracts the prediction inputs. A nil profile or a missing last
// period date yields an unknown baseline.
func (p *Profile) Baseline() cycle.Baseline {
	if p == nil {
		return cycle.Baseline{}
	}
	b := cycle.Baseline{
		CycleLength:  p.AverageCycleLength,
		PeriodLength: p.AveragePeriodLength,
	}
	if p.LastPeriodDate != nil {
		b.LastPeriod = p.LastPeriodDate.Time
	}
	return b
}

// ProfileInput is a complete questionnaire submission. It is the body of
// PUT /profile and the result of parsing the form-encoded questionnaire.
// @Description Full profile as submitted by the questionnaire.
type ProfileInput struct {
	Name  string `json:"name" validate:"max=100" example:"Jane"`
	Age   int    `json:"age" validate:"omitempty,min=10,max=60" example:"29"`
	Email string `json:"email" validate:"omitempty,email,max=255" example:"jane@example.com"`

	// Start of the most recent period (YYYY-MM-DD)
	LastPeriodDate *Date `json:"last_period_date" swaggertype:"string" example:"2024-01-01"`
	// Average cycle length in days
	AverageCycleLength int `json:"average_cycle_length" validate:"required,min=21,max=40" example:"28" minimum:"21" maximum:"40"`
	// Average period length in days, shorter than the cycle
	AveragePeriodLength int             `json:"average_period_length" validate:"required,min=2,max=9,ltfield=AverageCycleLength" example:"5" minimum:"2" maximum:"9"`
	CycleRegularity     CycleRegularity `json:"cycle_regularity" validate:"omitempty,oneof=very-regular somewhat-regular irregular unsure" enums:"very-regular,somewhat-regular,irregular,unsure"`

	ContraceptiveMethod string   `json:"contraceptive_method" validate:"max=64" example:"none"`
	PregnancyHistory    string   `json:"pregnancy_history" validate:"max=64" example:"never-pregnant"`
	Medications         string   `json:"medications" validate:"max=1000"`
	MedicalConditions   []string `json:"medical_conditions" validate:"max=20,dive,required,max=100"`

	SymptomsToTrack []string `json:"symptoms_to_track" validate:"max=30,dive,required,max=100" example:"cramps,bloating"`
	MoodTracking    bool     `json:"mood_tracking"`
	FlowTracking    bool     `json:"flow_tracking"`
	PainTracking    bool     `json:"pain_tracking"`

	PrimaryGoal             string   `json:"primary_goal" validate:"max=64" example:"period-prediction"`
	NotificationPreferences []string `json:"notification_preferences" validate:"max=10,dive,required,max=64"`
	PrivacyLevel            string   `json:"privacy_level" validate:"omitempty,oneof=high medium low" enums:"high,medium,low"`
	Lifestyle               string   `json:"lifestyle" validate:"max=2000"`
	AdditionalNotes         string   `json:"additional_notes" validate:"max=2000"`
}

// ToProfile builds the stored profile for userID.
func (in *ProfileInput) ToProfile(userID uuid.UUID) *Profile {
	return &Profile{
		UserID:                  userID,
		Name:                    in.Name,
		Age:                     in.Age,
		Email:                   in.Email,
		LastPeriodDate:          in.LastPeriodDate,
		AverageCycleLength:      in.AverageCycleLength,
		AveragePeriodLength:     in.AveragePeriodLength,
		CycleRegularity:         in.CycleRegularity,
		ContraceptiveMethod:     in.ContraceptiveMethod,
		PregnancyHistory:        in.PregnancyHistory,
		Medications:             in.Medications,
		MedicalConditions:       nonNil(in.MedicalConditions),
		SymptomsToTrack:         nonNil(in.SymptomsToTrack),
		MoodTracking:            in.MoodTracking,
		FlowTracking:            in.FlowTracking,
		PainTracking:            in.PainTracking,
		PrimaryGoal:             in.PrimaryGoal,
		NotificationPreferences: nonNil(in.NotificationPreferences),
		PrivacyLevel:            in.PrivacyLevel,
		Lifestyle:               in.Lifestyle,
		AdditionalNotes:         in.AdditionalNotes,
	}
}

// UpdateProfileRequest is a partial profile. Absent fields are left unchanged.
// @Description Partial profile update; only provided fields change.
type UpdateProfileRequest struct {
	Name                    *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Age                     *int             `json:"age,omitempty" validate:"omitempty,max=60"`
	Email                   *string          `json:"email,omitempty" validate:"omitempty,max=255"`
	LastPeriodDate          *Date            `json:"last_period_date,omitempty" swaggertype:"string" example:"2024-01-29"`
	AverageCycleLength      *int             `json:"average_cycle_length,omitempty" validate:"omitempty,min=21,max=40"`
	AveragePeriodLength     *int             `json:"average_period_length,omitempty" validate:"omitempty,min=2,max=9"`
	CycleRegularity         *CycleRegularity `json:"cycle_regularity,omitempty" validate:"omitempty,oneof=very-regular somewhat-regular irregular unsure"`
	ContraceptiveMethod     *string          `json:"contraceptive_method,omitempty" validate:"omitempty,max=64"`
	PregnancyHistory        *string          `json:"pregnancy_history,omitempty" validate:"omitempty,max=64"`
	Medications             *string          `json:"medications,omitempty" validate:"omitempty,max=1000"`
	MedicalConditions       []string         `json:"medical_conditions,omitempty" validate:"omitempty,max=20,dive,required,max=100"`
	SymptomsToTrack         []string         `json:"symptoms_to_track,omitempty" validate:"omitempty,max=30,dive,required,max=100"`
	MoodTracking            *bool            `json:"mood_tracking,omitempty"`
	FlowTracking            *bool            `json:"flow_tracking,omitempty"`
	PainTracking            *bool            `json:"pain_tracking,omitempty"`
	PrimaryGoal             *string          `json:"primary_goal,omitempty" validate:"omitempty,max=64"`
	NotificationPreferences []string         `json:"notification_preferences,omitempty" validate:"omitempty,max=10,dive,required,max=64"`
	PrivacyLevel            *string          `json:"privacy_level,omitempty" validate:"omitempty,oneof=high medium low"`
	Lifestyle               *string          `json:"lifestyle,omitempty" validate:"omitempty,max=2000"`
	AdditionalNotes         *string          `json:"additional_notes,omitempty" validate:"omitempty,max=2000"`
}

// HasUpdates reports whether at least one field is set.
func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.Name != nil || r.Age != nil || r.Email != nil || r.LastPeriodDate != nil ||
		r.AverageCycleLength != nil || r.AveragePeriodLength != nil || r.CycleRegularity != nil ||
		r.ContraceptiveMethod != nil || r.PregnancyHistory != nil || r.Medications != nil ||
		r.MedicalConditions != nil || r.SymptomsToTrack != nil ||
		r.MoodTracking != nil || r.FlowTracking != nil || r.PainTracking != nil ||
		r.PrimaryGoal != nil || r.NotificationPreferences != nil || r.PrivacyLevel != nil ||
		r.Lifestyle != nil || r.AdditionalNotes != nil
}

// Apply merges the set fields into p.
func (r *UpdateProfileRequest) Apply(p *Profile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Age != nil {
		p.Age = *r.Age
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.LastPeriodDate != nil {
		d := *r.LastPeriodDate
		p.LastPeriodDate = &d
	}
	if r.AverageCycleLength != nil {
		p.AverageCycleLength = *r.AverageCycleLength
	}
	if r.AveragePeriodLength != nil {
		p.AveragePeriodLength = *r.AveragePeriodLength
	}
	if r.CycleRegularity != nil {
		p.CycleRegularity = *r.CycleRegularity
	}
	if r.ContraceptiveMethod != nil {
		p.ContraceptiveMethod = *r.ContraceptiveMethod
	}
	if r.PregnancyHistory != nil {
		p.PregnancyHistory = *r.PregnancyHistory
	}
	if r.Medications != nil {
		p.Medications = *r.Medications
	}
	if r.MedicalConditions != nil {
		p.MedicalConditions = r.MedicalConditions
	}
	if r.SymptomsToTrack != nil {
		p.SymptomsToTrack = r.SymptomsToTrack
	}
	if r.MoodTracking != nil {
		p.MoodTracking = *r.MoodTracking
	}
	if r.FlowTracking != nil {
		p.FlowTracking = *r.FlowTracking
	}
	if r.PainTracking != nil {
		p.PainTracking = *r.PainTracking
	}
	if r.PrimaryGoal != nil {
		p.PrimaryGoal = *r.PrimaryGoal
	}
	if r.NotificationPreferences != nil {
		p.NotificationPreferences = r.NotificationPreferences
	}
	if r.PrivacyLevel != nil {
		p.PrivacyLevel = *r.PrivacyLevel
	}
	if r.Lifestyle != nil {
		p.Lifestyle = *r.Lifestyle
	}
	if r.AdditionalNotes != nil {
		p.AdditionalNotes = *r.AdditionalNotes
	}
}

// CheckInvariants validates the cross-field rules a profile must satisfy
// after a set or a partial update. today is the owner's current date.
func (p *Profile) CheckInvariants(today Date) []InvariantViolation {
	var out []InvariantViolation
	if p.AverageCycleLength < 21 || p.AverageCycleLength > 40 {
		out = append(out, InvariantViolation{Field: "average_cycle_length", Message: "must be between 21 and 40"})
	}
	if p.AveragePeriodLength < 2 || p.AveragePeriodLength > 9 {
		out = append(out, InvariantViolation{Field: "average_period_length", Message: "must be between 2 and 9"})
	}
	if p.AveragePeriodLength >= p.AverageCycleLength {
		out = append(out, InvariantViolation{Field: "average_period_length", Message: "must be less than average_cycle_length"})
	}
	if p.Age != 0 && (p.Age < 10 || p.Age > 60) {
		out = append(out, InvariantViolation{Field: "age", Message: "must be 0 or between 10 and 60"})
	}
	if p.CycleRegularity != "" && !p.CycleRegularity.Valid() {
		out = append(out, InvariantViolation{Field: "cycle_regularity", Message: "must be one of: very-regular somewhat-regular irregular unsure"})
	}
	if p.LastPeriodDate != nil && p.LastPeriodDate.After(today.Time) {
		out = append(out, InvariantViolation{Field: "last_period_date", Message: "must not be in the future"})
	}
	return out
}

// InvariantViolation names a profile field that breaks a cross-field rule.
type InvariantViolation struct {
	Field   string
	Message string
}

// ProfileResponse is the response body for profile endpoints.
// @Description Stored questionnaire profile.
type ProfileResponse struct {
	UserID                  uuid.UUID       `json:"user_id"`
	Name                    string          `json:"name"`
	Age                     int             `json:"age"`
	Email                   string          `json:"email"`
	LastPeriodDate          *Date           `json:"last_period_date" swaggertype:"string" example:"2024-01-01"`
	AverageCycleLength      int             `json:"average_cycle_length" example:"28"`
	AveragePeriodLength     int             `json:"average_period_length" example:"5"`
	CycleRegularity         CycleRegularity `json:"cycle_regularity" example:"very-regular"`
	ContraceptiveMethod     string          `json:"contraceptive_method"`
	PregnancyHistory        string          `json:"pregnancy_history"`
	Medications             string          `json:"medications"`
	MedicalConditions       []string        `json:"medical_conditions"`
	SymptomsToTrack         []string        `json:"symptoms_to_track"`
	MoodTracking            bool            `json:"mood_tracking"`
	FlowTracking            bool            `json:"flow_tracking"`
	PainTracking            bool            `json:"pain_tracking"`
	PrimaryGoal             string          `json:"primary_goal"`
	NotificationPreferences []string        `json:"notification_preferences"`
	PrivacyLevel            string          `json:"privacy_level"`
	Lifestyle               string          `json:"lifestyle"`
	AdditionalNotes         string          `json:"additional_notes"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		UserID:                  p.UserID,
		Name:                    p.Name,
		Age:                     p.Age,
		Email:                   p.Email,
		LastPeriodDate:          p.LastPeriodDate,
		AverageCycleLength:      p.AverageCycleLength,
		AveragePeriodLength:     p.AveragePeriodLength,
		CycleRegularity:         p.CycleRegularity,
		ContraceptiveMethod:     p.ContraceptiveMethod,
		PregnancyHistory:        p.PregnancyHistory,
		Medications:             p.Medications,
		MedicalConditions:       nonNil(p.MedicalConditions),
		SymptomsToTrack:         nonNil(p.SymptomsToTrack),
		MoodTracking:            p.MoodTracking,
		FlowTracking:            p.FlowTracking,
		PainTracking:            p.PainTracking,
		PrimaryGoal:             p.PrimaryGoal,
		NotificationPreferences: nonNil(p.NotificationPreferences),
		PrivacyLevel:            p.PrivacyLevel,
		Lifestyle:               p.Lifestyle,
		AdditionalNotes:         p.AdditionalNotes,
		UpdatedAt:               p.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
