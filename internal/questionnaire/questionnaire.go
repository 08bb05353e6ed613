// Package questionnaire maps a form-encoded questionnaire submission onto a
// profile. Malformed numeric answers never fail the submission: they fall
// back to defaults.
package questionnaire

import (
	"net/url"
	"strings"

	"github.com/flowise/cycle-tracker/internal/cycle"
	"github.com/flowise/cycle-tracker/internal/domain"
)

// Form field names as posted by the questionnaire page.
const (
	FieldName                    = "name"
	FieldAge                     = "age"
	FieldEmail                   = "email"
	FieldLastPeriodDate          = "lastPeriodDate"
	FieldAverageCycleLength      = "averageCycleLength"
	FieldAveragePeriodLength     = "averagePeriodLength"
	FieldCycleRegularity         = "cycleRegularity"
	FieldContraceptiveMethod     = "contraceptiveMethod"
	FieldPregnancyHistory        = "pregnancyHistory"
	FieldMedications             = "medications"
	FieldMedicalConditions       = "medicalConditions"
	FieldSymptomsToTrack         = "symptomsToTrack"
	FieldMoodTracking            = "moodTracking"
	FieldFlowTracking            = "flowTracking"
	FieldPainTracking            = "painTracking"
	FieldPrimaryGoal             = "primaryGoal"
	FieldNotificationPreferences = "notificationPreferences"
	FieldPrivacyLevel            = "privacyLevel"
	FieldLifestyle               = "lifestyle"
	FieldAdditionalNotes         = "additionalNotes"
)

// DefaultAge is used when the age answer is missing or unparsable.
const DefaultAge = 0

// Parse converts the submitted values into a profile input.
//
// Age, cycle length and period length accept a leading integer ("28 days"
// reads as 28). A missing, unparsable or zero answer takes the default:
// age 0, cycle 28, period 5. An unparsable last period date is left unset.
// Checkboxes count as checked only when their value is "on".
func Parse(values url.Values) domain.ProfileInput {
	in := domain.ProfileInput{
		Name:                    text(values, FieldName),
		Age:                     intOr(values.Get(FieldAge), DefaultAge),
		Email:                   text(values, FieldEmail),
		AverageCycleLength:      intOr(values.Get(FieldAverageCycleLength), cycle.DefaultCycleLength),
		AveragePeriodLength:     intOr(values.Get(FieldAveragePeriodLength), cycle.DefaultPeriodLength),
		CycleRegularity:         domain.CycleRegularity(text(values, FieldCycleRegularity)),
		ContraceptiveMethod:     text(values, FieldContraceptiveMethod),
		PregnancyHistory:        text(values, FieldPregnancyHistory),
		Medications:             text(values, FieldMedications),
		MedicalConditions:       list(values, FieldMedicalConditions),
		SymptomsToTrack:         list(values, FieldSymptomsToTrack),
		MoodTracking:            values.Get(FieldMoodTracking) == "on",
		FlowTracking:            values.Get(FieldFlowTracking) == "on",
		PainTracking:            values.Get(FieldPainTracking) == "on",
		PrimaryGoal:             text(values, FieldPrimaryGoal),
		NotificationPreferences: list(values, FieldNotificationPreferences),
		PrivacyLevel:            text(values, FieldPrivacyLevel),
		Lifestyle:               text(values, FieldLifestyle),
		AdditionalNotes:         text(values, FieldAdditionalNotes),
	}

	if d, err := domain.ParseDate(values.Get(FieldLastPeriodDate)); err == nil {
		in.LastPeriodDate = &d
	}
	return in
}

func text(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// list returns every non-blank value posted under key, or under key[] as
// sent by some form libraries.
func list(values url.Values, key string) []string {
	raw := append(append([]string{}, values[key]...), values[key+"[]"]...)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// intOr reads the leading integer of s. It returns def when s has no leading
// digits or reads as zero.
func intOr(s string, def int) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		if n > 1e6 {
			break
		}
		n = n*10 + int(c-'0')
		digits++
	}
	if digits == 0 || n == 0 {
		return def
	}
	if neg {
		n = -n
	}
	return n
}
