package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrProfileIncomplete   = errors.New("profile incomplete")
	ErrInsightsFailed      = errors.New("failed to generate insights")
	ErrInsightsUnavailable = errors.New("insights generation not configured")
)

// InsightsFailedMessage is the only message shown to clients when insight
// generation fails for any reason.
const InsightsFailedMessage = "Failed to generate insights."

// ProfileInvalidError lists the profile rules a set or update would break.
// It matches ErrInvalidInput with errors.Is.
type ProfileInvalidError struct {
	Violations []InvariantViolation
}

func (e *ProfileInvalidError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Message)
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

func (e *ProfileInvalidError) Unwrap() error {
	return ErrInvalidInput
}
