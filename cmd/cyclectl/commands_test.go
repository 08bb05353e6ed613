package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flowise/cycle-tracker/internal/cycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDayCommand(t *testing.T) {
	out, err := execute(t, "day", "--last", "2024-01-01", "--cycle", "28", "--period", "5", "--date", "2024-01-14")
	require.NoError(t, err)

	var got dayOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-01-14", got.Date)
	assert.Equal(t, 14, got.CycleDay)
	assert.True(t, got.IsOvulation)
	assert.True(t, got.IsFertile)
	assert.False(t, got.IsPeriod)
	assert.Equal(t, cycle.PhaseOvulation, got.Phase.Name)
}

func TestDayCommand_DefaultsToToday(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	out, err := execute(t, "day", "--last", "2024-01-01")
	require.NoError(t, err)

	var got dayOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-01-03", got.Date)
	assert.True(t, got.IsPeriod)
	assert.True(t, got.IsPredicted)
}

func TestPhaseCommand(t *testing.T) {
	out, err := execute(t, "phase", "--last", "2024-01-01", "--date", "2024-01-03")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Menstrual  day 3"), out)
}

func TestCalendarCommand_JSON(t *testing.T) {
	out, err := execute(t, "calendar", "--last", "2024-01-01", "--month", "2024-02", "--today", "2024-02-10", "--json")
	require.NoError(t, err)

	var days []cycle.CalendarDay
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	require.Len(t, days, 35)

	// February 2024 starts on a Thursday.
	assert.Equal(t, "2024-01-28", days[0].Date)
	assert.False(t, days[0].InMonth)

	feb1 := days[4]
	assert.Equal(t, "2024-02-01", feb1.Date)
	assert.True(t, feb1.IsPeriod)
	assert.True(t, feb1.IsPredicted)

	assert.True(t, days[13].IsToday)
	assert.True(t, days[14].IsOvulation)
}

func TestCalendarCommand_Text(t *testing.T) {
	out, err := execute(t, "calendar", "--last", "2024-01-01", "--month", "2024-02", "--today", "2024-02-10")
	require.NoError(t, err)

	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, ">10f")
	assert.Contains(t, out, " 11O")
	assert.Contains(t, out, " 01p")
}

func TestCommands_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing last period", []string{"day"}},
		{"bad last period", []string{"day", "--last", "01/01/2024"}},
		{"zero cycle", []string{"phase", "--last", "2024-01-01", "--cycle", "0"}},
		{"bad month", []string{"calendar", "--last", "2024-01-01", "--month", "Feb"}},
		{"missing profile", []string{"prompt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", "--last", "2024-01-01", "--today", "2024-01-10")
	require.NoError(t, err)

	var got cycle.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 10, got.CurrentDay)
	assert.Equal(t, 19, got.DaysUntilNextPeriod)
	assert.Equal(t, "2024-01-29", got.NextPeriodDate)
	assert.Len(t, got.UpcomingPeriods, cycle.UpcomingPeriodCount)
}

func TestPromptCommand(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(profile, []byte(`{
		"age": 29,
		"last_period_date": "2024-01-01",
		"average_cycle_length": 30,
		"average_period_length": 5,
		"medical_conditions": ["pcos"]
	}`), 0o644))
	symptoms := filepath.Join(dir, "symptoms.json")
	require.NoError(t, os.WriteFile(symptoms, []byte(`[
		{"date": "2024-01-02", "symptoms": ["cramps"]},
		{"date": "2024-01-03", "symptoms": ["fatigue"]}
	]`), 0o644))

	out, err := execute(t, "prompt", "--profile", profile, "--symptoms", symptoms)
	require.NoError(t, err)

	assert.Contains(t, out, "Age: 29")
	assert.Contains(t, out, "Average Cycle Length: 30 days")
	assert.Contains(t, out, "Medical Conditions: pcos")
	assert.Contains(t, out, "Recent Symptom Entries: 2 entries")
	assert.Contains(t, out, "Recent Cycle Entries: 0 entries")
}
