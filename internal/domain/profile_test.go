package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/google/uuid"
)

func mustDate(t *testing.T, s string) *Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return &d
}

func validProfile(t *testing.T) *Profile {
	return &Profile{
		UserID:              uuid.New(),
		LastPeriodDate:      mustDate(t, "2024-01-01"),
		AverageCycleLength:  28,
		AveragePeriodLength: 5,
		CycleRegularity:     RegularityVeryRegular,
	}
}

func TestDate_JSON(t *testing.T) {
	var body struct {
		Date *Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-02-29"}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := body.Date.String(); got != "2024-02-29" {
		t.Errorf("String() = %q, want 2024-02-29", got)
	}

	out, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"date":"2024-02-29"}` {
		t.Errorf("Marshal = %s", out)
	}

	err = json.Unmarshal([]byte(`{"date":"29/02/2024"}`), &body)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid layout error = %v, want ErrInvalidInput", err)
	}
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"time from driver", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "2024-03-05"},
		{"text column", "2024-03-05", "2024-03-05"},
		{"timestamp text", "2024-03-05 00:00:00+00:00", "2024-03-05"},
		{"bytes", []byte("2024-03-05"), "2024-03-05"},
		{"null", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.value); err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, d.String(), tt.want)
			}
		})
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestToday_UsesLocation(t *testing.T) {
	// 23:30 UTC on Jan 14 is already Jan 15 in Tokyo.
	now := time.Date(2024, 1, 14, 23, 30, 0, 0, time.UTC)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	if got := Today(now, time.UTC).String(); got != "2024-01-14" {
		t.Errorf("Today(UTC) = %s", got)
	}
	if got := Today(now, tokyo).String(); got != "2024-01-15" {
		t.Errorf("Today(Tokyo) = %s", got)
	}
}

func TestProfile_Baseline(t *testing.T) {
	p := validProfile(t)
	b := p.Baseline()
	if !b.Known() || b.CycleLength != 28 || b.PeriodLength != 5 {
		t.Errorf("Baseline() = %+v", b)
	}

	p.LastPeriodDate = nil
	if p.Baseline().Known() {
		t.Error("profile without last period date should yield an unknown baseline")
	}

	var missing *Profile
	if missing.Baseline().Known() {
		t.Error("nil profile should yield an unknown baseline")
	}
}

func TestProfile_CheckInvariants(t *testing.T) {
	today := *mustDate(t, "2024-01-10")

	tests := []struct {
		name       string
		mutate     func(p *Profile)
		wantFields []string
	}{
		{"valid", func(p *Profile) {}, nil},
		{"cycle too short", func(p *Profile) { p.AverageCycleLength = 14 }, []string{"average_cycle_length"}},
		{"period too long", func(p *Profile) { p.AveragePeriodLength = 12 }, []string{"average_period_length"}},
		{"period not shorter than cycle", func(p *Profile) {
			p.AveragePeriodLength = 9
			p.AverageCycleLength = 9
		}, []string{"average_cycle_length", "average_period_length"}},
		{"age below range", func(p *Profile) { p.Age = 5 }, []string{"age"}},
		{"age unset", func(p *Profile) { p.Age = 0 }, nil},
		{"unknown regularity", func(p *Profile) { p.CycleRegularity = "sometimes" }, []string{"cycle_regularity"}},
		{"last period in the future", func(p *Profile) { p.LastPeriodDate = mustDate(t, "2024-01-11") }, []string{"last_period_date"}},
		{"last period today", func(p *Profile) { p.LastPeriodDate = mustDate(t, "2024-01-10") }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile(t)
			tt.mutate(p)

			got := p.CheckInvariants(today)
			fields := make(map[string]bool)
			for _, v := range got {
				fields[v.Field] = true
			}
			if len(tt.wantFields) == 0 && len(got) > 0 {
				t.Fatalf("unexpected violations: %+v", got)
			}
			for _, f := range tt.wantFields {
				if !fields[f] {
					t.Errorf("missing violation for %s in %+v", f, got)
				}
			}
		})
	}
}

func TestUpdateProfileRequest_Apply(t *testing.T) {
	p := validProfile(t)
	p.Name = "Jane"
	p.SymptomsToTrack = []string{"cramps"}

	cycleLength := 30
	pain := true
	req := UpdateProfileRequest{
		AverageCycleLength: &cycleLength,
		LastPeriodDate:     mustDate(t, "2024-01-29"),
		PainTracking:       &pain,
		SymptomsToTrack:    []string{"cramps", "bloating"},
	}
	if !req.HasUpdates() {
		t.Fatal("HasUpdates() = false")
	}

	req.Apply(p)

	if p.AverageCycleLength != 30 || p.AveragePeriodLength != 5 {
		t.Errorf("lengths = %d/%d, want 30/5", p.AverageCycleLength, p.AveragePeriodLength)
	}
	if p.LastPeriodDate.String() != "2024-01-29" {
		t.Errorf("LastPeriodDate = %s", p.LastPeriodDate)
	}
	if p.Name != "Jane" {
		t.Errorf("Name changed to %q", p.Name)
	}
	if !p.PainTracking || len(p.SymptomsToTrack) != 2 {
		t.Errorf("tracking not applied: %+v", p)
	}

	if (&UpdateProfileRequest{}).HasUpdates() {
		t.Error("empty request reports updates")
	}
}

func TestProfileInput_ToProfile(t *testing.T) {
	userID := uuid.New()
	in := ProfileInput{AverageCycleLength: 28, AveragePeriodLength: 5}

	p := in.ToProfile(userID)

	if p.UserID != userID {
		t.Errorf("UserID = %s", p.UserID)
	}
	if p.MedicalConditions == nil || p.SymptomsToTrack == nil || p.NotificationPreferences == nil {
		t.Error("list fields should be empty, not nil")
	}

	resp := p.ToResponse()
	out, _ := json.Marshal(resp)
	var decoded map[string]any
	_ = json.Unmarshal(out, &decoded)
	if decoded["last_period_date"] != nil {
		t.Errorf("last_period_date = %v, want null", decoded["last_period_date"])
	}
}

func TestSeverityOf(t *testing.T) {
	level := func(n int) *int { return &n }

	tests := []struct {
		pain *int
		want Severity
	}{
		{nil, SeverityMild},
		{level(1), SeverityMild},
		{level(3), SeverityMild},
		{level(4), SeverityModerate},
		{level(7), SeverityModerate},
		{level(8), SeveritySevere},
		{level(10), SeveritySevere},
	}
	for _, tt := range tests {
		if got := SeverityOf(tt.pain); got != tt.want {
			t.Errorf("SeverityOf(%v) = %s, want %s", tt.pain, got, tt.want)
		}
	}
}

func TestParseBaselineSource(t *testing.T) {
	for in, want := range map[string]BaselineSource{"": SourceProfile, "profile": SourceProfile, "entries": SourceEntries} {
		got, err := ParseBaselineSource(in)
		if err != nil || got != want {
			t.Errorf("ParseBaselineSource(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseBaselineSource("calendar"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown source error = %v", err)
	}
}
