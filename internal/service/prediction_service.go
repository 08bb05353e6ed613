package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flowise/cycle-tracker/internal/cache"
	"github.com/flowise/cycle-tracker/internal/cycle"
	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/logger"
	"github.com/flowise/cycle-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MonthLayout is the wire format of calendar months.
const MonthLayout = "2006-01"

// DefaultCalendarTTL bounds how long a computed month grid is reused.
const DefaultCalendarTTL = 10 * time.Minute

// PredictionService derives calendar, single-day and dashboard predictions
// from the stored profile. A missing profile yields neutral predictions,
// never an error.
type PredictionService interface {
	// Calendar returns the grid of the month containing month. A zero month
	// means the user's current month.
	Calendar(ctx context.Context, userID uuid.UUID, month time.Time, source domain.BaselineSource) (*domain.CalendarResponse, error)
	Day(ctx context.Context, userID uuid.UUID, date domain.Date, source domain.BaselineSource) (*domain.DayResponse, error)
	Dashboard(ctx context.Context, userID uuid.UUID, source domain.BaselineSource) (*domain.DashboardResponse, error)
}

type predictionService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	entryRepo   repository.EntryRepository
	cache       cache.Cache
	ttl         time.Duration
	log         *logger.Logger

	now func() time.Time
}

func NewPredictionService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	entryRepo repository.EntryRepository,
	c cache.Cache,
	ttl time.Duration,
	log *logger.Logger,
) PredictionService {
	if c == nil {
		c = cache.NewMemory()
	}
	if ttl <= 0 {
		ttl = DefaultCalendarTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &predictionService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		entryRepo:   entryRepo,
		cache:       c,
		ttl:         ttl,
		log:         log,
		now:         time.Now,
	}
}

// basis is what every prediction of one request is computed from.
type basis struct {
	baseline cycle.Baseline
	today    time.Time
}

func (s *predictionService) basis(ctx context.Context, userID uuid.UUID, source domain.BaselineSource) (*basis, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var b cycle.Baseline
	profile, err := s.profileRepo.Get(ctx, userID)
	switch {
	case err == nil:
		b = profile.Baseline()
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	if source == domain.SourceEntries && profile != nil {
		starts, err := s.entryRepo.ListPeriodStarts(ctx, userID)
		if err != nil {
			return nil, err
		}
		days := make([]time.Time, 0, len(starts))
		for _, d := range starts {
			days = append(days, d.Time)
		}
		b = cycle.RefineBaseline(b, days)
	}

	return &basis{
		baseline: b,
		today:    domain.Today(s.now(), user.Location()).Time,
	}, nil
}

func (s *predictionService) Calendar(ctx context.Context, userID uuid.UUID, month time.Time, source domain.BaselineSource) (*domain.CalendarResponse, error) {
	ctx, span := otel.Tracer("cycle-tracker-api/prediction").Start(ctx, "PredictionService.Calendar",
		trace.WithAttributes(attribute.String("source", string(source))),
	)
	defer span.End()

	bs, err := s.basis(ctx, userID, source)
	if err != nil {
		return nil, err
	}
	if month.IsZero() {
		month = bs.today
	}
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	span.SetAttributes(attribute.String("month", first.Format(MonthLayout)))

	days, hit := s.cachedGrid(ctx, first, bs)
	span.SetAttributes(attribute.Bool("cache_hit", hit))

	last := domain.NewDate(first.AddDate(0, 1, -1))
	from := domain.NewDate(first)
	symptoms, err := s.symptomsByDate(ctx, userID, domain.SymptomEntryFilter{From: &from, To: &last})
	if err != nil {
		return nil, err
	}
	for i := range days {
		if !days[i].InMonth {
			continue
		}
		if labels := symptoms[days[i].Date]; len(labels) > 0 {
			days[i].Symptoms = labels
		}
	}

	return &domain.CalendarResponse{
		Month:      first.Format(MonthLayout),
		Source:     source,
		Days:       days,
		TodayPhase: cycle.Phase(bs.today, bs.baseline),
	}, nil
}

// cachedGrid returns the symptom-free month grid, computing and storing it
// on a miss. Cache failures degrade to recomputation.
func (s *predictionService) cachedGrid(ctx context.Context, first time.Time, bs *basis) ([]cycle.CalendarDay, bool) {
	key := calendarKey(first, bs)

	var days []cycle.CalendarDay
	hit, err := s.cache.Get(ctx, key, &days)
	if err != nil {
		s.log.Warn("calendar cache read failed", "key", key, "error", err)
	}
	if hit && err == nil {
		return days, true
	}

	days = cycle.MonthGrid(first, bs.baseline, bs.today, nil)
	if err := s.cache.Set(ctx, key, days, s.ttl); err != nil {
		s.log.Warn("calendar cache write failed", "key", key, "error", err)
	}
	return days, false
}

// calendarKey identifies a grid by everything it is derived from. Grids do
// not depend on who asked, so users with the same baseline share entries.
func calendarKey(first time.Time, bs *basis) string {
	last := "none"
	if !bs.baseline.LastPeriod.IsZero() {
		last = bs.baseline.LastPeriod.Format(cycle.DateLayout)
	}
	return fmt.Sprintf("calendar:%s:%d:%d:%s:%s",
		last,
		bs.baseline.CycleLength,
		bs.baseline.PeriodLength,
		first.Format(MonthLayout),
		bs.today.Format(cycle.DateLayout),
	)
}

func (s *predictionService) Day(ctx context.Context, userID uuid.UUID, date domain.Date, source domain.BaselineSource) (*domain.DayResponse, error) {
	ctx, span := otel.Tracer("cycle-tracker-api/prediction").Start(ctx, "PredictionService.Day",
		trace.WithAttributes(attribute.String("date", date.String())),
	)
	defer span.End()

	bs, err := s.basis(ctx, userID, source)
	if err != nil {
		return nil, err
	}

	symptoms, err := s.symptomsByDate(ctx, userID, domain.SymptomEntryFilter{From: &date, To: &date})
	if err != nil {
		return nil, err
	}
	labels := symptoms[date.String()]
	if len(labels) == 0 {
		labels = []string{}
	}

	return &domain.DayResponse{
		Date:              date.String(),
		DayClassification: cycle.ClassifyDay(date.Time, bs.baseline),
		Phase:             cycle.Phase(date.Time, bs.baseline),
		Symptoms:          labels,
	}, nil
}

func (s *predictionService) Dashboard(ctx context.Context, userID uuid.UUID, source domain.BaselineSource) (*domain.DashboardResponse, error) {
	ctx, span := otel.Tracer("cycle-tracker-api/prediction").Start(ctx, "PredictionService.Dashboard")
	defer span.End()

	bs, err := s.basis(ctx, userID, source)
	if err != nil {
		return nil, err
	}

	today := domain.NewDate(bs.today)
	entries, err := s.entryRepo.ListSymptomEntries(ctx, userID, domain.SymptomEntryFilter{From: &today, To: &today})
	if err != nil {
		return nil, err
	}
	todaySymptoms := []domain.TodaySymptom{}
	for _, e := range entries {
		severity := domain.SeverityOf(e.PainLevel)
		for _, name := range e.Symptoms {
			todaySymptoms = append(todaySymptoms, domain.TodaySymptom{Name: name, Severity: severity})
		}
	}

	return &domain.DashboardResponse{
		Today:         today.String(),
		Source:        source,
		Summary:       cycle.Summarize(bs.today, bs.baseline),
		TodaySymptoms: todaySymptoms,
	}, nil
}

// symptomsByDate groups the symptom labels logged in the filter range by
// date, in logging order.
func (s *predictionService) symptomsByDate(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) (map[string][]string, error) {
	entries, err := s.entryRepo.ListSymptomEntries(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	for _, e := range entries {
		key := e.Date.String()
		out[key] = append(out[key], e.Symptoms...)
	}
	return out, nil
}
