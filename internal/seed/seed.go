// Package seed fills a database with demo users, questionnaire profiles and
// a few months of cycle and symptom history.
package seed

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/logger"
	"github.com/flowise/cycle-tracker/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seededCycles is how many past periods are logged per demo user.
const seededCycles = 4

// namespace derives stable entry IDs so reseeding never duplicates rows.
var namespace = uuid.MustParse("6f1d7c2e-4b1a-4e7e-9a55-0c3f6d2b8a10")

// DemoUser is one seeded account.
type DemoUser struct {
	ID          uuid.UUID
	Timezone    string
	Name        string
	CycleLength int
	Regularity  domain.CycleRegularity
}

// DemoUsers are the accounts Run creates.
var DemoUsers = []DemoUser{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", Name: "Anna", CycleLength: 28, Regularity: domain.RegularityVeryRegular},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", Name: "Maya", CycleLength: 31, Regularity: domain.RegularitySomewhatRegular},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", Name: "Yui", CycleLength: 26, Regularity: domain.RegularityIrregular},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney", Name: "Chloe", CycleLength: 29, Regularity: domain.RegularityUnsure},
}

var demoSymptoms = []string{"cramps", "bloating", "headache", "fatigue", "mood swings", "acne", "back pain"}

// Run seeds the database relative to now. Safe to call multiple times.
func Run(db *gorm.DB, now time.Time, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))
	for _, demo := range DemoUsers {
		user := domain.User{ID: demo.ID, Timezone: demo.Timezone}
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		starts := PeriodStarts(domain.Today(now, user.Location()), demo.CycleLength, seededCycles)
		if err := seedProfile(db, demo, starts[len(starts)-1]); err != nil {
			return err
		}
		if err := seedEntries(db, demo, starts, rng, now); err != nil {
			return err
		}
		log.Info("seeded demo user", "user_id", demo.ID, "timezone", demo.Timezone, "periods", len(starts))
	}

	log.Info("seed completed", "users", len(DemoUsers))
	return nil
}

// PeriodStarts returns count period start dates spaced cycleLength days
// apart, oldest first, with the last one falling within the current cycle
// ending at today.
func PeriodStarts(today domain.Date, cycleLength, count int) []domain.Date {
	latest := today.AddDate(0, 0, -(cycleLength / 3))
	starts := make([]domain.Date, count)
	for i := range starts {
		starts[i] = domain.NewDate(latest.AddDate(0, 0, -cycleLength*(count-1-i)))
	}
	return starts
}

func seedProfile(db *gorm.DB, demo DemoUser, lastPeriod domain.Date) error {
	var existing domain.Profile
	err := db.Where("user_id = ?", demo.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load profile %s: %w", demo.ID, err)
	}

	in := domain.ProfileInput{
		Name:                    demo.Name,
		Age:                     24 + int(demo.ID[0]%10),
		LastPeriodDate:          &lastPeriod,
		AverageCycleLength:      demo.CycleLength,
		AveragePeriodLength:     5,
		CycleRegularity:         demo.Regularity,
		ContraceptiveMethod:     "none",
		SymptomsToTrack:         []string{"cramps", "bloating", "fatigue"},
		MoodTracking:            true,
		PainTracking:            true,
		PrimaryGoal:             "period-prediction",
		NotificationPreferences: []string{"period-reminder"},
		PrivacyLevel:            "high",
	}
	if err := db.Create(in.ToProfile(demo.ID)).Error; err != nil {
		return fmt.Errorf("failed to create profile %s: %w", demo.ID, err)
	}
	return nil
}

func seedEntries(db *gorm.DB, demo DemoUser, starts []domain.Date, rng *rand.Rand, now time.Time) error {
	flow := domain.FlowMedium
	for i, start := range starts {
		entry := domain.CycleEntry{
			ID:        entryID(demo.ID, "period", i),
			UserID:    demo.ID,
			Date:      start,
			Type:      domain.CycleEntryPeriodStart,
			Flow:      &flow,
			CreatedAt: now.UTC(),
		}
		if err := db.Where("id = ?", entry.ID).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create cycle entry: %w", err)
		}

		// Symptoms on the first days of each period.
		for day := 0; day < 3; day++ {
			pain := 2 + rng.Intn(7)
			symptoms := []string{demoSymptoms[rng.Intn(len(demoSymptoms))]}
			if rng.Float32() < 0.5 {
				symptoms = append(symptoms, demoSymptoms[rng.Intn(len(demoSymptoms))])
			}
			symptom := domain.SymptomEntry{
				ID:        entryID(demo.ID, "symptom", i*10+day),
				UserID:    demo.ID,
				Date:      domain.NewDate(start.AddDate(0, 0, day)),
				Symptoms:  symptoms,
				PainLevel: &pain,
				CreatedAt: now.UTC(),
			}
			if err := db.Where("id = ?", symptom.ID).FirstOrCreate(&symptom).Error; err != nil {
				return fmt.Errorf("failed to create symptom entry: %w", err)
			}
		}
	}
	return nil
}

func entryID(userID uuid.UUID, kind string, n int) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s-%s-%d", userID, kind, n)))
}
