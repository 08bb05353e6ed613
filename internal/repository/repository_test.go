package repository

import (
	"context"
	"testing"
	"time"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection would otherwise get its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := &domain.User{ID: uuid.New(), Timezone: "Europe/Prague"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user.ID
}

func date(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	id := createUser(t, db)

	user, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Prague", user.Timezone)

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exists, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProfileRepository_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	userID := createUser(t, db)

	_, err := repo.Get(ctx, userID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	last := date(t, "2024-01-01")
	require.NoError(t, repo.Save(ctx, &domain.Profile{
		UserID:              userID,
		Name:                "Jane",
		LastPeriodDate:      &last,
		AverageCycleLength:  28,
		AveragePeriodLength: 5,
		SymptomsToTrack:     []string{"cramps", "bloating"},
		PainTracking:        true,
	}))

	got, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.LastPeriodDate.String())
	assert.Equal(t, []string{"cramps", "bloating"}, []string(got.SymptomsToTrack))
	assert.True(t, got.PainTracking)
	createdAt := got.CreatedAt

	require.NoError(t, repo.Save(ctx, &domain.Profile{
		UserID:              userID,
		AverageCycleLength:  30,
		AveragePeriodLength: 4,
	}))

	got, err = repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.AverageCycleLength)
	assert.Empty(t, got.Name)
	assert.Nil(t, got.LastPeriodDate)
	assert.False(t, got.PainTracking)
	assert.Empty(t, got.SymptomsToTrack)
	assert.True(t, got.CreatedAt.Equal(createdAt), "created_at must survive a replace")

	var count int64
	require.NoError(t, db.Model(&domain.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEntryRepository_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEntryRepository(db)
	userID := createUser(t, db)
	other := createUser(t, db)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	flow := domain.FlowHeavy
	entries := []domain.CycleEntry{
		{Date: date(t, "2024-02-28"), Type: domain.CycleEntryPeriodStart, Flow: &flow},
		{Date: date(t, "2024-01-29"), Type: domain.CycleEntryPeriodStart},
		{Date: date(t, "2024-02-10"), Type: domain.CycleEntryOvulation},
		{Date: date(t, "2024-01-01"), Type: domain.CycleEntryPeriodStart},
	}
	for i := range entries {
		entries[i].ID = uuid.New()
		entries[i].UserID = userID
		entries[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.CreateCycleEntry(ctx, &entries[i]))
	}
	require.NoError(t, repo.CreateCycleEntry(ctx, &domain.CycleEntry{
		ID: uuid.New(), UserID: other, Date: date(t, "2024-02-01"), Type: domain.CycleEntryPeriodStart,
	}))

	got, err := repo.ListCycleEntries(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i := range entries {
		assert.Equal(t, entries[i].ID, got[i].ID)
	}
	require.NotNil(t, got[0].Flow)
	assert.Equal(t, domain.FlowHeavy, *got[0].Flow)

	starts, err := repo.ListPeriodStarts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, starts, 3)
	assert.Equal(t, "2024-01-01", starts[0].String())
	assert.Equal(t, "2024-02-28", starts[2].String())
}

func TestEntryRepository_SymptomFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEntryRepository(db)
	userID := createUser(t, db)

	pain := 6
	for i, d := range []string{"2024-01-30", "2024-02-01", "2024-02-15", "2024-03-01"} {
		require.NoError(t, repo.CreateSymptomEntry(ctx, &domain.SymptomEntry{
			ID:        uuid.New(),
			UserID:    userID,
			Date:      date(t, d),
			Symptoms:  []string{"cramps"},
			PainLevel: &pain,
			CreatedAt: time.Date(2024, 3, 2, 0, i, 0, 0, time.UTC),
		}))
	}

	from, to := date(t, "2024-02-01"), date(t, "2024-02-29")
	got, err := repo.ListSymptomEntries(ctx, userID, domain.SymptomEntryFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-02-01", got[0].Date.String())
	assert.Equal(t, "2024-02-15", got[1].Date.String())
	assert.Equal(t, []string{"cramps"}, []string(got[0].Symptoms))
	require.NotNil(t, got[0].PainLevel)
	assert.Equal(t, 6, *got[0].PainLevel)

	all, err := repo.ListSymptomEntries(ctx, userID, domain.SymptomEntryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func insightBatch(userID uuid.UUID, at time.Time, n int) []domain.AIInsight {
	out := make([]domain.AIInsight, n)
	for i := range out {
		out[i] = domain.AIInsight{
			ID:         uuid.New(),
			UserID:     userID,
			Type:       domain.InsightCyclePrediction,
			Title:      "title",
			Content:    "content",
			Confidence: 0.5,
			CreatedAt:  at,
			Position:   i,
		}
	}
	return out
}

func TestInsightRepository_BatchIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewInsightRepository(db)
	userID := createUser(t, db)

	batch := insightBatch(userID, time.Now().UTC(), 3)
	batch[2].ID = batch[0].ID

	assert.Error(t, repo.CreateBatch(ctx, batch))

	got, err := repo.ListAll(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.CreateBatch(ctx, nil))
}

func TestInsightRepository_ListPagination(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewInsightRepository(db)
	userID := createUser(t, db)

	older := insightBatch(userID, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 3)
	newer := insightBatch(userID, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), 4)
	require.NoError(t, repo.CreateBatch(ctx, older))
	require.NoError(t, repo.CreateBatch(ctx, newer))

	all, err := repo.ListAll(ctx, userID)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, older[0].ID, all[0].ID)
	assert.Equal(t, newer[3].ID, all[6].ID)

	page, err := repo.List(ctx, userID, domain.InsightFilter{Limit: 5})
	require.NoError(t, err)
	require.Len(t, page, 6, "one extra record signals another page")
	assert.Equal(t, newer[3].ID, page[0].ID)
	assert.Equal(t, newer[0].ID, page[3].ID)
	assert.Equal(t, older[2].ID, page[4].ID)

	last := page[4]
	cursor := (&pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt, Position: last.Position}).Encode()
	rest, err := repo.List(ctx, userID, domain.InsightFilter{Limit: 5, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, older[1].ID, rest[0].ID)
	assert.Equal(t, older[0].ID, rest[1].ID)

	_, err = repo.List(ctx, userID, domain.InsightFilter{Cursor: "%%%"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStoreRepository_Clear(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	userID := createUser(t, db)
	other := createUser(t, db)

	profiles := NewProfileRepository(db)
	entries := NewEntryRepository(db)
	insights := NewInsightRepository(db)

	for _, id := range []uuid.UUID{userID, other} {
		require.NoError(t, profiles.Save(ctx, &domain.Profile{UserID: id, AverageCycleLength: 28, AveragePeriodLength: 5}))
		require.NoError(t, entries.CreateCycleEntry(ctx, &domain.CycleEntry{ID: uuid.New(), UserID: id, Date: date(t, "2024-01-01"), Type: domain.CycleEntryPeriodStart}))
		require.NoError(t, entries.CreateSymptomEntry(ctx, &domain.SymptomEntry{ID: uuid.New(), UserID: id, Date: date(t, "2024-01-02")}))
		require.NoError(t, insights.CreateBatch(ctx, insightBatch(id, time.Now().UTC(), 3)))
	}

	require.NoError(t, NewStoreRepository(db).Clear(ctx, userID))

	_, err := profiles.Get(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	cycles, _ := entries.ListCycleEntries(ctx, userID)
	assert.Empty(t, cycles)
	symptoms, _ := entries.ListSymptomEntries(ctx, userID, domain.SymptomEntryFilter{})
	assert.Empty(t, symptoms)
	history, _ := insights.ListAll(ctx, userID)
	assert.Empty(t, history)

	exists, err := NewUserRepository(db).Exists(ctx, userID)
	require.NoError(t, err)
	assert.True(t, exists, "clearing the store keeps the user")

	_, err = profiles.Get(ctx, other)
	assert.NoError(t, err)
	otherHistory, _ := insights.ListAll(ctx, other)
	assert.Len(t, otherHistory, 3)
}
