package risk_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sentinelrisk/internal/database"
	"sentinelrisk/internal/models"
	"sentinelrisk/internal/risk"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return database.NewStore(db)
}

func createRisk(t *testing.T, store *database.Store, status models.RiskStatus) *models.Risk {
	t.Helper()

	r := &models.Risk{
		Title:       "data leak via misconfigured bucket",
		Impact:      4,
		Probability: 3,
		Status:      status,
	}
	require.NoError(t, store.CreateRisk(context.Background(), r))
	return r
}

func TestApplyStatusTransition_Success(t *testing.T) {
	store := newTestStore(t)
	svc := risk.NewService(store)
	ctx := context.Background()

	r := createRisk(t, store, models.StatusMonitoring)

	updated, err := svc.ApplyStatusTransition(ctx, r.ID, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.Equal(t, 12, updated.Score)

	entries, err := store.ListHistory(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Monitoring", entries[0].OldStatus)
	assert.Equal(t, "Accepted", entries[0].NewStatus)
}

func TestApplyStatusTransition_InvalidLeavesNothingBehind(t *testing.T) {
	store := newTestStore(t)
	svc := risk.NewService(store)
	ctx := context.Background()

	r := createRisk(t, store, models.StatusIdentified)

	_, err := svc.ApplyStatusTransition(ctx, r.ID, models.StatusInTreatment)
	require.ErrorIs(t, err, risk.ErrInvalidTransition)

	// статус не тронут, истории нет
	current, err := store.GetRiskStatus(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdentified, current)

	entries, err := store.ListHistory(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApplyStatusTransition_UnknownRisk(t *testing.T) {
	store := newTestStore(t)
	svc := risk.NewService(store)

	_, err := svc.ApplyStatusTransition(context.Background(), uuid.New(), models.StatusAssessed)
	require.ErrorIs(t, err, risk.ErrRiskNotFound)
}

// stubStore подменяет CAS-запись, имитируя параллельную смену статуса
// между чтением и записью.
type stubStore struct {
	risk.Store
	status models.RiskStatus
}

func (s *stubStore) GetRiskStatus(ctx context.Context, id uuid.UUID) (models.RiskStatus, error) {
	return s.status, nil
}

func (s *stubStore) SetRiskStatus(ctx context.Context, id uuid.UUID, current, next models.RiskStatus, updatedAt time.Time) (int64, error) {
	return 0, nil // статус уже не равен current
}

func (s *stubStore) Transact(ctx context.Context, fn func(tx risk.Store) error) error {
	return fn(s)
}

func TestApplyStatusTransition_ConcurrentConflict(t *testing.T) {
	svc := risk.NewService(&stubStore{status: models.StatusMonitoring})

	_, err := svc.ApplyStatusTransition(context.Background(), uuid.New(), models.StatusAccepted)
	require.ErrorIs(t, err, risk.ErrTransitionConflict)
}

func TestEvaluate_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	svc := risk.NewService(store)
	ctx := context.Background()

	r := createRisk(t, store, models.StatusAssessed)

	ev, err := svc.Evaluate(ctx, r.ID, 3, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, ev.Severity)
	assert.Equal(t, 4, ev.Likelihood)
	assert.Equal(t, 2, ev.Detectability)
	assert.Equal(t, 24, ev.Score)

	got, err := svc.Evaluation(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, 24, got.Score)
}

func TestEvaluate_ReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	svc := risk.NewService(store)
	ctx := context.Background()

	r := createRisk(t, store, models.StatusAssessed)

	first, err := svc.Evaluate(ctx, r.ID, 2, 2, 2)
	require.NoError(t, err)

	second, err := svc.Evaluate(ctx, r.ID, 5, 4, 3)
	require.NoError(t, err)

	// та же строка, новые факторы и score
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 60, second.Score)

	ranking, err := svc.CriticalRisks(ctx)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, 60, ranking[0].Score)
}

func TestEvaluate_UnknownRisk(t *testing.T) {
	store := newTestStore(t)
	svc := risk.NewService(store)

	_, err := svc.Evaluate(context.Background(), uuid.New(), 3, 3, 3)
	require.ErrorIs(t, err, risk.ErrRiskNotFound)
}

func TestEvaluation_NotFound(t *testing.T) {
	store := newTestStore(t)
	svc := risk.NewService(store)
	ctx := context.Background()

	r := createRisk(t, store, models.StatusIdentified)

	_, err := svc.Evaluation(ctx, r.ID)
	require.ErrorIs(t, err, risk.ErrEvaluationNotFound)
}
