package risk

import (
	"context"
	"time"

	"sentinelrisk/internal/models"

	"github.com/google/uuid"
)

// Store — операции хранилища, которые потребляет workflow. Реализуется
// GORM-хранилищем (internal/database), в тестах подменяется.
type Store interface {
	GetRisk(ctx context.Context, id uuid.UUID) (*models.Risk, error)
	GetRiskStatus(ctx context.Context, id uuid.UUID) (models.RiskStatus, error)

	// SetRiskStatus обновляет статус при условии, что текущий статус в БД
	// всё ещё равен current (compare-and-swap). Возвращает число затронутых
	// строк: 0 — риск исчез или статус уже сменили параллельно.
	SetRiskStatus(ctx context.Context, id uuid.UUID, current, next models.RiskStatus, updatedAt time.Time) (int64, error)

	AppendStatusHistory(ctx context.Context, id uuid.UUID, oldStatus, newStatus models.RiskStatus, changedAt time.Time) error

	InsertEvaluation(ctx context.Context, riskID uuid.UUID, severity, likelihood, detectability, score int) (*models.RiskEvaluation, error)
	GetEvaluation(ctx context.Context, riskID uuid.UUID) (*models.RiskEvaluation, error)

	ListCritical(ctx context.Context) ([]models.CriticalRisk, error)

	// Transact выполняет fn в одной транзакции; Store, переданный в fn,
	// работает внутри неё.
	Transact(ctx context.Context, fn func(tx Store) error) error
}

// Service — оркестратор workflow риска: единственный путь записи для смены
// статуса и для оценок.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ApplyStatusTransition применяет переход статуса:
// чтение текущего статуса -> валидация перехода -> в одной транзакции
// условное обновление статуса и вставка строки истории. Либо статус и
// строка истории фиксируются вместе, либо не фиксируется ничего.
func (s *Service) ApplyStatusTransition(ctx context.Context, id uuid.UUID, requested models.RiskStatus) (*models.Risk, error) {
	current, err := s.store.GetRiskStatus(ctx, id)
	if err != nil {
		return nil, err
	}

	if !IsValidTransition(current, requested) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()

	err = s.store.Transact(ctx, func(tx Store) error {
		affected, err := tx.SetRiskStatus(ctx, id, current, requested, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			// кто-то успел сменить статус (или удалить риск) после нашего чтения
			return ErrTransitionConflict
		}
		return tx.AppendStatusHistory(ctx, id, current, requested, now)
	})
	if err != nil {
		return nil, err
	}

	return s.store.GetRisk(ctx, id)
}

// Evaluate создаёт оценку риска или перезаписывает существующую (связь 1:1).
// Score вычисляется здесь и никогда не принимается от клиента.
func (s *Service) Evaluate(ctx context.Context, riskID uuid.UUID, severity, likelihood, detectability int) (*models.RiskEvaluation, error) {
	// риск должен существовать: слабой FK-проверки в хранилище нет
	if _, err := s.store.GetRiskStatus(ctx, riskID); err != nil {
		return nil, err
	}

	score := EvaluationScore(severity, likelihood, detectability)
	return s.store.InsertEvaluation(ctx, riskID, severity, likelihood, detectability, score)
}

// Evaluation возвращает оценку риска.
func (s *Service) Evaluation(ctx context.Context, riskID uuid.UUID) (*models.RiskEvaluation, error) {
	return s.store.GetEvaluation(ctx, riskID)
}

// CriticalRisks — рейтинг критичных рисков: только риски с оценкой,
// по убыванию score.
func (s *Service) CriticalRisks(ctx context.Context) ([]models.CriticalRisk, error) {
	return s.store.ListCritical(ctx)
}
