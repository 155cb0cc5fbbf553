package database

import (
	"context"
	"errors"
	"time"

	"sentinelrisk/internal/models"
	"sentinelrisk/internal/risk"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store — GORM-хранилище поверх одного *gorm.DB. Реализует risk.Store и
// даёт CRUD для рисков и инцидентов.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ risk.Store = (*Store)(nil)

// Transact выполняет fn в одной транзакции БД.
func (s *Store) Transact(ctx context.Context, fn func(tx risk.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// ====== РИСКИ ======

func (s *Store) CreateRisk(ctx context.Context, r *models.Risk) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return err
	}
	r.Score = risk.RiskScore(r.Impact, r.Probability)
	return nil
}

func (s *Store) GetRisk(ctx context.Context, id uuid.UUID) (*models.Risk, error) {
	var r models.Risk
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, risk.ErrRiskNotFound
		}
		return nil, err
	}
	r.Score = risk.RiskScore(r.Impact, r.Probability)
	return &r, nil
}

// ListRisks возвращает все риски со свежевычисленным score.
func (s *Store) ListRisks(ctx context.Context) ([]models.Risk, error) {
	var risks []models.Risk
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&risks).Error; err != nil {
		return nil, err
	}
	for i := range risks {
		risks[i].Score = risk.RiskScore(risks[i].Impact, risks[i].Probability)
	}
	return risks, nil
}

// UpdateRisk перезаписывает редактируемые поля риска. Статус этим путём
// не меняется — для него есть workflow.
func (s *Store) UpdateRisk(ctx context.Context, r *models.Risk) error {
	res := s.db.WithContext(ctx).Model(&models.Risk{}).
		Where("id = ?", r.ID).
		Updates(map[string]interface{}{
			"title":              r.Title,
			"description":        r.Description,
			"impact":             r.Impact,
			"probability":        r.Probability,
			"external_id":        r.ExternalID,
			"category":           r.Category,
			"location":           r.Location,
			"regulation":         r.Regulation,
			"control_measure_id": r.ControlMeasureID,
			"updated_at":         time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return risk.ErrRiskNotFound
	}
	return nil
}

// DeleteRisk удаляет риск вместе с его оценкой и историей статусов
// (каскад в одной транзакции, сирот не оставляем).
func (s *Store) DeleteRisk(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("risk_id = ?", id).Delete(&models.RiskEvaluation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("risk_id = ?", id).Delete(&models.RiskStatusHistory{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Risk{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return risk.ErrRiskNotFound
		}
		return nil
	})
}

// ====== СТАТУС И ИСТОРИЯ ======

func (s *Store) GetRiskStatus(ctx context.Context, id uuid.UUID) (models.RiskStatus, error) {
	var status models.RiskStatus
	res := s.db.WithContext(ctx).Model(&models.Risk{}).
		Select("status").
		Where("id = ?", id).
		Limit(1).
		Scan(&status)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", risk.ErrRiskNotFound
	}
	return status, nil
}

func (s *Store) SetRiskStatus(ctx context.Context, id uuid.UUID, current, next models.RiskStatus, updatedAt time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Risk{}).
		Where("id = ? AND status = ?", id, current).
		Updates(map[string]interface{}{
			"status":     next,
			"updated_at": updatedAt,
		})
	return res.RowsAffected, res.Error
}

func (s *Store) AppendStatusHistory(ctx context.Context, id uuid.UUID, oldStatus, newStatus models.RiskStatus, changedAt time.Time) error {
	entry := models.RiskStatusHistory{
		RiskID:    id,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
		ChangedAt: changedAt,
	}
	return s.db.WithContext(ctx).Create(&entry).Error
}

// ListHistory — история статусов риска по возрастанию changed_at.
func (s *Store) ListHistory(ctx context.Context, riskID uuid.UUID) ([]models.RiskStatusHistory, error) {
	var entries []models.RiskStatusHistory
	err := s.db.WithContext(ctx).
		Where("risk_id = ?", riskID).
		Order("changed_at asc").
		Find(&entries).Error
	return entries, err
}

// ====== ОЦЕНКИ ======

// InsertEvaluation вставляет оценку риска или, если она уже есть,
// перезаписывает факторы и score (логическая связь 1:1).
func (s *Store) InsertEvaluation(ctx context.Context, riskID uuid.UUID, severity, likelihood, detectability, score int) (*models.RiskEvaluation, error) {
	var ev models.RiskEvaluation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("risk_id = ?", riskID).Take(&ev).Error
		switch {
		case err == nil:
			ev.Severity = severity
			ev.Likelihood = likelihood
			ev.Detectability = detectability
			ev.Score = score
			return tx.Save(&ev).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			ev = models.RiskEvaluation{
				RiskID:        riskID,
				Severity:      severity,
				Likelihood:    likelihood,
				Detectability: detectability,
				Score:         score,
			}
			return tx.Create(&ev).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *Store) GetEvaluation(ctx context.Context, riskID uuid.UUID) (*models.RiskEvaluation, error) {
	var ev models.RiskEvaluation
	if err := s.db.WithContext(ctx).Where("risk_id = ?", riskID).Take(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, risk.ErrEvaluationNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// ListCritical — риски с оценкой по убыванию score; при равном score
// порядок детерминирован по id.
func (s *Store) ListCritical(ctx context.Context) ([]models.CriticalRisk, error) {
	var out []models.CriticalRisk
	err := s.db.WithContext(ctx).Model(&models.Risk{}).
		Select("risks.id, risks.title, risks.status, risk_evaluations.score").
		Joins("JOIN risk_evaluations ON risk_evaluations.risk_id = risks.id").
		Order("risk_evaluations.score desc, risks.id asc").
		Scan(&out).Error
	return out, err
}

// ====== ИНЦИДЕНТЫ ======

func (s *Store) CreateIncident(ctx context.Context, in *models.Incident) error {
	return s.db.WithContext(ctx).Create(in).Error
}

func (s *Store) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	var in models.Incident
	if err := s.db.WithContext(ctx).First(&in, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *Store) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	var incidents []models.Incident
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&incidents).Error
	return incidents, err
}

func (s *Store) UpdateIncident(ctx context.Context, in *models.Incident) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Incident{}).
		Where("id = ?", in.ID).
		Updates(map[string]interface{}{
			"title":           in.Title,
			"description":     in.Description,
			"severity":        in.Severity,
			"status":          in.Status,
			"related_risk_id": in.RelatedRiskID,
		})
	return res.RowsAffected, res.Error
}

func (s *Store) DeleteIncident(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Incident{})
	return res.RowsAffected, res.Error
}
