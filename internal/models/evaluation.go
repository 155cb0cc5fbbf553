package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiskEvaluation — количественная оценка риска. Ровно одна на риск:
// повторная оценка перезаписывает факторы и пересчитывает score.
type RiskEvaluation struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RiskID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"risk_id"`

	Severity      int `gorm:"not null" json:"severity"`
	Likelihood    int `gorm:"not null" json:"likelihood"`
	Detectability int `gorm:"not null" json:"detectability"`
	Score         int `gorm:"not null" json:"score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *RiskEvaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
