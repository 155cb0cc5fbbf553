package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiskStatusHistory — журнал смен статуса. Только вставка, записи никогда
// не изменяются и не удаляются (кроме каскада при удалении самого риска).
type RiskStatusHistory struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RiskID uuid.UUID `gorm:"type:uuid;not null;index" json:"risk_id"`

	OldStatus string `gorm:"size:50;not null" json:"old_status"`
	NewStatus string `gorm:"size:50;not null" json:"new_status"`

	ChangedAt time.Time `gorm:"not null" json:"changed_at"`
}

func (h *RiskStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
