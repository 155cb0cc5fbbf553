package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Incident — инцидент. Обычный CRUD без workflow-логики; связь с риском
// слабая: related_risk_id не владеет риском и не каскадирует.
type Incident struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Severity    string `gorm:"size:50;not null" json:"severity"` // "Low", "Medium", "Critical" и т.п.
	Status      string `gorm:"size:50;not null" json:"status"`   // "New", "InProgress", "Resolved" и т.п.

	RelatedRiskID *uuid.UUID `gorm:"type:uuid" json:"related_risk_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (i *Incident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
