package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiskStatus string

const (
	StatusIdentified  RiskStatus = "Identified"
	StatusAssessed    RiskStatus = "Assessed"
	StatusInTreatment RiskStatus = "InTreatment"
	StatusMonitoring  RiskStatus = "Monitoring"
	StatusAccepted    RiskStatus = "Accepted"
	StatusRejected    RiskStatus = "Rejected"
	StatusTransferred RiskStatus = "Transferred"
	StatusClosed      RiskStatus = "Closed"
)

// AllStatuses — полный перечень статусов (полезно для валидации и тестов).
var AllStatuses = []RiskStatus{
	StatusIdentified,
	StatusAssessed,
	StatusInTreatment,
	StatusMonitoring,
	StatusAccepted,
	StatusRejected,
	StatusTransferred,
	StatusClosed,
}

func (s RiskStatus) Valid() bool {
	switch s {
	case StatusIdentified,
		StatusAssessed,
		StatusInTreatment,
		StatusMonitoring,
		StatusAccepted,
		StatusRejected,
		StatusTransferred,
		StatusClosed:
		return true
	default:
		return false
	}
}

type Risk struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Impact      int        `gorm:"not null" json:"impact"`
	Probability int        `gorm:"not null" json:"probability"`
	Status      RiskStatus `gorm:"type:varchar(50);not null" json:"status"`

	// Классификация (всё необязательное)
	ExternalID       string `gorm:"size:255" json:"external_id,omitempty"`
	Category         string `gorm:"size:100" json:"category,omitempty"`
	Location         string `gorm:"size:255" json:"location,omitempty"`
	Regulation       string `gorm:"size:255" json:"regulation,omitempty"`
	ControlMeasureID string `gorm:"size:255" json:"control_measure_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Score не хранится в БД: всегда пересчитывается из impact * probability
	// при чтении, чтобы правки полей сразу отражались в выдаче.
	Score int `gorm:"-" json:"score"`
}

func (r *Risk) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// CriticalRisk — проекция для рейтинга критичных рисков (risks ⋈ evaluations).
type CriticalRisk struct {
	ID     uuid.UUID  `json:"id"`
	Title  string     `json:"title"`
	Status RiskStatus `json:"status"`
	Score  int        `json:"score"`
}
