package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusConfirmed  = "confirmed"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

type Project struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BrideName     string     `gorm:"not null;size:100;column:bride_name" json:"bride_name"`
	GroomName     string     `gorm:"not null;size:100;column:groom_name" json:"groom_name"`
	ContactNumber string     `gorm:"not null;size:20;column:contact_number" json:"contact_number"`
	ContactEmail  string     `gorm:"not null;size:255;column:contact_email" json:"contact_email"`
	WeddingDate   time.Time  `gorm:"not null;column:wedding_date" json:"wedding_date"`
	WeddingType   string     `gorm:"size:50;column:wedding_type" json:"wedding_type"`
	BrideColor    string     `gorm:"size:50;column:bride_color" json:"bride_color"`
	Status        string     `gorm:"type:varchar(20);not null;default:'planning'" json:"status"`
	Budget        float64    `gorm:"default:0" json:"budget"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	AssignedTo    *uuid.UUID `gorm:"type:uuid;column:assigned_to" json:"assigned_to"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusPlanning, ProjectStatusConfirmed, ProjectStatusInProgress,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}
