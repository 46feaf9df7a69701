package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

type ChecklistTask struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;index;not null;column:project_id" json:"project_id"`
	Project     *Project   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"-"`
	Title       string     `gorm:"not null;size:255;column:title" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;column:assigned_to" json:"assigned_to"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by"`
	CreatedAt   time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (ChecklistTask) TableName() string {
	return "checklist_tasks"
}

func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}
