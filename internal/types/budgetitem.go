package types

import (
	"time"

	"github.com/google/uuid"
)

type BudgetItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID     uuid.UUID  `gorm:"type:uuid;index;not null;column:project_id" json:"project_id"`
	Project       *Project   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"-"`
	Category      string     `gorm:"not null;size:100;column:category" json:"category"`
	PlannedAmount float64    `gorm:"not null;default:0;column:planned_amount" json:"planned_amount"`
	ActualAmount  float64    `gorm:"not null;default:0;column:actual_amount" json:"actual_amount"`
	ExpenseDate   *time.Time `gorm:"column:expense_date" json:"expense_date"`
	Vendor        string     `gorm:"size:150;column:vendor" json:"vendor"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

func (BudgetItem) TableName() string {
	return "budget_items"
}
