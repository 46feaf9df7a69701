package types

import (
	"time"

	"github.com/google/uuid"
)

// WeddingType is the catalog of wedding-type profiles offered to callers.
// Only active profiles are listed; the rule tables key on the name.
type WeddingType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (WeddingType) TableName() string {
	return "wedding_types"
}
