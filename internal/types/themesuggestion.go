package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ThemeSuggestion persists a generated suggestion against a project so the
// client can revisit it without re-running the engine.
type ThemeSuggestion struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID         uuid.UUID      `gorm:"type:uuid;index;not null;column:project_id" json:"project_id"`
	Project           *Project       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"-"`
	WeddingType       string         `gorm:"not null;size:100;column:wedding_type" json:"wedding_type"`
	BrideColour       string         `gorm:"not null;size:50;column:bride_colour" json:"bride_colour"`
	GroomColour       string         `gorm:"size:100;column:groom_colour" json:"groom_colour"`
	BridesmaidsColour string         `gorm:"size:100;column:bridesmaids_colour" json:"bridesmaids_colour"`
	BestMenColour     string         `gorm:"size:100;column:best_men_colour" json:"best_men_colour"`
	FlowerDecoColour  string         `gorm:"size:100;column:flower_deco_colour" json:"flower_deco_colour"`
	HallDecorColour   string         `gorm:"size:100;column:hall_decor_colour" json:"hall_decor_colour"`
	FoodMenu          string         `gorm:"type:text;column:food_menu" json:"food_menu"`
	Drinks            string         `gorm:"type:text;column:drinks" json:"drinks"`
	PreShootLocations string         `gorm:"type:text;column:pre_shoot_locations" json:"pre_shoot_locations"`
	ColorDetails      datatypes.JSON `gorm:"column:color_details" json:"color_details"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
}

func (ThemeSuggestion) TableName() string {
	return "theme_suggestions"
}
