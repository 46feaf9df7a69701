package types

// FoodLocation holds the menu, drink, and pre-shoot location suggestions for
// a wedding type. At most one row per wedding type.
type FoodLocation struct {
	WeddingType       string `gorm:"primaryKey;size:50;column:wedding_type" json:"wedding_type"`
	FoodMenu          string `gorm:"not null;type:text;column:food_menu" json:"food_menu"`
	Drinks            string `gorm:"not null;type:text;column:drinks" json:"drinks"`
	PreShootLocations string `gorm:"not null;type:text;column:pre_shoot_locations" json:"pre_shoot_locations"`
}

func (FoodLocation) TableName() string {
	return "food_locations"
}
