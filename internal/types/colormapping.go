package types

// ColorMapping maps a generic color name (stored lowercase) to an RGB value.
// It is independent of wedding type and feeds nearest-neighbor mapping for
// colors that have no cultural entry.
type ColorMapping struct {
	ColorName   string `gorm:"primaryKey;size:50;column:color_name" json:"color_name"`
	RGB         string `gorm:"not null;size:20;column:rgb" json:"rgb"`
	Description string `gorm:"size:100;column:description" json:"description"`
}

func (ColorMapping) TableName() string {
	return "color_mappings"
}
