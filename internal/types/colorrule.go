package types

// ColorRule maps a (wedding type, bride colour) pair to the suggested colors
// for the rest of the wedding party and the decor. Values may be composite
// names such as "Red and White".
type ColorRule struct {
	WeddingType       string `gorm:"primaryKey;size:50;column:wedding_type" json:"wedding_type"`
	BrideColour       string `gorm:"primaryKey;size:20;column:bride_colour" json:"bride_colour"`
	GroomColour       string `gorm:"not null;size:50;column:groom_colour" json:"groom_colour"`
	BridesmaidsColour string `gorm:"not null;size:50;column:bridesmaids_colour" json:"bridesmaids_colour"`
	BestMenColour     string `gorm:"not null;size:50;column:best_men_colour" json:"best_men_colour"`
	FlowerDecoColour  string `gorm:"not null;size:50;column:flower_deco_colour" json:"flower_deco_colour"`
	HallDecorColour   string `gorm:"not null;size:50;column:hall_decor_colour" json:"hall_decor_colour"`
}

func (ColorRule) TableName() string {
	return "color_rules"
}
