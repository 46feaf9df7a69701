package types

// RestrictedColour marks a colour as forbidden for the bride's dress for a
// wedding type. Presence in the table is the restriction.
type RestrictedColour struct {
	WeddingType      string `gorm:"primaryKey;size:50;column:wedding_type" json:"wedding_type"`
	RestrictedColour string `gorm:"primaryKey;size:20;column:restricted_colour" json:"restricted_colour"`
}

func (RestrictedColour) TableName() string {
	return "restricted_colours"
}
