package types

// CulturalColor stores a valid bride color for a wedding type together with
// its RGB value ("r,g,b") and cultural significance. The sentinel colour name
// "default" designates the fallback color for the wedding type.
type CulturalColor struct {
	WeddingType          string `gorm:"primaryKey;size:50;column:wedding_type" json:"wedding_type"`
	ColourName           string `gorm:"primaryKey;size:20;column:colour_name" json:"colour_name"`
	RGB                  string `gorm:"not null;size:20;column:rgb" json:"rgb"`
	CulturalSignificance string `gorm:"size:100;column:cultural_significance" json:"cultural_significance"`
}

func (CulturalColor) TableName() string {
	return "cultural_colors"
}
