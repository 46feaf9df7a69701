package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fallbackRGB covers common color names that appear in rule values but have
// no row in either cultural_colors or color_mappings.
var fallbackRGB = map[string]string{
	"black":       "0,0,0",
	"navy":        "0,0,128",
	"navy blue":   "0,0,128",
	"light green": "144,238,144",
	"light-blue":  "173,216,230",
	"light blue":  "173,216,230",
	"cream":       "255,255,240",
	"ivory":       "255,255,240",
	"champagne":   "247,231,206",
	"golden":      "255,215,0",
	"gold":        "255,215,0",
	"rose gold":   "183,110,121",
	"teal":        "0,128,128",
	"turquoise":   "64,224,208",
	"lavender":    "230,230,250",
	"burgundy":    "128,0,32",
	"beige":       "245,245,220",
	"white":       "255,255,255",
	"silver":      "192,192,192",
	"bronze":      "205,127,50",
	"peach":       "255,218,185",
	"mint":        "152,255,152",
	"sky blue":    "135,206,235",
	"baby blue":   "137,207,240",
	"coral":       "255,127,80",
	"magenta":     "255,0,255",
	"aqua":        "0,255,255",
	"violet":      "238,130,238",
	"plum":        "142,69,133",
	"charcoal":    "54,69,79",
	"khaki":       "195,176,145",
}

// knownRestrictedRGB maps the handful of traditionally restricted raw colors
// to RGB values so a restriction can be recognized even when the name has no
// row in any table.
var knownRestrictedRGB = map[string]string{
	"black":  "0,0,0",
	"gray":   "128,128,128",
	"grey":   "128,128,128",
	"maroon": "128,0,0",
}

// Distance is the Euclidean distance between two "r,g,b" strings. Malformed
// values compare as +Inf on either side so bad stored data degrades ranking
// instead of failing a prediction.
func Distance(rgb1, rgb2 string) float64 {
	a, err1 := parseRGB(rgb1)
	b, err2 := parseRGB(rgb2)
	if err1 != nil || err2 != nil {
		return math.Inf(1)
	}
	dr := float64(b[0] - a[0])
	dg := float64(b[1] - a[1])
	db := float64(b[2] - a[2])
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func parseRGB(rgb string) ([3]int, error) {
	parts := strings.Split(rgb, ",")
	if len(parts) != 3 {
		return [3]int{}, fmt.Errorf("invalid rgb string %q", rgb)
	}
	var out [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return [3]int{}, fmt.Errorf("invalid rgb string %q", rgb)
		}
		out[i] = v
	}
	return out, nil
}

// ParseHex decodes "#RRGGBB" (leading "#" optional) into an RGB triple.
func ParseHex(hexColor string) ([3]int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(trimmed) != 6 {
		return [3]int{}, fmt.Errorf("%w: %q", ErrInvalidColorExpression, hexColor)
	}
	var out [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(trimmed[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]int{}, fmt.Errorf("%w: %q", ErrInvalidColorExpression, hexColor)
		}
		out[i] = int(v)
	}
	return out, nil
}

// RGBToHex converts an "r,g,b" string to an uppercase "#RRGGBB" value.
func RGBToHex(rgb string) (string, bool) {
	t, err := parseRGB(rgb)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("#%02X%02X%02X", t[0], t[1], t[2]), true
}

func rgbString(t [3]int) string {
	return fmt.Sprintf("%d,%d,%d", t[0], t[1], t[2])
}

var componentSplitRe = regexp.MustCompile(`(?i)\s*(?:\band\b|/|&|,)\s*`)

// SplitComponents splits a composite color value such as "Red and White"
// into its parts, preserving the original casing of each component.
func SplitComponents(colorName string) []string {
	if strings.TrimSpace(colorName) == "" {
		return nil
	}
	var parts []string
	for _, p := range componentSplitRe.Split(colorName, -1) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return []string{strings.TrimSpace(colorName)}
	}
	return parts
}

// RGBForName resolves a color name to an "r,g,b" string: cultural colors
// first (any wedding type), then the generic mappings, then the built-in
// fallback table, and finally a blend of the components for composite names.
func (s *Snapshot) RGBForName(colorName string) (string, bool) {
	return s.rgbForName(colorName, true)
}

func (s *Snapshot) rgbForName(colorName string, allowComposite bool) (string, bool) {
	name := fold(colorName)
	if name == "" {
		return "", false
	}
	if rgb, ok := s.culturalRGB[name]; ok {
		return rgb, true
	}
	if rgb, ok := s.mappingRGB[name]; ok {
		return rgb, true
	}
	if rgb, ok := fallbackRGB[name]; ok {
		return rgb, true
	}
	if allowComposite {
		components := SplitComponents(name)
		if len(components) > 1 {
			var triples [][3]int
			for _, part := range components {
				partRGB, ok := s.rgbForName(part, false)
				if !ok {
					continue
				}
				t, err := parseRGB(partRGB)
				if err != nil {
					continue
				}
				triples = append(triples, t)
			}
			if len(triples) > 0 {
				var sum [3]int
				for _, t := range triples {
					sum[0] += t[0]
					sum[1] += t[1]
					sum[2] += t[2]
				}
				n := len(triples)
				blended := [3]int{
					(sum[0] + n/2) / n,
					(sum[1] + n/2) / n,
					(sum[2] + n/2) / n,
				}
				return rgbString(blended), true
			}
		}
	}
	return "", false
}

// Swatch is the display detail for one component of a (possibly composite)
// color value. RGB and Hex are nil when the component cannot be resolved.
type Swatch struct {
	Name string  `json:"name"`
	RGB  *string `json:"rgb"`
	Hex  *string `json:"hex"`
}

// Swatches builds the per-component display swatches for a color value.
// Unmatched components yield nil RGB/hex rather than failing.
func (s *Snapshot) Swatches(colorName string) []Swatch {
	components := SplitComponents(colorName)
	var swatches []Swatch
	for _, component := range components {
		swatches = append(swatches, s.swatchFor(component, false))
	}
	if len(swatches) == 0 && strings.TrimSpace(colorName) != "" {
		swatches = append(swatches, s.swatchFor(colorName, true))
	}
	return swatches
}

func (s *Snapshot) swatchFor(name string, allowComposite bool) Swatch {
	sw := Swatch{Name: name}
	if rgb, ok := s.rgbForName(name, allowComposite); ok {
		sw.RGB = &rgb
		if hex, ok := RGBToHex(rgb); ok {
			sw.Hex = &hex
		}
	}
	return sw
}

// ResolveColor normalizes a raw color expression (hex or name) into a valid,
// non-restricted cultural color for the wedding type. The second return value
// is a human-readable note when a restricted color was substituted.
func (s *Snapshot) ResolveColor(rawColour, weddingType string) (string, string) {
	raw := strings.TrimSpace(rawColour)
	if raw == "" || strings.TrimSpace(weddingType) == "" {
		if dc, ok := s.DefaultColor(weddingType); ok {
			return dc.ColourName, ""
		}
		return "default", ""
	}

	if strings.HasPrefix(raw, "#") {
		return s.resolveHex(raw, weddingType)
	}

	colour := fold(raw)

	// "default" is a sentinel, never an answer: substitute the configured
	// default color or the first usable cultural color.
	if colour == "default" {
		if dc, ok := s.DefaultColor(weddingType); ok && !s.IsRestricted(weddingType, dc.ColourName) {
			return dc.ColourName, ""
		}
		return s.firstValidColour(weddingType), ""
	}

	// The restriction check precedes the existence check: a colour can be
	// restricted without having a cultural entry at all.
	if s.IsRestricted(weddingType, colour) {
		alt := s.restrictedAlternativeByName(colour, weddingType)
		note := fmt.Sprintf(
			"The color '%s' is traditionally restricted for %s. I will suggest the closest alternative color '%s' instead.",
			raw, weddingType, alt,
		)
		return alt, note
	}

	if cc, ok := s.culturalColorFor(weddingType, colour); ok {
		return cc.ColourName, ""
	}

	return s.nearestByName(colour, weddingType), ""
}

func (s *Snapshot) resolveHex(raw, weddingType string) (string, string) {
	rgb, err := ParseHex(raw)
	if err != nil {
		// Malformed hex degrades to the default color rather than failing
		// the whole prediction.
		if dc, ok := s.DefaultColor(weddingType); ok {
			return dc.ColourName, ""
		}
		return "default", ""
	}

	restrictedName := ""
	switch rgbString(rgb) {
	case "0,0,0":
		restrictedName = "black"
	case "128,128,128":
		restrictedName = "gray"
	case "128,0,0":
		restrictedName = "maroon"
	}
	if restrictedName != "" && s.IsRestricted(weddingType, restrictedName) {
		alt := s.restrictedAlternativeByRGB(rgb, weddingType)
		note := fmt.Sprintf(
			"The color '%s' is traditionally restricted for %s. I will suggest the closest alternative color '%s' instead.",
			restrictedName, weddingType, alt,
		)
		return alt, note
	}

	mapped := s.closestCulturalColorByRGB(rgb, weddingType)
	if s.IsRestricted(weddingType, mapped) {
		alt := s.restrictedAlternativeByRGB(rgb, weddingType)
		note := fmt.Sprintf(
			"The color '%s' (closest match to your input) is traditionally restricted for %s. I will suggest the closest alternative color '%s' instead.",
			mapped, weddingType, alt,
		)
		return alt, note
	}
	return mapped, ""
}

// restrictedAlternativeByName prefers the configured default color, falling
// back to nearest-neighbor mapping of the rejected name.
func (s *Snapshot) restrictedAlternativeByName(colour, weddingType string) string {
	if dc, ok := s.DefaultColor(weddingType); ok && !s.IsRestricted(weddingType, dc.ColourName) {
		return dc.ColourName
	}
	return s.nearestByName(colour, weddingType)
}

func (s *Snapshot) restrictedAlternativeByRGB(rgb [3]int, weddingType string) string {
	if dc, ok := s.DefaultColor(weddingType); ok && !s.IsRestricted(weddingType, dc.ColourName) {
		return dc.ColourName
	}
	return s.closestCulturalColorByRGB(rgb, weddingType)
}

// nearestByName maps an unknown colour name to the nearest cultural color by
// RGB distance. The target RGB comes from the generic mappings, the built-in
// fallback table, or the known-restricted table; when no RGB is available
// anywhere the default color (or the first usable one) is returned.
func (s *Snapshot) nearestByName(colour, weddingType string) string {
	target, ok := s.mappingRGB[colour]
	if !ok {
		target, ok = fallbackRGB[colour]
	}
	if !ok {
		target, ok = knownRestrictedRGB[colour]
	}
	if !ok {
		if dc, dok := s.DefaultColor(weddingType); dok && !s.IsRestricted(weddingType, dc.ColourName) {
			return dc.ColourName
		}
		return s.firstValidColour(weddingType)
	}
	t, err := parseRGB(target)
	if err != nil {
		return s.firstValidColour(weddingType)
	}
	return s.closestCulturalColorByRGB(t, weddingType)
}

// closestCulturalColorByRGB finds the nearest non-restricted cultural color
// for the wedding type by Euclidean distance, with a fuzzy wedding-type retry
// when no colors exist under the exact canonical name. It never returns the
// sentinel "default" and never fails: the ladder ends at a literal "red".
func (s *Snapshot) closestCulturalColorByRGB(rgb [3]int, weddingType string) string {
	candidates := s.colorsForFuzzy(weddingType)
	if len(candidates) == 0 {
		for i := range s.CulturalColors {
			if fold(s.CulturalColors[i].ColourName) != "default" {
				return s.CulturalColors[i].ColourName
			}
		}
		return "red"
	}

	target := rgbString(rgb)
	closest := ""
	firstValid := ""
	minDistance := math.Inf(1)
	for _, color := range candidates {
		if fold(color.ColourName) == "default" {
			continue
		}
		if s.IsRestricted(weddingType, color.ColourName) {
			continue
		}
		if firstValid == "" {
			firstValid = color.ColourName
		}
		if d := Distance(target, color.RGB); d < minDistance {
			minDistance = d
			closest = color.ColourName
		}
	}

	if closest != "" {
		return closest
	}
	if firstValid != "" {
		return firstValid
	}
	if dc, ok := s.DefaultColor(weddingType); ok && !s.IsRestricted(weddingType, dc.ColourName) {
		return dc.ColourName
	}
	return "red"
}

// firstValidColour returns the first non-restricted, non-default cultural
// color for the wedding type (fuzzy type retry included), the first cultural
// color anywhere, or the literal "red" as last resort.
func (s *Snapshot) firstValidColour(weddingType string) string {
	for _, color := range s.colorsForFuzzy(weddingType) {
		if fold(color.ColourName) == "default" {
			continue
		}
		if s.IsRestricted(weddingType, color.ColourName) {
			continue
		}
		return color.ColourName
	}
	for i := range s.CulturalColors {
		if fold(s.CulturalColors[i].ColourName) != "default" {
			return s.CulturalColors[i].ColourName
		}
	}
	return "red"
}
