package variant

import (
	"golang.org/x/text/cases"
)

// FallbackColorHex is shown for colors outside the swatch catalog
const FallbackColorHex = "#CCCCCC"

// ColorSwatch is a suggested color with its display hex
type ColorSwatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var suggestedColors = []ColorSwatch{
	{Name: "Red", Hex: "#FF0000"},
	{Name: "Blue", Hex: "#0000FF"},
	{Name: "Green", Hex: "#00FF00"},
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Pink", Hex: "#FFC0CB"},
	{Name: "Purple", Hex: "#800080"},
	{Name: "Orange", Hex: "#FFA500"},
	{Name: "Brown", Hex: "#A52A2A"},
	{Name: "Grey", Hex: "#808080"},
	{Name: "Navy", Hex: "#000080"},
	{Name: "Beige", Hex: "#F5F5DC"},
	{Name: "Maroon", Hex: "#800000"},
	{Name: "Gold", Hex: "#FFD700"},
	{Name: "Silver", Hex: "#C0C0C0"},
}

// spellings accepted by ColorHex but not offered as suggestions
var colorAliases = map[string]string{
	"Gray": "#808080",
}

var suggestedSizes = []string{
	"XS", "S", "M", "L", "XL", "XXL", "XXXL",
	"Free Size", "One Size",
	"28", "30", "32", "34", "36", "38", "40", "42",
	"Small", "Medium", "Large", "Extra Large",
}

// SuggestedColors returns the color swatch catalog
func SuggestedColors() []ColorSwatch {
	return append([]ColorSwatch{}, suggestedColors...)
}

// SuggestedSizes returns the size catalog
func SuggestedSizes() []string {
	return append([]string{}, suggestedSizes...)
}

// Suggestions returns the suggested values of a dimension, empty for
// dimensions without a catalog
func Suggestions(dim Dimension) []string {
	switch dim {
	case DimensionColor:
		names := make([]string, len(suggestedColors))
		for i, c := range suggestedColors {
			names[i] = c.Name
		}
		return names
	case DimensionSize:
		return SuggestedSizes()
	default:
		return []string{}
	}
}

// ColorHex looks up a swatch by name, ignoring case, and falls back to FallbackColorHex
func ColorHex(name string) string {
	fold := cases.Fold()
	key := fold.String(name)
	for _, c := range suggestedColors {
		if fold.String(c.Name) == key {
			return c.Hex
		}
	}
	for alias, hex := range colorAliases {
		if fold.String(alias) == key {
			return hex
		}
	}
	return FallbackColorHex
}

// SuggestedValues lists catalog values not yet selected in the dimension
func (c *Configurator) SuggestedValues(dim Dimension) []string {
	all := Suggestions(dim)
	out := make([]string, 0, len(all))
	for _, v := range all {
		if !c.registry.Contains(dim, v) {
			out = append(out, v)
		}
	}
	return out
}
