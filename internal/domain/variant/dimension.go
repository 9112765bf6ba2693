package variant

import "strings"

// Dimension names an axis of product variation
type Dimension string

const (
	DimensionColor Dimension = "color"
	DimensionSize  Dimension = "size"
)

// DefaultDimensions is the layout used by the product form: color-major, size-minor
var DefaultDimensions = []Dimension{DimensionColor, DimensionSize}

// String returns the dimension name
func (d Dimension) String() string {
	return string(d)
}

// AttributeDimension is one dimension together with its ordered selection
type AttributeDimension struct {
	Name           Dimension
	SelectedValues []string
}

func (d AttributeDimension) indexOf(value string) int {
	for i, v := range d.SelectedValues {
		if v == value {
			return i
		}
	}
	return -1
}

// Registry holds the selected values of every registered dimension.
// Dimension order is fixed at construction and defines combination order.
type Registry struct {
	dimensions []AttributeDimension
	positions  map[Dimension]int
}

// NewRegistry creates a registry for the given dimensions.
// With no names it registers DefaultDimensions. Blank and repeated names are ignored.
func NewRegistry(names ...Dimension) *Registry {
	if len(names) == 0 {
		names = DefaultDimensions
	}
	r := &Registry{
		dimensions: make([]AttributeDimension, 0, len(names)),
		positions:  make(map[Dimension]int, len(names)),
	}
	for _, name := range names {
		if strings.TrimSpace(string(name)) == "" {
			continue
		}
		if _, exists := r.positions[name]; exists {
			continue
		}
		r.positions[name] = len(r.dimensions)
		r.dimensions = append(r.dimensions, AttributeDimension{Name: name})
	}
	return r
}

// Dimensions returns the registered dimension names in order
func (r *Registry) Dimensions() []Dimension {
	names := make([]Dimension, len(r.dimensions))
	for i, d := range r.dimensions {
		names[i] = d.Name
	}
	return names
}

// Position returns the slot index of a dimension inside a combination
func (r *Registry) Position(name Dimension) (int, bool) {
	pos, ok := r.positions[name]
	return pos, ok
}

// Has reports whether the dimension is registered
func (r *Registry) Has(name Dimension) bool {
	_, ok := r.positions[name]
	return ok
}

// Selected returns a copy of the selection for a dimension
func (r *Registry) Selected(name Dimension) []string {
	pos, ok := r.positions[name]
	if !ok {
		return []string{}
	}
	return append([]string{}, r.dimensions[pos].SelectedValues...)
}

// Contains reports whether value is selected in the dimension
func (r *Registry) Contains(name Dimension, value string) bool {
	pos, ok := r.positions[name]
	if !ok {
		return false
	}
	return r.dimensions[pos].indexOf(value) >= 0
}

// AddValue appends value to the dimension's selection.
// Blank values, values already present (case-sensitive) and unknown dimensions are no-ops.
func (r *Registry) AddValue(name Dimension, value string) bool {
	pos, ok := r.positions[name]
	if !ok || strings.TrimSpace(value) == "" {
		return false
	}
	dim := &r.dimensions[pos]
	if dim.indexOf(value) >= 0 {
		return false
	}
	dim.SelectedValues = append(dim.SelectedValues, value)
	return true
}

// RemoveValue drops value from the dimension's selection if present
func (r *Registry) RemoveValue(name Dimension, value string) bool {
	pos, ok := r.positions[name]
	if !ok {
		return false
	}
	dim := &r.dimensions[pos]
	idx := dim.indexOf(value)
	if idx < 0 {
		return false
	}
	dim.SelectedValues = append(dim.SelectedValues[:idx:idx], dim.SelectedValues[idx+1:]...)
	return true
}

// IsEmpty reports whether no dimension has a selected value
func (r *Registry) IsEmpty() bool {
	for _, d := range r.dimensions {
		if len(d.SelectedValues) > 0 {
			return false
		}
	}
	return true
}

// Snapshot returns a deep copy of all dimensions
func (r *Registry) Snapshot() []AttributeDimension {
	out := make([]AttributeDimension, len(r.dimensions))
	for i, d := range r.dimensions {
		out[i] = AttributeDimension{
			Name:           d.Name,
			SelectedValues: append([]string{}, d.SelectedValues...),
		}
	}
	return out
}
