package variant

// Combination is one attribute value per registered dimension, in registry order.
// A dimension with nothing selected contributes the empty string.
type Combination []string

// Identity returns the store key for the combination
func (c Combination) Identity() Identity {
	return NewIdentity(c...)
}

// Equal reports whether both combinations hold the same values in the same slots
func (c Combination) Equal(other Combination) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

func (c Combination) clone() Combination {
	return append(Combination{}, c...)
}

// Generate maps the current selections to the ordered list of combinations.
//
// With nothing selected anywhere the result is empty. Otherwise it is the cross
// product of the populated dimensions, earlier dimensions varying slowest, with
// "" in the slot of every unpopulated dimension.
func Generate(dimensions []AttributeDimension) []Combination {
	if CountCombinations(dimensions) == 0 {
		return []Combination{}
	}

	result := []Combination{make(Combination, len(dimensions))}
	for pos, dim := range dimensions {
		if len(dim.SelectedValues) == 0 {
			continue
		}
		next := make([]Combination, 0, len(result)*len(dim.SelectedValues))
		for _, prefix := range result {
			for _, value := range dim.SelectedValues {
				combo := prefix.clone()
				combo[pos] = value
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

// CountCombinations returns len(Generate(dimensions)) without building the list
func CountCombinations(dimensions []AttributeDimension) int {
	count := 0
	for _, dim := range dimensions {
		n := len(dim.SelectedValues)
		if n == 0 {
			continue
		}
		if count == 0 {
			count = n
			continue
		}
		count *= n
	}
	return count
}
