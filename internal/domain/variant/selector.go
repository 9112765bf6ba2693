package variant

// Selector resolves a shopper's color/size choice against an emitted variant list
type Selector struct {
	records []Record
	colors  []string
	sizes   []string
	color   string
	size    string
}

// NewSelector creates a selector. A dimension with exactly one option is chosen up front.
func NewSelector(records []Record, colors, sizes []string) *Selector {
	s := &Selector{
		records: records,
		colors:  append([]string{}, colors...),
		sizes:   append([]string{}, sizes...),
	}
	if len(s.colors) == 1 {
		s.color = s.colors[0]
	}
	if len(s.sizes) == 1 {
		s.size = s.sizes[0]
	}
	return s
}

// ChooseColor sets the chosen color, "" clears it
func (s *Selector) ChooseColor(color string) {
	s.color = color
}

// ChooseSize sets the chosen size, "" clears it
func (s *Selector) ChooseSize(size string) {
	s.size = size
}

// Color returns the chosen color
func (s *Selector) Color() string {
	return s.color
}

// Size returns the chosen size
func (s *Selector) Size() string {
	return s.size
}

// Selected returns the available variant matching the current choice.
// A one-dimension product matches on that dimension alone.
func (s *Selector) Selected() (Record, bool) {
	switch {
	case s.color != "" && s.size != "":
		return s.find(func(r Record) bool { return r.Color() == s.color && r.Size() == s.size })
	case s.color != "" && len(s.sizes) == 0:
		return s.find(func(r Record) bool { return r.Color() == s.color })
	case s.size != "" && len(s.colors) == 0:
		return s.find(func(r Record) bool { return r.Size() == s.size })
	default:
		return Record{}, false
	}
}

// IsColorAvailable reports whether color can be bought with the chosen size
func (s *Selector) IsColorAvailable(color string) bool {
	if s.size == "" {
		return true
	}
	_, ok := s.find(func(r Record) bool { return r.Color() == color && r.Size() == s.size })
	return ok
}

// IsSizeAvailable reports whether size can be bought with the chosen color
func (s *Selector) IsSizeAvailable(size string) bool {
	if s.color == "" {
		return true
	}
	_, ok := s.find(func(r Record) bool { return r.Size() == size && r.Color() == s.color })
	return ok
}

func (s *Selector) find(match func(Record) bool) (Record, bool) {
	for _, r := range s.records {
		if r.Available && match(r) {
			return r, true
		}
	}
	return Record{}, false
}
