package variant

// OverrideStore maps identities to overrides and keeps first-insertion order.
// Set and Unset never delete an entry; only DeleteWhere does.
type OverrideStore struct {
	order   []Identity
	entries map[Identity]Override
}

// NewOverrideStore creates an empty store
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{
		order:   make([]Identity, 0),
		entries: make(map[Identity]Override),
	}
}

// Get returns a copy of the stored override, or an empty override if absent
func (s *OverrideStore) Get(id Identity) Override {
	return s.entries[id].Clone()
}

// Lookup is Get with a presence flag
func (s *OverrideStore) Lookup(id Identity) (Override, bool) {
	o, ok := s.entries[id]
	if !ok {
		return Override{}, false
	}
	return o.Clone(), true
}

// Set merges patch into the entry for id, creating it if absent
func (s *OverrideStore) Set(id Identity, patch Override) {
	current, ok := s.entries[id]
	if !ok {
		s.order = append(s.order, id)
	}
	s.entries[id] = current.Merge(patch)
}

// Unset resets the given fields of an existing entry. Missing entries are left alone.
func (s *OverrideStore) Unset(id Identity, fields ...Field) bool {
	current, ok := s.entries[id]
	if !ok {
		return false
	}
	s.entries[id] = current.Without(fields...)
	return true
}

// DeleteWhere removes every entry whose decoded slot at pos equals value and
// returns the removed identities in insertion order.
// Matching is on the decoded tuple component, never on the raw key text.
func (s *OverrideStore) DeleteWhere(pos int, value string) []Identity {
	removed := make([]Identity, 0)
	kept := make([]Identity, 0, len(s.order))
	for _, id := range s.order {
		if slot, ok := id.Slot(pos); ok && slot == value {
			delete(s.entries, id)
			removed = append(removed, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// Has reports whether an entry exists for id
func (s *OverrideStore) Has(id Identity) bool {
	_, ok := s.entries[id]
	return ok
}

// Len returns the number of entries
func (s *OverrideStore) Len() int {
	return len(s.order)
}

// Identities returns the stored identities in insertion order
func (s *OverrideStore) Identities() []Identity {
	return append([]Identity{}, s.order...)
}
