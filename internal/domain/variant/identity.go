package variant

import "strings"

const (
	identitySeparator = '|'
	identityEscape    = '\\'
)

// Identity is the composite key of a combination.
// Components are joined by '|' and any '|' or '\' inside a value is escaped,
// so distinct tuples never collide and the tuple can be decoded exactly.
type Identity string

// NewIdentity encodes the ordered attribute values into an identity
func NewIdentity(values ...string) Identity {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteRune(identitySeparator)
		}
		for _, r := range v {
			if r == identitySeparator || r == identityEscape {
				b.WriteRune(identityEscape)
			}
			b.WriteRune(r)
		}
	}
	return Identity(b.String())
}

// Values decodes the identity back into its combination.
// A dangling escape at the end is kept as a literal backslash.
func (id Identity) Values() Combination {
	values := Combination{}
	var cur strings.Builder
	escaped := false
	for _, r := range string(id) {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == identityEscape:
			escaped = true
		case r == identitySeparator:
			values = append(values, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		cur.WriteRune(identityEscape)
	}
	return append(values, cur.String())
}

// Slot returns the decoded value at the given dimension position
func (id Identity) Slot(pos int) (string, bool) {
	values := id.Values()
	if pos < 0 || pos >= len(values) {
		return "", false
	}
	return values[pos], true
}

// String returns the encoded key
func (id Identity) String() string {
	return string(id)
}
