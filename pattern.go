package exalge

// Pattern is a key tuple whose slots may hold the Wildcard.
//
// A pattern selects bases (Matches) and rewrites them (Translate): literal
// slots replace the base values, wildcard slots keep them.
type Pattern struct {
	KeyTuple
}

// NewPattern creates a pattern from up to SlotCount values in slot order: name, hat, unit, time, subject.
// Missing or empty values are wildcards.
func NewPattern(values ...string) (Pattern, error) {
	t, err := NewKeyTuple(Wildcard, values...)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{t}, nil
}

// PatternOf converts a key tuple into a pattern.
func PatternOf(t KeyTuple) Pattern { return Pattern{t} }

// ParsePattern parses a pattern from its canonical key. Empty slots are wildcards.
func ParsePattern(key string) (Pattern, error) {
	t, err := ParseKeyTuple(key, Wildcard)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{t}, nil
}

// Equal reports whether p and q have the same canonical key.
// A wildcard slot is only equal to a wildcard slot.
func (p Pattern) Equal(q Pattern) bool { return p.KeyTuple.Equal(q.KeyTuple) }

// Compare compares p and q slot by slot, case-sensitively.
func (p Pattern) Compare(q Pattern) int { return p.KeyTuple.Compare(q.KeyTuple) }

// IsWildcard reports whether slot i is a wildcard.
func (p Pattern) IsWildcard(i int) bool { return p.slots[i] == Wildcard }

// HasWildcard reports whether any slot is a wildcard.
func (p Pattern) HasWildcard() bool {
	for i := range p.slots {
		if p.IsWildcard(i) {
			return true
		}
	}
	return false
}

// Matches reports whether every slot of p is a wildcard or equals the slot of b.
// Comparison is case-sensitive.
func (p Pattern) Matches(b Base) (bool, error) {
	if b.IsZero() {
		return false, invalidArgument("absent base")
	}
	return p.matches(b), nil
}

func (p Pattern) matches(b Base) bool {
	for i, v := range p.slots {
		if v != Wildcard && v != b.slots[i] {
			return false
		}
	}
	return true
}

// Translate returns a new base taking the literal slots of p and the slots of b where p has a wildcard.
//
// Translate does not check that p matches b.
func (p Pattern) Translate(b Base) (Base, error) {
	if b.IsZero() {
		return Base{}, invalidArgument("absent base")
	}
	return p.translate(b), nil
}

func (p Pattern) translate(b Base) Base {
	slots := p.slots
	for i, v := range slots {
		if v == Wildcard {
			slots[i] = b.slots[i]
		}
	}
	return Base{newKeyTuple(slots)}
}
