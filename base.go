package exalge

import (
	"slices"
	"strings"
)

// Base is a concrete key: a key tuple without any wildcard slot.
// It identifies one account dimension of a value in an exchange algebra.
type Base struct {
	KeyTuple
}

// NewBase creates a base from up to SlotCount values in slot order: name, hat, unit, time, subject.
// A missing or empty hat is NoHatKey, other missing or empty values are
// OmittedKey. A wildcard value is an error.
func NewBase(values ...string) (Base, error) {
	if len(values) <= HatSlot || values[HatSlot] == "" {
		values = append(slices.Clone(values), make([]string, max(0, HatSlot+1-len(values)))...)
		values[HatSlot] = NoHatKey
	}
	t, err := NewKeyTuple(OmittedKey, values...)
	if err != nil {
		return Base{}, err
	}
	return BaseOf(t)
}

// BaseOf converts a key tuple into a base. It fails if a slot is a wildcard.
func BaseOf(t KeyTuple) (Base, error) {
	if t.IsZero() {
		return Base{}, invalidArgument("absent key")
	}
	for i, v := range t.slots {
		if v == Wildcard {
			return Base{}, invalidArgument("base %q has a wildcard %s slot", t.key, slotName(i))
		}
	}
	return Base{t}, nil
}

// ParseBase parses a base from its canonical key. Empty slots are filled like NewBase does.
func ParseBase(key string) (Base, error) {
	parts := strings.Split(key, KeyDelimiter)
	if len(parts) != SlotCount {
		return Base{}, invalidArgument("key %q has %d slots, want %d", key, len(parts), SlotCount)
	}
	return NewBase(parts...)
}

// Equal reports whether b and c have the same canonical key.
func (b Base) Equal(c Base) bool { return b.KeyTuple.Equal(c.KeyTuple) }

// Compare compares b and c slot by slot, case-sensitively.
func (b Base) Compare(c Base) int { return b.KeyTuple.Compare(c.KeyTuple) }

// IsHat reports whether the hat slot holds HatKey.
func (b Base) IsHat() bool { return b.Hat() == HatKey }

// IsNoHat reports whether the hat slot holds NoHatKey.
func (b Base) IsNoHat() bool { return b.Hat() == NoHatKey }

// FlipHat returns the base with the opposite hat: a hat base becomes a no-hat
// base and anything else becomes a hat base.
func (b Base) FlipHat() Base {
	if b.IsHat() {
		return Base{b.with(HatSlot, NoHatKey)}
	}
	return Base{b.with(HatSlot, HatKey)}
}

// WithHat returns a copy of b with the given hat value.
func (b Base) WithHat(hat string) (Base, error) {
	if hat == "" {
		return Base{}, invalidArgument("empty hat")
	}
	return BaseOf(b.with(HatSlot, hat))
}
