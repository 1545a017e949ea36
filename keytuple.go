package exalge

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeyDelimiter joins the slots of a key tuple into its canonical key.
const KeyDelimiter = "-"

// KeyTuple is an immutable, ordered tuple of the five key slots:
// name, hat, unit, time and subject.
//
// Every slot holds a non-empty string. Two tuples are equal when their
// canonical keys are equal, use Equal rather than ==.
type KeyTuple struct {
	slots [SlotCount]string
	key   string
	hash  *lazyHash
}

// lazyHash caches the hash of a canonical key. It is shared by copies of the same tuple.
type lazyHash struct {
	done bool
	sum  uint64
}

// NewKeyTuple creates a key tuple from up to SlotCount values in slot order.
// Missing or empty values are replaced by def, which must not be empty.
// "^", "hat" and "no_hat" hats are stored as HatKey and NoHatKey.
func NewKeyTuple(def string, values ...string) (KeyTuple, error) {
	if def == "" {
		return KeyTuple{}, invalidArgument("default key is empty")
	}
	if len(values) > SlotCount {
		return KeyTuple{}, invalidArgument("too many key values: got %d, want at most %d", len(values), SlotCount)
	}
	var slots [SlotCount]string
	for i := range slots {
		slots[i] = def
		if i < len(values) && values[i] != "" {
			slots[i] = values[i]
		}
	}
	return newKeyTuple(slots), nil
}

// newKeyTuple creates a key tuple from slots that are known to be non-empty.
// Hat spellings are stored in their canonical form.
func newKeyTuple(slots [SlotCount]string) KeyTuple {
	slots[HatSlot] = canonicalHat(slots[HatSlot])
	return KeyTuple{
		slots: slots,
		key:   strings.Join(slots[:], KeyDelimiter),
		hash:  new(lazyHash),
	}
}

// canonicalHat returns HatKey for "^" and any case of "hat", NoHatKey for any
// case of "no_hat", and s otherwise.
func canonicalHat(s string) string {
	switch {
	case s == HatShorthand || strings.EqualFold(s, HatKey):
		return HatKey
	case strings.EqualFold(s, NoHatKey):
		return NoHatKey
	}
	return s
}

// ParseKeyTuple parses a canonical key. Empty slots are replaced by def.
func ParseKeyTuple(key, def string) (KeyTuple, error) {
	parts := strings.Split(key, KeyDelimiter)
	if len(parts) != SlotCount {
		return KeyTuple{}, invalidArgument("key %q has %d slots, want %d", key, len(parts), SlotCount)
	}
	return NewKeyTuple(def, parts...)
}

// IsZero reports whether t is the zero value, the absent key.
func (t KeyTuple) IsZero() bool { return t.key == "" }

func (t KeyTuple) Name() string    { return t.slots[NameSlot] }
func (t KeyTuple) Hat() string     { return t.slots[HatSlot] }
func (t KeyTuple) Unit() string    { return t.slots[UnitSlot] }
func (t KeyTuple) Time() string    { return t.slots[TimeSlot] }
func (t KeyTuple) Subject() string { return t.slots[SubjectSlot] }

// Slots returns a copy of the slot values in key order.
func (t KeyTuple) Slots() [SlotCount]string { return t.slots }

// Extended returns the value of an extended slot.
func (t KeyTuple) Extended(s ExtendedSlot) (string, error) {
	if err := checkSlot(s); err != nil {
		return "", err
	}
	return t.slots[s.Index()], nil
}

// Key returns the canonical key: slot values joined by KeyDelimiter.
func (t KeyTuple) Key() string { return t.key }

func (t KeyTuple) String() string { return t.key }

// Equal reports whether t and u have the same canonical key.
func (t KeyTuple) Equal(u KeyTuple) bool { return t.key == u.key }

// Hash returns the hash of the canonical key. It is computed on first use.
func (t KeyTuple) Hash() uint64 {
	if t.hash == nil {
		return xxhash.Sum64String(t.key)
	}
	if !t.hash.done {
		t.hash.sum = xxhash.Sum64String(t.key)
		t.hash.done = true
	}
	return t.hash.sum
}

// Compare compares t and u slot by slot in key order, case-sensitively.
// The first slot that differs decides.
func (t KeyTuple) Compare(u KeyTuple) int {
	for i := range t.slots {
		if c := strings.Compare(t.slots[i], u.slots[i]); c != 0 {
			return c
		}
	}
	return 0
}

// CompareFold is like Compare but compares slots case-insensitively.
func (t KeyTuple) CompareFold(u KeyTuple) int {
	for i := range t.slots {
		if c := strings.Compare(strings.ToLower(t.slots[i]), strings.ToLower(u.slots[i])); c != 0 {
			return c
		}
	}
	return 0
}

// with returns a copy of t where slot i holds v.
func (t KeyTuple) with(i int, v string) KeyTuple {
	slots := t.slots
	slots[i] = v
	return newKeyTuple(slots)
}
