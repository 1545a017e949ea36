package exalge

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reserved key values.
const (
	// Wildcard matches any value in a pattern slot.
	Wildcard = "*"
	// OmittedKey fills the slots of a base that were not given.
	OmittedKey = "#"
	// HatKey is the canonical hat value.
	HatKey = "HAT"
	// NoHatKey is the canonical no-hat value.
	NoHatKey = "NO_HAT"
	// HatShorthand is the single character spelling of HatKey.
	HatShorthand = "^"
)

// defaultForbidden lists the characters a key may not contain, in addition to whitespace.
const defaultForbidden = `<>-,^%&?|@'"`

// KeyRules are the validation rules applied to keys read from persisted files.
//
// The zero value forbids nothing and recognizes only the canonical hat values.
type KeyRules struct {
	// Forbidden lists characters a key may not contain.
	Forbidden string
	// ForbidSpace forbids any unicode white space in a key.
	ForbidSpace bool
	// HatAliases are alternative spellings of HatKey, compared case-insensitively.
	HatAliases []string
	// NoHatAliases are alternative spellings of NoHatKey, compared case-insensitively.
	NoHatAliases []string
	// StrictHat rejects hat values that are neither a hat nor a no-hat spelling.
	StrictHat bool
}

// DefaultRules returns the rules used by the CSV and XML formats unless told otherwise.
func DefaultRules() KeyRules {
	return KeyRules{
		Forbidden:   defaultForbidden,
		ForbidSpace: true,
		HatAliases:  []string{HatShorthand},
		StrictHat:   true,
	}
}

// Validate checks that the rules are consistent.
//
// The key delimiter must be forbidden, so that canonical keys can be split back into slots,
// and the wildcard must not be, so that patterns can be written.
func (r KeyRules) Validate() error {
	var errs error
	if !strings.Contains(r.Forbidden, KeyDelimiter) {
		errs = errors.Join(errs, fmt.Errorf("forbidden characters must include the key delimiter %q", KeyDelimiter))
	}
	if strings.Contains(r.Forbidden, Wildcard) {
		errs = errors.Join(errs, fmt.Errorf("forbidden characters must not include the wildcard %q", Wildcard))
	}
	for _, alias := range r.HatAliases {
		if r.isNoHat(alias) {
			errs = errors.Join(errs, fmt.Errorf("hat alias %q is also a no-hat spelling", alias))
		}
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, errs)
	}
	return nil
}

// CheckKey returns an error if key is empty or contains a forbidden character.
// pos is the byte offset of the offending character, or -1.
func (r KeyRules) CheckKey(key string) (pos int, err error) {
	if key == "" {
		return -1, errors.New("empty key")
	}
	for i, c := range key {
		if r.ForbidSpace && unicode.IsSpace(c) {
			return i, fmt.Errorf("key %q contains white space at offset %d", key, i)
		}
		if strings.ContainsRune(r.Forbidden, c) {
			return i, fmt.Errorf("key %q contains forbidden character %q", key, c)
		}
		if c == utf8.RuneError {
			return i, fmt.Errorf("key %q is not valid UTF-8", key)
		}
	}
	return -1, nil
}

// ParseHat normalizes a hat value: recognized hat spellings become HatKey and
// recognized no-hat spellings become NoHatKey. Other values are rejected when
// StrictHat is set, otherwise they are checked like any key.
func (r KeyRules) ParseHat(s string) (string, error) {
	switch {
	case r.isHat(s):
		return HatKey, nil
	case r.isNoHat(s):
		return NoHatKey, nil
	case r.StrictHat:
		return "", fmt.Errorf("invalid hat %q: want %s or %s", s, HatKey, NoHatKey)
	}
	if _, err := r.CheckKey(s); err != nil {
		return "", err
	}
	return s, nil
}

func (r KeyRules) isHat(s string) bool {
	return strings.EqualFold(s, HatKey) || slices.ContainsFunc(r.HatAliases, func(a string) bool { return strings.EqualFold(s, a) })
}

func (r KeyRules) isNoHat(s string) bool {
	return strings.EqualFold(s, NoHatKey) || slices.ContainsFunc(r.NoHatAliases, func(a string) bool { return strings.EqualFold(s, a) })
}

// ParseBase parses a base from a key of up to SlotCount slots joined by
// KeyDelimiter, like "Cash-HAT-JPY". Each slot is validated like a file value:
// missing or blank slots are OmittedKey, a missing or blank hat is NoHatKey and
// hat spellings are normalized.
func (r KeyRules) ParseBase(key string) (Base, error) {
	t, err := r.parseKey(key, OmittedKey)
	if err != nil {
		return Base{}, err
	}
	return Base{t}, nil
}

// ParsePattern is like ParseBase for a pattern: missing or blank slots are wildcards.
func (r KeyRules) ParsePattern(key string) (Pattern, error) {
	t, err := r.parseKey(key, Wildcard)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{t}, nil
}

func (r KeyRules) parseKey(key, blank string) (KeyTuple, error) {
	if strings.TrimSpace(key) == "" {
		return KeyTuple{}, invalidArgument("empty key")
	}
	parts := strings.Split(key, KeyDelimiter)
	if len(parts) > SlotCount {
		return KeyTuple{}, invalidArgument("key %q has %d slots, want at most %d", key, len(parts), SlotCount)
	}
	var slots [SlotCount]string
	for i := range slots {
		var s string
		if i < len(parts) {
			s = parts[i]
		}
		v, _, err := r.parseSlot(i, s, blank)
		if err != nil {
			return KeyTuple{}, fmt.Errorf("%w: invalid %s in %q: %w", ErrInvalidArgument, slotName(i), key, err)
		}
		slots[i] = v
	}
	return newKeyTuple(slots), nil
}

// parseSlot validates one slot value read from a file.
//
// A blank value becomes blank, which is Wildcard for patterns and OmittedKey
// for bases (NoHatKey for the hat of a base), then the hat slot is normalized, then the value is checked
// against the forbidden characters. A wildcard is only accepted when blank is
// the wildcard. pos is the byte offset of the offending character in s, or -1.
func (r KeyRules) parseSlot(slot int, s, blank string) (v string, pos int, err error) {
	switch {
	case strings.TrimSpace(s) == "" && slot == HatSlot && blank != Wildcard:
		return NoHatKey, -1, nil
	case strings.TrimSpace(s) == "":
		return blank, -1, nil
	case s == Wildcard && blank == Wildcard:
		return Wildcard, -1, nil
	case s == Wildcard:
		return "", 0, fmt.Errorf("wildcard is not allowed in the %s of a base", slotName(slot))
	case slot == HatSlot:
		v, err := r.ParseHat(s)
		return v, -1, err
	}
	pos, err = r.CheckKey(s)
	if err != nil {
		return "", pos, err
	}
	return s, -1, nil
}
