package exalge

import (
	"fmt"
	"strings"
)

// Slot indexes of a key tuple.
const (
	NameSlot = iota
	HatSlot
	UnitSlot
	TimeSlot
	SubjectSlot

	// BasicSlotCount is the number of slots every key has: name and hat.
	BasicSlotCount = 2
	// SlotCount is the total number of slots in a key tuple.
	SlotCount = BasicSlotCount + extendedSlotCount
)

// ExtendedSlot identifies one of the extension slots that follow name and hat.
type ExtendedSlot int

const (
	// Unit is the unit slot, like a currency or a physical unit.
	Unit ExtendedSlot = iota
	// Time is the time slot, like a fiscal year.
	Time
	// Subject is the subject slot, like a department or an actor.
	Subject

	extendedSlotCount = 3
)

// ExtendedSlots lists all extended slots in key order.
var ExtendedSlots = [extendedSlotCount]ExtendedSlot{Unit, Time, Subject}

// Valid reports whether s is one of the known extended slots.
func (s ExtendedSlot) Valid() bool { return s >= Unit && s <= Subject }

// Index returns the position of the slot in a key tuple.
func (s ExtendedSlot) Index() int { return BasicSlotCount + int(s) }

func (s ExtendedSlot) String() string {
	switch s {
	case Unit:
		return "unit"
	case Time:
		return "time"
	case Subject:
		return "subject"
	default:
		return "unknown"
	}
}

// ParseExtendedSlot parses a slot name, case-insensitively.
func ParseExtendedSlot(s string) (ExtendedSlot, error) {
	switch strings.ToLower(s) {
	case "unit":
		return Unit, nil
	case "time":
		return Time, nil
	case "subject":
		return Subject, nil
	default:
		return 0, invalidArgument("unknown extended slot: %q", s)
	}
}

// slotName returns the display name of a slot index.
func slotName(i int) string {
	switch i {
	case NameSlot:
		return "name"
	case HatSlot:
		return "hat"
	default:
		return ExtendedSlot(i - BasicSlotCount).String()
	}
}

// checkSlot returns an error for an unknown slot.
func checkSlot(s ExtendedSlot) error {
	if !s.Valid() {
		return fmt.Errorf("%w: unknown extended slot %d", ErrInvalidArgument, int(s))
	}
	return nil
}
