package locked

import (
	"errors"
	"fmt"
	"slices"
)

const (
	MinSlot int16 = 0
	MaxSlot int16 = 35
)

var ErrInvalidSlotIndex = errors.New("invalid slot index")

// Model is an immutable set of locked player inventory slot indices.
type Model struct {
	slots []int16
}

var Empty = Model{}

func ValidIndex(i int16) error {
	if i < MinSlot || i > MaxSlot {
		return fmt.Errorf("%w: %d", ErrInvalidSlotIndex, i)
	}
	return nil
}

// ParseIndex narrows a wire value to a slot index.
func ParseIndex(i int) (int16, error) {
	if i < int(MinSlot) || i > int(MaxSlot) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSlotIndex, i)
	}
	return int16(i), nil
}

// FromSlots builds a set from the given indices, ignoring duplicates.
func FromSlots(slots ...int16) (Model, error) {
	s := make([]int16, 0, len(slots))
	for _, i := range slots {
		if err := ValidIndex(i); err != nil {
			return Model{}, err
		}
		s = append(s, i)
	}
	slices.Sort(s)
	return Model{slots: slices.Compact(s)}, nil
}

func (m Model) IsLocked(i int16) bool {
	_, ok := slices.BinarySearch(m.slots, i)
	return ok
}

// Toggle returns a copy of m with i added when absent or removed when present.
func (m Model) Toggle(i int16) Model {
	pos, ok := slices.BinarySearch(m.slots, i)
	if ok {
		return Model{slots: slices.Delete(slices.Clone(m.slots), pos, pos+1)}
	}
	return Model{slots: slices.Insert(slices.Clone(m.slots), pos, i)}
}

// CountInRange counts locked indices in [lo, hi].
func (m Model) CountInRange(lo int16, hi int16) int {
	c := 0
	for _, i := range m.slots {
		if i >= lo && i <= hi {
			c++
		}
	}
	return c
}

// Slots returns the locked indices in ascending order.
func (m Model) Slots() []int16 {
	return slices.Clone(m.slots)
}

func (m Model) Len() int {
	return len(m.slots)
}

func (m Model) Equal(o Model) bool {
	return slices.Equal(m.slots, o.slots)
}
