package sorter

import (
	"atlas-sorter/sorting"
	"atlas-sorter/stack"
	"errors"
)

var ErrMismatchedLocks = errors.New("lock flags do not match slots")

// SortSlots sorts a region while keeping locked slots in place. occupants and locked are parallel:
// locked[i] pins occupants[i]. Locked stacks first absorb matching unlocked items in slot order, then
// the remaining unlocked items are sorted into the unlocked positions. The result is parallel to the input.
func SortSlots(s sorting.Sorter, occupants []stack.Model, locked []bool, p sorting.Preference) ([]stack.Model, error) {
	if len(occupants) != len(locked) {
		return nil, ErrMismatchedLocks
	}

	var lockedPos, unlockedPos []int
	for i := range occupants {
		if locked[i] {
			lockedPos = append(lockedPos, i)
		} else {
			unlockedPos = append(unlockedPos, i)
		}
	}

	result := make([]stack.Model, len(occupants))
	unlocked := make([]stack.Model, len(unlockedPos))
	for i, pos := range unlockedPos {
		unlocked[i] = occupants[pos]
	}
	for _, pos := range lockedPos {
		result[pos] = absorb(s.Oracle(), occupants[pos], unlocked)
	}

	sorted, err := s.Sort(unlocked, p)
	if err != nil {
		return nil, err
	}
	for i, pos := range unlockedPos {
		result[pos] = sorted[i]
	}
	return result, nil
}

// absorb tops target up from matching pool entries in order, draining them in place.
func absorb(o stack.Oracle, target stack.Model, pool []stack.Model) stack.Model {
	if target.Empty() || o.MaxStackSize(target) <= 1 {
		return target
	}
	for i := range pool {
		space := stack.Capacity(o, target)
		if space == 0 {
			break
		}
		if pool[i].Empty() || !o.SameItemSameComponents(target, pool[i]) {
			continue
		}
		transfer := min(space, pool[i].Quantity())
		target = target.Grow(transfer)
		pool[i] = pool[i].Shrink(transfer)
	}
	return target
}
