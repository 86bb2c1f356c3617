package stack

import "errors"

var ErrExceedsMaxSize = errors.New("stack exceeds max stack size")

// Oracle answers questions about items that only the host item registry knows.
type Oracle interface {
	// SameItemSameComponents reports whether a and b may share a slot.
	SameItemSameComponents(a Model, b Model) bool
	MaxStackSize(m Model) uint32
	DisplayName(m Model) string
	Namespace(m Model) string
	// CategoryIndex returns the index of the first category group containing the item.
	CategoryIndex(m Model) (int, bool)
	// RegistryId is a stable numeric identity for the item.
	RegistryId(m Model) int
}

// Capacity returns how many more items m can absorb.
func Capacity(o Oracle, m Model) uint32 {
	limit := o.MaxStackSize(m)
	if m.Quantity() >= limit {
		return 0
	}
	return limit - m.Quantity()
}
