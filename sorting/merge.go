package sorting

import (
	"atlas-sorter/stack"
)

// Merge condenses partial stacks greedily. Each non-empty input tops up earlier
// result stacks of the same item in order, and whatever is left over becomes a
// new result stack. Empties never appear in the output and first-appearance
// order is kept.
func Merge(o stack.Oracle, stacks []stack.Model) []stack.Model {
	result := make([]stack.Model, 0, len(stacks))
	for _, s := range stacks {
		if s.Empty() {
			continue
		}
		remaining := s
		if o.MaxStackSize(remaining) > 1 {
			for i := range result {
				if remaining.Empty() {
					break
				}
				if !o.SameItemSameComponents(result[i], remaining) {
					continue
				}
				space := stack.Capacity(o, result[i])
				if space == 0 {
					continue
				}
				transfer := min(space, remaining.Quantity())
				result[i] = result[i].Grow(transfer)
				remaining = remaining.Shrink(transfer)
			}
		}
		if !remaining.Empty() {
			result = append(result, remaining)
		}
	}
	return result
}
