package sorting

import (
	"atlas-sorter/stack"
	"slices"
)

type Sorter struct {
	o stack.Oracle
}

func NewSorter(o stack.Oracle) Sorter {
	return Sorter{o: o}
}

func (s Sorter) Oracle() stack.Oracle {
	return s.o
}

// Sort merges, orders and pads stacks. The result always has len(stacks)
// entries: items first in preference order, then empty placeholders.
func (s Sorter) Sort(stacks []stack.Model, p Preference) ([]stack.Model, error) {
	c, err := ComparatorFor(s.o, p.Method())
	if err != nil {
		return nil, err
	}
	originalSize := len(stacks)

	merged := Merge(s.o, stacks)
	items := make([]stack.Model, 0, originalSize)
	for _, m := range merged {
		if !m.Empty() {
			items = append(items, m)
		}
	}

	slices.SortStableFunc(items, c)
	if p.Order() == OrderDescending {
		slices.Reverse(items)
	}

	for len(items) < originalSize {
		items = append(items, stack.Empty)
	}
	return items, nil
}
