package sorting_test

import (
	"atlas-sorter/catalog"
	"atlas-sorter/catalog/mock"
	"atlas-sorter/stack"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas-sorter/sorting"
)

var stackComparer = cmp.Comparer(func(a, b stack.Model) bool { return a == b })

func stone(n uint32) stack.Model   { return stack.Of("minecraft:stone", n) }
func apple(n uint32) stack.Model   { return stack.Of("minecraft:apple", n) }
func dirt(n uint32) stack.Model    { return stack.Of("minecraft:dirt", n) }
func diamond(n uint32) stack.Model { return stack.Of("minecraft:diamond", n) }

func sortOrFail(t *testing.T, in []stack.Model, p sorting.Preference) []stack.Model {
	t.Helper()
	out, err := sorting.NewSorter(catalog.Default()).Sort(in, p)
	require.NoError(t, err)
	return out
}

func assertStacks(t *testing.T, expected []stack.Model, actual []stack.Model) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, stackComparer); diff != "" {
		t.Fatalf("unexpected stacks (-want +got):\n%s", diff)
	}
}

func TestSortAlphabetical(t *testing.T) {
	out := sortOrFail(t, []stack.Model{stone(1), apple(1), diamond(1)}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{apple(1), diamond(1), stone(1)}, out)
}

func TestMergeTwoHalves(t *testing.T) {
	out := sorting.Merge(catalog.Default(), []stack.Model{stone(32), stone(32)})
	assertStacks(t, []stack.Model{stone(64)}, out)
}

func TestMergeOverflowKeepsRemainder(t *testing.T) {
	out := sorting.Merge(catalog.Default(), []stack.Model{stone(30), stone(30), stone(30)})
	assertStacks(t, []stack.Model{stone(64), stone(26)}, out)
}

func TestMergeSkipsEmptiesAndPreservesFirstAppearance(t *testing.T) {
	out := sorting.Merge(catalog.Default(), []stack.Model{stack.Empty, dirt(5), stone(10), stack.Empty, dirt(7), stone(60)})
	assertStacks(t, []stack.Model{dirt(12), stone(64), stone(6)}, out)
}

func TestMergeFullStacksUnchanged(t *testing.T) {
	out := sorting.Merge(catalog.Default(), []stack.Model{stone(64), dirt(64)})
	assertStacks(t, []stack.Model{stone(64), dirt(64)}, out)
}

func TestMergeNeverCombinesUnstackables(t *testing.T) {
	sword := stack.Of("minecraft:diamond_sword", 1)
	out := sorting.Merge(catalog.Default(), []stack.Model{sword, sword, sword})
	assert.Len(t, out, 3)
}

func TestMergeRespectsComponents(t *testing.T) {
	named := stack.NewBuilder("minecraft:stone").SetQuantity(10).SetComponents(`{"custom_name":"Fancy"}`).Build()
	out := sorting.Merge(catalog.Default(), []stack.Model{named, stone(10), named})
	assertStacks(t, []stack.Model{stack.Clone(named).SetQuantity(20).Build(), stone(10)}, out)
}

func TestMergeRespectsSmallerMaxStack(t *testing.T) {
	pearl := func(n uint32) stack.Model { return stack.Of("minecraft:ender_pearl", n) }
	out := sorting.Merge(catalog.Default(), []stack.Model{pearl(10), pearl(10)})
	assertStacks(t, []stack.Model{pearl(16), pearl(4)}, out)
}

func TestSortQuantityTieBreaksAlphabetically(t *testing.T) {
	p := sorting.NewPreference(sorting.MethodQuantity, sorting.OrderAscending)
	out := sortOrFail(t, []stack.Model{stone(10), apple(10), dirt(10)}, p)
	assertStacks(t, []stack.Model{apple(10), dirt(10), stone(10)}, out)
}

func TestSortQuantityHighestFirst(t *testing.T) {
	p := sorting.NewPreference(sorting.MethodQuantity, sorting.OrderAscending)
	out := sortOrFail(t, []stack.Model{apple(3), stone(40), dirt(12)}, p)
	assertStacks(t, []stack.Model{stone(40), dirt(12), apple(3)}, out)
}

func TestSortCompactsEmptiesToTail(t *testing.T) {
	out := sortOrFail(t, []stack.Model{stack.Empty, stone(1), stack.Empty, apple(1), stack.Empty}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{apple(1), stone(1), stack.Empty, stack.Empty, stack.Empty}, out)
}

func TestSortDescendingPadsAfterReversal(t *testing.T) {
	p := sorting.NewPreference(sorting.MethodAlphabetical, sorting.OrderDescending)
	out := sortOrFail(t, []stack.Model{stack.Empty, stone(1), stack.Empty, apple(1), diamond(1)}, p)
	assertStacks(t, []stack.Model{stone(1), diamond(1), apple(1), stack.Empty, stack.Empty}, out)
}

func TestSortCategory(t *testing.T) {
	p := sorting.NewPreference(sorting.MethodCategory, sorting.OrderAscending)
	pearl := stack.Of("minecraft:ender_pearl", 2)
	sword := stack.Of("minecraft:diamond_sword", 1)
	out := sortOrFail(t, []stack.Model{pearl, diamond(1), apple(1), sword, dirt(3), stone(3)}, p)
	// building blocks, combat, food, ingredients, then uncategorized.
	assertStacks(t, []stack.Model{dirt(3), stone(3), sword, apple(1), diamond(1), pearl}, out)
}

func TestSortModNamespace(t *testing.T) {
	p := sorting.NewPreference(sorting.MethodModNamespace, sorting.OrderAscending)
	alloy := stack.Of("create:andesite_alloy", 4)
	tomato := stack.Of("farmersdelight:tomato", 4)
	out := sortOrFail(t, []stack.Model{tomato, stone(1), alloy, apple(1)}, p)
	assertStacks(t, []stack.Model{alloy, tomato, apple(1), stone(1)}, out)
}

func TestSortEmptyInput(t *testing.T) {
	out := sortOrFail(t, []stack.Model{}, sorting.DefaultPreference)
	assert.Empty(t, out)

	out = sortOrFail(t, make([]stack.Model, 27), sorting.DefaultPreference)
	assert.Len(t, out, 27)
	for _, s := range out {
		assert.True(t, s.Empty())
	}
}

func TestSortAllIdenticalItems(t *testing.T) {
	out := sortOrFail(t, []stack.Model{stone(32), stone(32), stone(32), stone(32), stone(32)}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{stone(64), stone(64), stone(32), stack.Empty, stack.Empty}, out)
}

func totals(stacks []stack.Model) map[string]uint32 {
	r := make(map[string]uint32)
	for _, s := range stacks {
		if !s.Empty() {
			r[s.ItemId()+s.Components()] += s.Quantity()
		}
	}
	return r
}

func randomStacks(r *rand.Rand, n int) []stack.Model {
	ids := []string{"minecraft:stone", "minecraft:apple", "minecraft:ender_pearl", "minecraft:diamond_sword", "create:andesite_alloy", "minecraft:egg"}
	o := catalog.Default()
	out := make([]stack.Model, n)
	for i := range out {
		if r.Intn(3) == 0 {
			continue
		}
		id := ids[r.Intn(len(ids))]
		limit := o.MaxStackSize(stack.Of(id, 1))
		out[i] = stack.Of(id, uint32(r.Intn(int(limit)))+1)
	}
	return out
}

func TestSortInvariants(t *testing.T) {
	o := catalog.Default()
	r := rand.New(rand.NewSource(7))
	s := sorting.NewSorter(o)
	for i := 0; i < 200; i++ {
		in := randomStacks(r, r.Intn(36))
		for _, m := range sorting.Methods {
			for _, ord := range sorting.Orders {
				p := sorting.NewPreference(m, ord)
				out, err := s.Sort(in, p)
				require.NoError(t, err)
				require.Len(t, out, len(in))
				require.Equal(t, totals(in), totals(out))
				for _, st := range out {
					require.LessOrEqual(t, st.Quantity(), o.MaxStackSize(st))
				}

				again, err := s.Sort(in, p)
				require.NoError(t, err)
				assertStacks(t, out, again)

				fixed, err := s.Sort(out, p)
				require.NoError(t, err)
				assertStacks(t, out, fixed)
			}
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := []stack.Model{stone(30), stone(30), apple(1)}
	_ = sortOrFail(t, in, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{stone(30), stone(30), apple(1)}, in)
}

func TestSortRejectsUnknownMethod(t *testing.T) {
	_, err := sorting.NewSorter(catalog.Default()).Sort([]stack.Model{stone(1)}, sorting.NewPreference(sorting.Method(9), sorting.OrderAscending))
	assert.ErrorIs(t, err, sorting.ErrInvalidPreferenceValue)
}

func TestSortCategoryFallsBackToRegistryOrder(t *testing.T) {
	o := &mock.OracleImpl{
		Base: catalog.Default(),
		CategoryIndexFn: func(m stack.Model) (int, bool) {
			if m.ItemId() == "minecraft:stone" {
				return 0, true
			}
			return 0, false
		},
		RegistryIdFn: func(m stack.Model) int {
			if m.ItemId() == "minecraft:apple" {
				return 1
			}
			return 2
		},
	}
	out, err := sorting.NewSorter(o).Sort([]stack.Model{diamond(1), apple(1), stone(1)}, sorting.NewPreference(sorting.MethodCategory, sorting.OrderAscending))
	require.NoError(t, err)
	assertStacks(t, []stack.Model{stone(1), apple(1), diamond(1)}, out)
}

func TestMergeUsesOracleMaxStackSize(t *testing.T) {
	o := &mock.OracleImpl{
		Base:           catalog.Default(),
		MaxStackSizeFn: func(m stack.Model) uint32 { return 10 },
	}
	out, err := sorting.NewSorter(o).Sort([]stack.Model{stone(7), stone(7), stack.Empty}, sorting.DefaultPreference)
	require.NoError(t, err)
	assertStacks(t, []stack.Model{stone(10), stone(4), stack.Empty}, out)
}

func TestSortCategoryOrdersUnknownNamesakesIndependentOfInput(t *testing.T) {
	o := catalog.Default()
	s := sorting.NewSorter(o)
	p := sorting.NewPreference(sorting.MethodCategory, sorting.OrderAscending)
	a := stack.Of("a:foo", 1)
	b := stack.Of("b:foo", 1)
	require.Equal(t, o.DisplayName(a), o.DisplayName(b))

	first, err := s.Sort([]stack.Model{b, a}, p)
	require.NoError(t, err)
	second, err := s.Sort([]stack.Model{a, b}, p)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, stackComparer); diff != "" {
		t.Errorf("category sort depends on input order (-first +second):\n%s", diff)
	}
	assert.NotEqual(t, 0, sorting.CategoryComparator(o)(a, b))
}
