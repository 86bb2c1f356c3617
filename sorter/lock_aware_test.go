package sorter_test

import (
	"atlas-sorter/catalog"
	"atlas-sorter/sorter"
	"atlas-sorter/sorting"
	"atlas-sorter/stack"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stackComparer = cmp.Comparer(func(a, b stack.Model) bool { return a == b })

func stone(n uint32) stack.Model   { return stack.Of("minecraft:stone", n) }
func apple(n uint32) stack.Model   { return stack.Of("minecraft:apple", n) }
func dirt(n uint32) stack.Model    { return stack.Of("minecraft:dirt", n) }
func diamond(n uint32) stack.Model { return stack.Of("minecraft:diamond", n) }
func sword() stack.Model           { return stack.Of("minecraft:diamond_sword", 1) }

func testSorter() sorting.Sorter {
	return sorting.NewSorter(catalog.Default())
}

func sortSlots(t *testing.T, in []stack.Model, locks []bool, p sorting.Preference) []stack.Model {
	t.Helper()
	out, err := sorter.SortSlots(testSorter(), in, locks, p)
	require.NoError(t, err)
	return out
}

func assertStacks(t *testing.T, expected []stack.Model, actual []stack.Model) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, stackComparer); diff != "" {
		t.Fatalf("unexpected stacks (-want +got):\n%s", diff)
	}
}

func TestLockedSlotKeepsPosition(t *testing.T) {
	out := sortSlots(t, []stack.Model{stone(1), diamond(1), apple(1)}, []bool{true, false, false}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{stone(1), apple(1), diamond(1)}, out)
}

func TestLockedStackAbsorbsUpToMax(t *testing.T) {
	in := []stack.Model{stone(50), dirt(1), stone(32), stack.Empty}
	out := sortSlots(t, in, []bool{true, false, false, false}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{stone(64), dirt(1), stone(18), stack.Empty}, out)
}

func TestLockedStackAbsorbsFromSeveralSources(t *testing.T) {
	in := []stack.Model{stone(3), stone(3), stack.Empty, stone(60)}
	out := sortSlots(t, in, []bool{false, false, false, true}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{stone(2), stack.Empty, stack.Empty, stone(64)}, out)
}

func TestAllLockedIsNoOp(t *testing.T) {
	in := []stack.Model{stone(10), apple(3), stack.Empty, stone(5)}
	out := sortSlots(t, in, []bool{true, true, true, true}, sorting.NewPreference(sorting.MethodQuantity, sorting.OrderDescending))
	assertStacks(t, in, out)
}

func TestNoLocksMatchesSort(t *testing.T) {
	in := []stack.Model{stone(10), apple(3), stack.Empty, stone(60), diamond(2), dirt(64)}
	for _, m := range sorting.Methods {
		for _, o := range sorting.Orders {
			p := sorting.NewPreference(m, o)
			expected, err := testSorter().Sort(in, p)
			require.NoError(t, err)
			out := sortSlots(t, in, make([]bool, len(in)), p)
			assertStacks(t, expected, out)
		}
	}
}

func TestLockedEmptySlotStaysEmpty(t *testing.T) {
	in := []stack.Model{stack.Empty, apple(1), stone(1)}
	out := sortSlots(t, in, []bool{true, false, false}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{stack.Empty, apple(1), stone(1)}, out)
}

func TestLockedFullOrUnstackableDoesNotAbsorb(t *testing.T) {
	in := []stack.Model{stone(64), sword(), stone(5), sword()}
	out := sortSlots(t, in, []bool{true, true, false, false}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{stone(64), sword(), sword(), stone(5)}, out)
}

func TestLockedDifferentComponentsDoesNotAbsorb(t *testing.T) {
	named := stack.NewBuilder("minecraft:stone").SetQuantity(10).SetComponents(`{"custom_name":"Keep"}`).Build()
	in := []stack.Model{named, stone(10)}
	out := sortSlots(t, in, []bool{true, false}, sorting.DefaultPreference)
	assertStacks(t, []stack.Model{named, stone(10)}, out)
}

func TestMismatchedLocks(t *testing.T) {
	_, err := sorter.SortSlots(testSorter(), []stack.Model{stone(1)}, []bool{}, sorting.DefaultPreference)
	assert.True(t, errors.Is(err, sorter.ErrMismatchedLocks))
}

func TestLockAwareInvariants(t *testing.T) {
	o := catalog.Default()
	ids := []string{"minecraft:stone", "minecraft:apple", "minecraft:egg", "minecraft:diamond_sword", "create:andesite_alloy"}
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(27)
		in := make([]stack.Model, n)
		locks := make([]bool, n)
		for i := range in {
			locks[i] = rng.Intn(4) == 0
			if rng.Intn(3) == 0 {
				in[i] = stack.Empty
				continue
			}
			s := stack.Of(ids[rng.Intn(len(ids))], 1)
			in[i] = stack.Of(s.ItemId(), 1+uint32(rng.Intn(int(o.MaxStackSize(s)))))
		}
		p := sorting.NewPreference(sorting.Methods[rng.Intn(len(sorting.Methods))], sorting.Orders[rng.Intn(len(sorting.Orders))])

		out := sortSlots(t, in, locks, p)
		require.Len(t, out, n)

		totals := func(ss []stack.Model) map[string]uint32 {
			r := make(map[string]uint32)
			for _, s := range ss {
				if !s.Empty() {
					r[s.ItemId()] += s.Quantity()
				}
			}
			return r
		}
		assert.Equal(t, totals(in), totals(out))

		for i := range out {
			if !out[i].Empty() {
				assert.LessOrEqual(t, out[i].Quantity(), o.MaxStackSize(out[i]))
			}
			if locks[i] {
				assert.Equal(t, in[i].ItemId(), out[i].ItemId())
				assert.GreaterOrEqual(t, out[i].Quantity(), in[i].Quantity())
			}
		}
	}
}
