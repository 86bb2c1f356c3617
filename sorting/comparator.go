package sorting

import (
	"atlas-sorter/stack"
	"cmp"
	"unicode"
	"unicode/utf8"
)

// uncategorizedOffset pushes items outside every category group behind all real group indices.
const uncategorizedOffset = 1_000_000

// Comparator is a total order over stacks: negative when a sorts first.
type Comparator func(a stack.Model, b stack.Model) int

type comparatorFactory func(o stack.Oracle) Comparator

var comparators = map[Method]comparatorFactory{
	MethodAlphabetical: AlphabeticalComparator,
	MethodCategory:     CategoryComparator,
	MethodQuantity:     QuantityComparator,
	MethodModNamespace: ModNamespaceComparator,
}

// ComparatorFor selects the strategy registered for m.
func ComparatorFor(o stack.Oracle, m Method) (Comparator, error) {
	f, ok := comparators[m]
	if !ok {
		return nil, ErrInvalidMethod
	}
	return f(o), nil
}

func AlphabeticalComparator(o stack.Oracle) Comparator {
	return func(a stack.Model, b stack.Model) int {
		return compareIgnoreCase(o.DisplayName(a), o.DisplayName(b))
	}
}

func CategoryComparator(o stack.Oracle) Comparator {
	alpha := AlphabeticalComparator(o)
	key := func(s stack.Model) int {
		if idx, ok := o.CategoryIndex(s); ok {
			return idx
		}
		return uncategorizedOffset + o.RegistryId(s)
	}
	return func(a stack.Model, b stack.Model) int {
		if r := cmp.Compare(key(a), key(b)); r != 0 {
			return r
		}
		return alpha(a, b)
	}
}

func QuantityComparator(o stack.Oracle) Comparator {
	alpha := AlphabeticalComparator(o)
	return func(a stack.Model, b stack.Model) int {
		if r := cmp.Compare(b.Quantity(), a.Quantity()); r != 0 {
			return r
		}
		return alpha(a, b)
	}
}

func ModNamespaceComparator(o stack.Oracle) Comparator {
	alpha := AlphabeticalComparator(o)
	return func(a stack.Model, b stack.Model) int {
		if r := compareIgnoreCase(o.Namespace(a), o.Namespace(b)); r != 0 {
			return r
		}
		return alpha(a, b)
	}
}

// compareIgnoreCase orders strings rune by rune after folding each rune through
// upper then lower case; a shorter prefix sorts first.
func compareIgnoreCase(a string, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			fa := unicode.ToLower(unicode.ToUpper(ra))
			fb := unicode.ToLower(unicode.ToUpper(rb))
			if fa != fb {
				return cmp.Compare(fa, fb)
			}
		}
		a = a[na:]
		b = b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}
