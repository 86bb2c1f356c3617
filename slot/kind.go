package slot

import (
	"errors"
	"strings"
)

var ErrUnknownKind = errors.New("unknown slot kind")

// Kind is the host's slot taxonomy. Only generic and handler slots hold freely movable items.
type Kind string

const (
	KindGeneric    Kind = "generic"
	KindHandler    Kind = "handler"
	KindResult     Kind = "result"
	KindFuel       Kind = "fuel"
	KindIngredient Kind = "ingredient"
	KindCrafting   Kind = "crafting"
	KindArmor      Kind = "armor"
	KindOffhand    Kind = "offhand"
)

var Kinds = []Kind{KindGeneric, KindHandler, KindResult, KindFuel, KindIngredient, KindCrafting, KindArmor, KindOffhand}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// SortablePredicate reports whether a slot is a plain storage slot that a sort may rewrite.
type SortablePredicate func(m Model) bool

// KindPredicate builds a predicate accepting only the given kinds.
func KindPredicate(kinds ...Kind) SortablePredicate {
	allowed := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		allowed[k] = struct{}{}
	}
	return func(m Model) bool {
		_, ok := allowed[m.Kind()]
		return ok
	}
}

var GenericallySortable = KindPredicate(KindGeneric, KindHandler)
