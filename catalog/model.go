package catalog

import (
	"strings"
)

const DefaultMaxStackSize = 64

type Item struct {
	id           string
	registryId   int
	name         string
	maxStackSize uint32
}

func (i Item) Id() string {
	return i.id
}

func (i Item) RegistryId() int {
	return i.registryId
}

func (i Item) Name() string {
	return i.name
}

func (i Item) MaxStackSize() uint32 {
	return i.maxStackSize
}

// Namespace is the part of the item id before the colon. Ids without one belong to minecraft.
func (i Item) Namespace() string {
	return namespaceOf(i.id)
}

func namespaceOf(id string) string {
	if ns, _, ok := strings.Cut(id, ":"); ok {
		return ns
	}
	return "minecraft"
}

type Group struct {
	name  string
	items map[string]struct{}
}

func (g Group) Name() string {
	return g.name
}

func (g Group) Contains(itemId string) bool {
	_, ok := g.items[itemId]
	return ok
}
