package catalog

import (
	"atlas-sorter/stack"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrDuplicateItem = errors.New("duplicate item")

// Registry is the item oracle backed by a static catalog document.
type Registry struct {
	items  map[string]Item
	groups []Group

	mu      sync.Mutex
	unknown map[string]Item
}

func Load(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Registry, error) {
	var d Document
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return FromDocument(d)
}

func FromDocument(d Document) (*Registry, error) {
	r := &Registry{
		items:   make(map[string]Item, len(d.Items)),
		groups:  make([]Group, 0, len(d.Categories)),
		unknown: make(map[string]Item),
	}
	for i, id := range d.Items {
		if _, ok := r.items[id.Id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, id.Id)
		}
		ms := id.MaxStackSize
		if ms == 0 {
			ms = DefaultMaxStackSize
		}
		name := id.Name
		if name == "" {
			name = fallbackName(id.Id)
		}
		r.items[id.Id] = Item{id: id.Id, registryId: i, name: name, maxStackSize: ms}
	}
	for _, gd := range d.Categories {
		g := Group{name: gd.Name, items: make(map[string]struct{}, len(gd.Items))}
		for _, id := range gd.Items {
			g.items[id] = struct{}{}
		}
		r.groups = append(r.groups, g)
	}
	return r, nil
}

func fallbackName(id string) string {
	_, path, ok := strings.Cut(id, ":")
	if !ok {
		path = id
	}
	return strings.ReplaceAll(path, "_", " ")
}

func (r *Registry) Item(id string) (Item, bool) {
	i, ok := r.items[id]
	return i, ok
}

func (r *Registry) Groups() []Group {
	return r.groups
}

// lookup resolves an item, registering ids missing from the catalog on first sight so every item keeps
// its own registry id for the life of the registry.
func (r *Registry) lookup(m stack.Model) Item {
	if i, ok := r.items[m.ItemId()]; ok {
		return i
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.unknown[m.ItemId()]; ok {
		return i
	}
	i := Item{id: m.ItemId(), registryId: len(r.items) + len(r.unknown), name: fallbackName(m.ItemId()), maxStackSize: DefaultMaxStackSize}
	r.unknown[m.ItemId()] = i
	return i
}

func (r *Registry) SameItemSameComponents(a stack.Model, b stack.Model) bool {
	return a.ItemId() == b.ItemId() && a.Components() == b.Components()
}

func (r *Registry) MaxStackSize(m stack.Model) uint32 {
	return r.lookup(m).MaxStackSize()
}

func (r *Registry) DisplayName(m stack.Model) string {
	return r.lookup(m).Name()
}

func (r *Registry) Namespace(m stack.Model) string {
	return namespaceOf(m.ItemId())
}

func (r *Registry) CategoryIndex(m stack.Model) (int, bool) {
	for i, g := range r.groups {
		if g.Contains(m.ItemId()) {
			return i, true
		}
	}
	return 0, false
}

func (r *Registry) RegistryId(m stack.Model) int {
	return r.lookup(m).RegistryId()
}
