package stack

// Model is a quantity of one item plus the opaque component blob that
// distinguishes otherwise identical items.
type Model struct {
	itemId     string
	quantity   uint32
	components string
}

var Empty = Model{}

func (m Model) ItemId() string {
	return m.itemId
}

func (m Model) Quantity() uint32 {
	return m.quantity
}

func (m Model) Components() string {
	return m.components
}

func (m Model) Empty() bool {
	return m.itemId == "" || m.quantity == 0
}

// Grow returns a copy of m holding amount more items.
func (m Model) Grow(amount uint32) Model {
	m.quantity += amount
	return m
}

// Shrink returns a copy of m holding amount fewer items. Shrinking to zero yields Empty.
func (m Model) Shrink(amount uint32) Model {
	if amount >= m.quantity {
		return Empty
	}
	m.quantity -= amount
	return m
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		itemId:     m.itemId,
		quantity:   m.quantity,
		components: m.components,
	}
}

type ModelBuilder struct {
	itemId     string
	quantity   uint32
	components string
}

func NewBuilder(itemId string) *ModelBuilder {
	return &ModelBuilder{
		itemId:   itemId,
		quantity: 1,
	}
}

func (b *ModelBuilder) SetQuantity(quantity uint32) *ModelBuilder {
	b.quantity = quantity
	return b
}

func (b *ModelBuilder) SetComponents(components string) *ModelBuilder {
	b.components = components
	return b
}

func (b *ModelBuilder) Build() Model {
	if b.itemId == "" || b.quantity == 0 {
		return Empty
	}
	return Model{
		itemId:     b.itemId,
		quantity:   b.quantity,
		components: b.components,
	}
}

// Of is shorthand for a stack without components.
func Of(itemId string, quantity uint32) Model {
	return NewBuilder(itemId).SetQuantity(quantity).Build()
}
