package slot

import (
	"atlas-sorter/stack"

	"github.com/google/uuid"
)

type Model struct {
	id          uint32
	containerId uuid.UUID
	index       int16
	kind        Kind
	stack       stack.Model
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) ContainerId() uuid.UUID {
	return m.containerId
}

func (m Model) Index() int16 {
	return m.index
}

func (m Model) Kind() Kind {
	return m.kind
}

func (m Model) Stack() stack.Model {
	return m.stack
}

func (m Model) Empty() bool {
	return m.stack.Empty()
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		id:          m.id,
		containerId: m.containerId,
		index:       m.index,
		kind:        m.kind,
		stack:       m.stack,
	}
}

type ModelBuilder struct {
	id          uint32
	containerId uuid.UUID
	index       int16
	kind        Kind
	stack       stack.Model
}

func NewBuilder(containerId uuid.UUID, index int16) *ModelBuilder {
	return &ModelBuilder{
		containerId: containerId,
		index:       index,
		kind:        KindGeneric,
		stack:       stack.Empty,
	}
}

func (b *ModelBuilder) SetId(id uint32) *ModelBuilder {
	b.id = id
	return b
}

func (b *ModelBuilder) SetKind(kind Kind) *ModelBuilder {
	b.kind = kind
	return b
}

func (b *ModelBuilder) SetStack(s stack.Model) *ModelBuilder {
	b.stack = s
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		id:          b.id,
		containerId: b.containerId,
		index:       b.index,
		kind:        b.kind,
		stack:       b.stack,
	}
}
