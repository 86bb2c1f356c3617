package container

import (
	"atlas-sorter/slot"

	"github.com/google/uuid"
)

type Model struct {
	id       uuid.UUID
	ownerId  uuid.UUID
	kind     Kind
	capacity uint32
	slots    []slot.Model
}

func (m Model) Id() uuid.UUID {
	return m.id
}

func (m Model) OwnerId() uuid.UUID {
	return m.ownerId
}

func (m Model) Kind() Kind {
	return m.kind
}

func (m Model) Capacity() uint32 {
	return m.capacity
}

func (m Model) Slots() []slot.Model {
	return m.slots
}

func (m Model) IsPlayerInventory() bool {
	return m.kind == KindPlayer
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		id:       m.id,
		ownerId:  m.ownerId,
		kind:     m.kind,
		capacity: m.capacity,
		slots:    m.slots,
	}
}

type ModelBuilder struct {
	id       uuid.UUID
	ownerId  uuid.UUID
	kind     Kind
	capacity uint32
	slots    []slot.Model
}

func NewBuilder(id uuid.UUID, ownerId uuid.UUID, kind Kind, capacity uint32) *ModelBuilder {
	return &ModelBuilder{
		id:       id,
		ownerId:  ownerId,
		kind:     kind,
		capacity: capacity,
		slots:    make([]slot.Model, 0),
	}
}

func (b *ModelBuilder) AddSlot(s slot.Model) *ModelBuilder {
	b.slots = append(b.slots, s)
	return b
}

func (b *ModelBuilder) SetSlots(ss []slot.Model) *ModelBuilder {
	b.slots = ss
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		id:       b.id,
		ownerId:  b.ownerId,
		kind:     b.kind,
		capacity: b.capacity,
		slots:    b.slots,
	}
}
