package container

import (
	"atlas-sorter/kafka/message"
	container2 "atlas-sorter/kafka/message/container"
	"atlas-sorter/kafka/producer"
	model2 "atlas-sorter/model"
	"atlas-sorter/slot"
	"atlas-sorter/stack"
	"context"
	"errors"

	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPlayerInventoryExists = errors.New("player inventory already exists")

type Processor struct {
	l                  logrus.FieldLogger
	ctx                context.Context
	db                 *gorm.DB
	t                  tenant.Model
	slotProcessor      *slot.Processor
	producer           producer.Provider
	GetById            func(id uuid.UUID) (Model, error)
	GetByOwnerId       func(ownerId uuid.UUID) ([]Model, error)
	GetPlayerInventory func(ownerId uuid.UUID) (Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:             l,
		ctx:           ctx,
		db:            db,
		t:             tenant.MustFromContext(ctx),
		slotProcessor: slot.NewProcessor(l, ctx, db),
		producer:      producer.ProviderImpl(l)(ctx),
	}
	p.bind()
	return p
}

func (p *Processor) bind() {
	p.GetById = model2.CollapseProvider(p.ByIdProvider)
	p.GetByOwnerId = model2.CollapseProvider(p.ByOwnerIdProvider)
	p.GetPlayerInventory = model2.CollapseProvider(p.PlayerInventoryProvider)
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	np := &Processor{
		l:             p.l,
		ctx:           p.ctx,
		db:            db,
		t:             p.t,
		slotProcessor: p.slotProcessor.WithTransaction(db),
		producer:      p.producer,
	}
	np.bind()
	return np
}

func (p *Processor) WithProducer(pp producer.Provider) *Processor {
	np := &Processor{
		l:             p.l,
		ctx:           p.ctx,
		db:            p.db,
		t:             p.t,
		slotProcessor: p.slotProcessor,
		producer:      pp,
	}
	np.bind()
	return np
}

func (p *Processor) ByIdProvider(id uuid.UUID) model.Provider[Model] {
	return model.Map(p.DecorateSlots)(model.Map(Make)(getById(p.t.Id(), id)(p.db)))
}

func (p *Processor) ByOwnerIdProvider(ownerId uuid.UUID) model.Provider[[]Model] {
	return model.SliceMap(p.DecorateSlots)(model.SliceMap(Make)(getByOwner(p.t.Id(), ownerId)(p.db))())()
}

func (p *Processor) PlayerInventoryProvider(ownerId uuid.UUID) model.Provider[Model] {
	return model.Map(p.DecorateSlots)(model.Map(Make)(getByOwnerAndKind(p.t.Id(), ownerId, KindPlayer)(p.db)))
}

func (p *Processor) DecorateSlots(m Model) (Model, error) {
	ss, err := p.slotProcessor.GetByContainerId(m.Id())
	if err != nil {
		return Model{}, err
	}
	return Clone(m).SetSlots(ss).Build(), nil
}

// Create persists a container along with one empty slot per entry of its layout.
func (p *Processor) Create(mb *message.Buffer) func(ownerId uuid.UUID, kind Kind, capacity uint32) (Model, error) {
	return func(ownerId uuid.UUID, kind Kind, capacity uint32) (Model, error) {
		p.l.Debugf("Attempting to create [%s] container for owner [%s].", kind, ownerId.String())
		layout, err := Layout(kind, capacity)
		if err != nil {
			return Model{}, err
		}

		var c Model
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			if kind == KindPlayer {
				_, err := p.WithTransaction(tx).GetPlayerInventory(ownerId)
				if err == nil {
					return ErrPlayerInventoryExists
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}

			var err error
			c, err = create(tx, p.t.Id(), ownerId, kind, uint32(len(layout)))
			if err != nil {
				return err
			}
			sp := p.slotProcessor.WithTransaction(tx)
			b := Clone(c)
			for i, sk := range layout {
				s, err := sp.Create(c.Id(), int16(i), sk)
				if err != nil {
					return err
				}
				b.AddSlot(s)
			}
			c = b.Build()
			return mb.Put(container2.EnvEventTopicStatus, CreatedEventStatusProvider(c.Id(), ownerId, c.Kind(), c.Capacity()))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to create [%s] container for owner [%s].", kind, ownerId.String())
			return Model{}, txErr
		}
		p.l.Debugf("Created container [%s] for owner [%s] with capacity [%d].", c.Id().String(), ownerId.String(), c.Capacity())
		return c, nil
	}
}

func (p *Processor) CreateAndEmit(ownerId uuid.UUID, kind Kind, capacity uint32) (Model, error) {
	return message.EmitWithResult[Model](p.producer)(func(buf *message.Buffer) (Model, error) {
		return p.Create(buf)(ownerId, kind, capacity)
	})
}

func (p *Processor) Delete(mb *message.Buffer) func(id uuid.UUID) error {
	return func(id uuid.UUID) error {
		p.l.Debugf("Attempting to delete container [%s].", id.String())
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			c, err := p.WithTransaction(tx).GetById(id)
			if err != nil {
				return err
			}
			err = p.slotProcessor.WithTransaction(tx).DeleteByContainerId(id)
			if err != nil {
				return err
			}
			err = deleteById(tx, p.t.Id(), id)
			if err != nil {
				return err
			}
			return mb.Put(container2.EnvEventTopicStatus, DeletedEventStatusProvider(id, c.OwnerId()))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to delete container [%s].", id.String())
			return txErr
		}
		p.l.Debugf("Deleted container [%s].", id.String())
		return nil
	}
}

func (p *Processor) DeleteAndEmit(id uuid.UUID) error {
	return message.Emit(p.producer)(func(buf *message.Buffer) error {
		return p.Delete(buf)(id)
	})
}

// SetSlot overwrites the occupant of a single slot. Stacks larger than the item allows are rejected.
func (p *Processor) SetSlot(o stack.Oracle) func(containerId uuid.UUID, index int16, s stack.Model) (slot.Model, error) {
	return func(containerId uuid.UUID, index int16, s stack.Model) (slot.Model, error) {
		if !s.Empty() && s.Quantity() > o.MaxStackSize(s) {
			return slot.Model{}, stack.ErrExceedsMaxSize
		}
		var result slot.Model
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			sp := p.slotProcessor.WithTransaction(tx)
			err := sp.UpdateStack(containerId, index, s)
			if err != nil {
				return err
			}
			result, err = sp.GetBySlot(containerId, index)
			return err
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to set slot [%d] of container [%s].", index, containerId.String())
			return slot.Model{}, txErr
		}
		return result, nil
	}
}
