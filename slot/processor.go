package slot

import (
	model2 "atlas-sorter/model"
	"atlas-sorter/stack"
	"context"

	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l                logrus.FieldLogger
	ctx              context.Context
	db               *gorm.DB
	t                tenant.Model
	GetByContainerId func(containerId uuid.UUID) ([]Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:   l,
		ctx: ctx,
		db:  db,
		t:   tenant.MustFromContext(ctx),
	}
	p.GetByContainerId = model2.CollapseProvider(p.ByContainerIdProvider)
	return p
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	np := &Processor{
		l:   p.l,
		ctx: p.ctx,
		db:  db,
		t:   p.t,
	}
	np.GetByContainerId = model2.CollapseProvider(np.ByContainerIdProvider)
	return np
}

func (p *Processor) ByContainerIdProvider(containerId uuid.UUID) model.Provider[[]Model] {
	return model.SliceMap(Make)(getByContainerId(p.t.Id(), containerId)(p.db))()
}

func (p *Processor) GetBySlot(containerId uuid.UUID, index int16) (Model, error) {
	return model.Map(Make)(getBySlot(p.t.Id(), containerId, index)(p.db))()
}

func (p *Processor) Create(containerId uuid.UUID, index int16, kind Kind) (Model, error) {
	return create(p.db, p.t.Id(), containerId, index, kind)
}

func (p *Processor) UpdateStack(containerId uuid.UUID, index int16, s stack.Model) error {
	p.l.Debugf("Setting slot [%d] of container [%s] to [%d] [%s].", index, containerId.String(), s.Quantity(), s.ItemId())
	return updateStack(p.db, p.t.Id(), containerId, index, s)
}

func (p *Processor) DeleteByContainerId(containerId uuid.UUID) error {
	return deleteByContainer(p.db, p.t.Id(), containerId)
}
