package menu

import (
	"atlas-sorter/container"
	"context"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OpenContainerSource tells which foreign container, if any, a player currently has open.
type OpenContainerSource interface {
	OpenContainer(tenantId uuid.UUID, playerId uuid.UUID) (uuid.UUID, bool)
}

type Processor struct {
	l                  logrus.FieldLogger
	ctx                context.Context
	db                 *gorm.DB
	t                  tenant.Model
	sessions           OpenContainerSource
	containerProcessor *container.Processor
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, sessions OpenContainerSource) *Processor {
	return &Processor{
		l:                  l,
		ctx:                ctx,
		db:                 db,
		t:                  tenant.MustFromContext(ctx),
		sessions:           sessions,
		containerProcessor: container.NewProcessor(l, ctx, db),
	}
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	return &Processor{
		l:                  p.l,
		ctx:                p.ctx,
		db:                 db,
		t:                  p.t,
		sessions:           p.sessions,
		containerProcessor: p.containerProcessor.WithTransaction(db),
	}
}

// GetByPlayerId assembles the player's current menu from their inventory and any open container.
func (p *Processor) GetByPlayerId(playerId uuid.UUID) (Model, error) {
	inv, err := p.containerProcessor.GetPlayerInventory(playerId)
	if err != nil {
		return Model{}, err
	}
	id, ok := p.sessions.OpenContainer(p.t.Id(), playerId)
	if !ok {
		return Build(playerId, inv), nil
	}
	c, err := p.containerProcessor.GetById(id)
	if err != nil {
		p.l.WithError(err).Warnf("Player [%s] has container [%s] open, but it could not be loaded.", playerId.String(), id.String())
		return Model{}, err
	}
	return Build(playerId, inv, c), nil
}
