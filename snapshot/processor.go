package snapshot

import (
	"atlas-sorter/locked"
	"atlas-sorter/player"
	"atlas-sorter/preference"
	"atlas-sorter/sorting"
	"context"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l        logrus.FieldLogger
	ctx      context.Context
	db       *gorm.DB
	t        tenant.Model
	locks    *player.LockRegistry
	defaults sorting.Preference
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, locks *player.LockRegistry, defaults sorting.Preference) *Processor {
	return &Processor{
		l:        l,
		ctx:      ctx,
		db:       db,
		t:        tenant.MustFromContext(ctx),
		locks:    locks,
		defaults: defaults,
	}
}

// GetByPlayerId reads the player's preference and locked slots as one consistent view.
func (p *Processor) GetByPlayerId(playerId uuid.UUID) (Model, error) {
	return player.WithReadLock(p.locks, p.t.Id(), playerId, func() (Model, error) {
		pref, err := preference.NewProcessor(p.l, p.ctx, p.db, p.locks).WithDefaults(p.defaults).GetByPlayerId(playerId)
		if err != nil {
			return Model{}, err
		}
		ls, err := locked.NewProcessor(p.l, p.ctx, p.db, p.locks).GetByPlayerId(playerId)
		if err != nil {
			return Model{}, err
		}
		return NewModel(playerId, pref, ls), nil
	})
}
