package locked

import (
	"atlas-sorter/kafka/message"
	locked2 "atlas-sorter/kafka/message/locked"
	"atlas-sorter/kafka/producer"
	model2 "atlas-sorter/model"
	"atlas-sorter/player"
	"context"

	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l             logrus.FieldLogger
	ctx           context.Context
	db            *gorm.DB
	t             tenant.Model
	locks         *player.LockRegistry
	producer      producer.Provider
	GetByPlayerId func(playerId uuid.UUID) (Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, locks *player.LockRegistry) *Processor {
	p := &Processor{
		l:        l,
		ctx:      ctx,
		db:       db,
		t:        tenant.MustFromContext(ctx),
		locks:    locks,
		producer: producer.ProviderImpl(l)(ctx),
	}
	p.GetByPlayerId = model2.CollapseProvider(p.ByPlayerIdProvider)
	return p
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	np := &Processor{
		l:        p.l,
		ctx:      p.ctx,
		db:       db,
		t:        p.t,
		locks:    p.locks,
		producer: p.producer,
	}
	np.GetByPlayerId = model2.CollapseProvider(np.ByPlayerIdProvider)
	return np
}

func (p *Processor) WithProducer(pp producer.Provider) *Processor {
	np := p.WithTransaction(p.db)
	np.producer = pp
	return np
}

// ByPlayerIdProvider yields the player's locked slots. A player without rows has the empty set.
func (p *Processor) ByPlayerIdProvider(playerId uuid.UUID) model.Provider[Model] {
	return model.Map(Make)(getByPlayerId(p.t.Id(), playerId)(p.db))
}

// ToggleLock flips the lock state of a single player inventory slot.
func (p *Processor) ToggleLock(mb *message.Buffer) func(playerId uuid.UUID, slot int16) (Model, error) {
	return func(playerId uuid.UUID, slot int16) (Model, error) {
		if err := ValidIndex(slot); err != nil {
			p.l.WithError(err).Warnf("Player [%s] attempted to toggle lock on slot [%d].", playerId.String(), slot)
			return Model{}, err
		}
		return player.WithLock(p.locks, p.t.Id(), playerId, func() (Model, error) {
			var result Model
			txErr := p.db.Transaction(func(tx *gorm.DB) error {
				current, err := p.WithTransaction(tx).GetByPlayerId(playerId)
				if err != nil {
					return err
				}
				if current.IsLocked(slot) {
					err = unlock(tx, p.t.Id(), playerId, slot)
				} else {
					err = lock(tx, p.t.Id(), playerId, slot)
				}
				if err != nil {
					return err
				}
				result = current.Toggle(slot)
				return mb.Put(locked2.EnvEventTopicStatus, ChangedEventStatusProvider(playerId, result))
			})
			if txErr != nil {
				p.l.WithError(txErr).Errorf("Unable to toggle lock on slot [%d] for player [%s].", slot, playerId.String())
				return Model{}, txErr
			}
			p.l.Debugf("Player [%s] slot [%d] locked [%t].", playerId.String(), slot, result.IsLocked(slot))
			return result, nil
		})
	}
}

func (p *Processor) ToggleLockAndEmit(playerId uuid.UUID, slot int16) (Model, error) {
	return message.EmitWithResult[Model](p.producer)(func(buf *message.Buffer) (Model, error) {
		return p.ToggleLock(buf)(playerId, slot)
	})
}

// UnlockAll clears every lock the player holds.
func (p *Processor) UnlockAll(mb *message.Buffer) func(playerId uuid.UUID) (Model, error) {
	return func(playerId uuid.UUID) (Model, error) {
		return player.WithLock(p.locks, p.t.Id(), playerId, func() (Model, error) {
			txErr := p.db.Transaction(func(tx *gorm.DB) error {
				err := unlockAll(tx, p.t.Id(), playerId)
				if err != nil {
					return err
				}
				return mb.Put(locked2.EnvEventTopicStatus, ChangedEventStatusProvider(playerId, Empty))
			})
			if txErr != nil {
				p.l.WithError(txErr).Errorf("Unable to unlock all slots for player [%s].", playerId.String())
				return Model{}, txErr
			}
			p.l.Debugf("Unlocked all slots for player [%s].", playerId.String())
			return Empty, nil
		})
	}
}

func (p *Processor) UnlockAllAndEmit(playerId uuid.UUID) (Model, error) {
	return message.EmitWithResult[Model](p.producer)(func(buf *message.Buffer) (Model, error) {
		return p.UnlockAll(buf)(playerId)
	})
}
