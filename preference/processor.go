package preference

import (
	"atlas-sorter/kafka/message"
	preference2 "atlas-sorter/kafka/message/preference"
	"atlas-sorter/kafka/producer"
	model2 "atlas-sorter/model"
	"atlas-sorter/player"
	"atlas-sorter/sorting"
	"context"
	"errors"

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
	defaults      sorting.Preference
	GetByPlayerId func(playerId uuid.UUID) (sorting.Preference, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, locks *player.LockRegistry) *Processor {
	p := &Processor{
		l:        l,
		ctx:      ctx,
		db:       db,
		t:        tenant.MustFromContext(ctx),
		locks:    locks,
		producer: producer.ProviderImpl(l)(ctx),
		defaults: sorting.DefaultPreference,
	}
	p.GetByPlayerId = model2.CollapseProvider(p.ByPlayerIdProvider)
	return p
}

func (p *Processor) clone() *Processor {
	np := &Processor{
		l:        p.l,
		ctx:      p.ctx,
		db:       p.db,
		t:        p.t,
		locks:    p.locks,
		producer: p.producer,
		defaults: p.defaults,
	}
	np.GetByPlayerId = model2.CollapseProvider(np.ByPlayerIdProvider)
	return np
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	np := p.clone()
	np.db = db
	return np
}

func (p *Processor) WithProducer(pp producer.Provider) *Processor {
	np := p.clone()
	np.producer = pp
	return np
}

// WithDefaults sets the preference players have until they choose one, and return to on reset.
func (p *Processor) WithDefaults(d sorting.Preference) *Processor {
	np := p.clone()
	np.defaults = d
	return np
}

func (p *Processor) Defaults() sorting.Preference {
	return p.defaults
}

func (p *Processor) ByPlayerIdProvider(playerId uuid.UUID) model.Provider[sorting.Preference] {
	e, err := getByPlayerId(p.t.Id(), playerId)(p.db)()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FixedProvider(p.defaults)
	}
	if err != nil {
		return model.ErrorProvider[sorting.Preference](err)
	}
	return model.Map(Make)(model.FixedProvider(e))
}

type transition func(current sorting.Preference) (sorting.Preference, error)

func (p *Processor) apply(mb *message.Buffer, playerId uuid.UUID, name string, f transition) (sorting.Preference, error) {
	return player.WithLock(p.locks, p.t.Id(), playerId, func() (sorting.Preference, error) {
		var result sorting.Preference
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			current, err := p.WithTransaction(tx).GetByPlayerId(playerId)
			if err != nil {
				return err
			}
			result, err = f(current)
			if err != nil {
				return err
			}
			err = upsert(tx, p.t.Id(), playerId, result)
			if err != nil {
				return err
			}
			return mb.Put(preference2.EnvEventTopicStatus, ChangedEventStatusProvider(playerId, result))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to %s sort preference for player [%s].", name, playerId.String())
			return sorting.Preference{}, txErr
		}
		p.l.Debugf("Sort preference for player [%s] is now [%s].", playerId.String(), result.String())
		return result, nil
	})
}

// Cycle advances through all method and order combinations.
func (p *Processor) Cycle(mb *message.Buffer) func(playerId uuid.UUID) (sorting.Preference, error) {
	return func(playerId uuid.UUID) (sorting.Preference, error) {
		return p.apply(mb, playerId, "cycle", func(c sorting.Preference) (sorting.Preference, error) {
			return c.Next(), nil
		})
	}
}

func (p *Processor) CycleAndEmit(playerId uuid.UUID) (sorting.Preference, error) {
	return message.EmitWithResult[sorting.Preference](p.producer)(func(buf *message.Buffer) (sorting.Preference, error) {
		return p.Cycle(buf)(playerId)
	})
}

func (p *Processor) NextMethod(mb *message.Buffer) func(playerId uuid.UUID) (sorting.Preference, error) {
	return func(playerId uuid.UUID) (sorting.Preference, error) {
		return p.apply(mb, playerId, "advance", func(c sorting.Preference) (sorting.Preference, error) {
			return c.WithNextMethod(), nil
		})
	}
}

func (p *Processor) NextMethodAndEmit(playerId uuid.UUID) (sorting.Preference, error) {
	return message.EmitWithResult[sorting.Preference](p.producer)(func(buf *message.Buffer) (sorting.Preference, error) {
		return p.NextMethod(buf)(playerId)
	})
}

func (p *Processor) ToggleOrder(mb *message.Buffer) func(playerId uuid.UUID) (sorting.Preference, error) {
	return func(playerId uuid.UUID) (sorting.Preference, error) {
		return p.apply(mb, playerId, "toggle", func(c sorting.Preference) (sorting.Preference, error) {
			return c.WithToggledOrder(), nil
		})
	}
}

func (p *Processor) ToggleOrderAndEmit(playerId uuid.UUID) (sorting.Preference, error) {
	return message.EmitWithResult[sorting.Preference](p.producer)(func(buf *message.Buffer) (sorting.Preference, error) {
		return p.ToggleOrder(buf)(playerId)
	})
}

// Set stores an explicit preference. Unknown names are rejected before anything is written.
func (p *Processor) Set(mb *message.Buffer) func(playerId uuid.UUID, method string, order string) (sorting.Preference, error) {
	return func(playerId uuid.UUID, method string, order string) (sorting.Preference, error) {
		np, err := sorting.ParsePreference(method, order)
		if err != nil {
			p.l.WithError(err).Warnf("Rejected sort preference [%s/%s] for player [%s].", method, order, playerId.String())
			return sorting.Preference{}, err
		}
		return p.apply(mb, playerId, "set", func(sorting.Preference) (sorting.Preference, error) {
			return np, nil
		})
	}
}

func (p *Processor) SetAndEmit(playerId uuid.UUID, method string, order string) (sorting.Preference, error) {
	return message.EmitWithResult[sorting.Preference](p.producer)(func(buf *message.Buffer) (sorting.Preference, error) {
		return p.Set(buf)(playerId, method, order)
	})
}

// Reset forgets the player's stored choice so the configured default applies again.
func (p *Processor) Reset(mb *message.Buffer) func(playerId uuid.UUID) (sorting.Preference, error) {
	return func(playerId uuid.UUID) (sorting.Preference, error) {
		return player.WithLock(p.locks, p.t.Id(), playerId, func() (sorting.Preference, error) {
			txErr := p.db.Transaction(func(tx *gorm.DB) error {
				err := deleteByPlayerId(tx, p.t.Id(), playerId)
				if err != nil {
					return err
				}
				return mb.Put(preference2.EnvEventTopicStatus, ChangedEventStatusProvider(playerId, p.defaults))
			})
			if txErr != nil {
				p.l.WithError(txErr).Errorf("Unable to reset sort preference for player [%s].", playerId.String())
				return sorting.Preference{}, txErr
			}
			p.l.Debugf("Sort preference for player [%s] reset to [%s].", playerId.String(), p.defaults.String())
			return p.defaults, nil
		})
	}
}

func (p *Processor) ResetAndEmit(playerId uuid.UUID) (sorting.Preference, error) {
	return message.EmitWithResult[sorting.Preference](p.producer)(func(buf *message.Buffer) (sorting.Preference, error) {
		return p.Reset(buf)(playerId)
	})
}
