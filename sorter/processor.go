package sorter

import (
	"atlas-sorter/kafka/message"
	sort2 "atlas-sorter/kafka/message/sort"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/locked"
	"atlas-sorter/menu"
	"atlas-sorter/player"
	"atlas-sorter/preference"
	"atlas-sorter/region"
	"atlas-sorter/slot"
	"atlas-sorter/sorting"
	"atlas-sorter/stack"
	"context"
	"errors"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotApplicable = errors.New("sort not applicable")

// Sessions exposes the live session facts a sort depends on.
type Sessions interface {
	menu.OpenContainerSource
	Spectator(tenantId uuid.UUID, playerId uuid.UUID) bool
}

// Collaborators carries the long-lived state sort operations need beyond the database.
type Collaborators struct {
	Oracle   stack.Oracle
	Locks    *player.LockRegistry
	Sessions Sessions
	Sortable slot.SortablePredicate
	Defaults sorting.Preference
}

type Processor struct {
	l        logrus.FieldLogger
	ctx      context.Context
	db       *gorm.DB
	t        tenant.Model
	c        Collaborators
	sorter   sorting.Sorter
	producer producer.Provider
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c Collaborators) *Processor {
	if c.Sortable == nil {
		c.Sortable = slot.GenericallySortable
	}
	if !c.Defaults.Method().Valid() || !c.Defaults.Order().Valid() {
		c.Defaults = sorting.DefaultPreference
	}
	return &Processor{
		l:        l,
		ctx:      ctx,
		db:       db,
		t:        tenant.MustFromContext(ctx),
		c:        c,
		sorter:   sorting.NewSorter(c.Oracle),
		producer: producer.ProviderImpl(l)(ctx),
	}
}

func (p *Processor) WithProducer(pp producer.Provider) *Processor {
	return &Processor{
		l:        p.l,
		ctx:      p.ctx,
		db:       p.db,
		t:        p.t,
		c:        p.c,
		sorter:   p.sorter,
		producer: pp,
	}
}

// SortRegion sorts one region of the player's open menu and writes the new occupants back.
// A region with no matching slots is a no-op.
func (p *Processor) SortRegion(mb *message.Buffer) func(playerId uuid.UUID, r region.Region) (Result, error) {
	return func(playerId uuid.UUID, r region.Region) (Result, error) {
		if !r.Valid() {
			return Result{}, region.ErrInvalidRegion
		}
		return player.WithLock(p.c.Locks, p.t.Id(), playerId, func() (Result, error) {
			var result Result
			txErr := p.db.Transaction(func(tx *gorm.DB) error {
				var err error
				result, err = p.sortRegion(tx, mb, playerId, r)
				return err
			})
			if txErr != nil {
				p.logFailure(txErr, playerId, r)
				return Result{}, txErr
			}
			return result, nil
		})
	}
}

func (p *Processor) SortRegionAndEmit(playerId uuid.UUID, r region.Region) (Result, error) {
	return message.EmitWithResult[Result](p.producer)(func(buf *message.Buffer) (Result, error) {
		return p.SortRegion(buf)(playerId, r)
	})
}

// SortInventory sorts the player's main inventory and then the hotbar as one operation.
func (p *Processor) SortInventory(mb *message.Buffer) func(playerId uuid.UUID) ([]Result, error) {
	return func(playerId uuid.UUID) ([]Result, error) {
		return player.WithLock(p.c.Locks, p.t.Id(), playerId, func() ([]Result, error) {
			results := make([]Result, 0, 2)
			txErr := p.db.Transaction(func(tx *gorm.DB) error {
				for _, r := range []region.Region{region.PlayerMain, region.PlayerHotbar} {
					res, err := p.sortRegion(tx, mb, playerId, r)
					if err != nil {
						return err
					}
					results = append(results, res)
				}
				return nil
			})
			if txErr != nil {
				p.l.WithError(txErr).Errorf("Unable to sort inventory of player [%s].", playerId.String())
				return nil, txErr
			}
			return results, nil
		})
	}
}

func (p *Processor) SortInventoryAndEmit(playerId uuid.UUID) ([]Result, error) {
	return message.EmitWithResult[[]Result](p.producer)(func(buf *message.Buffer) ([]Result, error) {
		return p.SortInventory(buf)(playerId)
	})
}

func (p *Processor) sortRegion(tx *gorm.DB, mb *message.Buffer, playerId uuid.UUID, r region.Region) (Result, error) {
	if p.c.Sessions.Spectator(p.t.Id(), playerId) {
		return Result{}, ErrNotApplicable
	}
	m, err := menu.NewProcessor(p.l, p.ctx, tx, p.c.Sessions).GetByPlayerId(playerId)
	if err != nil {
		return Result{}, err
	}
	if r == region.Container && !m.HasForeignContainer() {
		return Result{}, ErrNotApplicable
	}

	pref, err := preference.NewProcessor(p.l, p.ctx, tx, p.c.Locks).WithDefaults(p.c.Defaults).GetByPlayerId(playerId)
	if err != nil {
		return Result{}, err
	}
	result := Result{playerId: playerId, region: r, preference: pref, slots: make([]menu.Slot, 0)}

	targets := region.Classify(playerId, m.Slots(), r, p.c.Sortable)
	if len(targets) == 0 {
		p.l.Debugf("Region [%s] of player [%s] has nothing to sort.", r.String(), playerId.String())
		return result, nil
	}

	ls := locked.Empty
	if r.LockAware() {
		ls, err = locked.NewProcessor(p.l, p.ctx, tx, p.c.Locks).GetByPlayerId(playerId)
		if err != nil {
			return Result{}, err
		}
	}

	occupants := make([]stack.Model, len(targets))
	flags := make([]bool, len(targets))
	for i, s := range targets {
		occupants[i] = s.Slot().Stack()
		flags[i] = r.LockAware() && ls.IsLocked(s.Index())
	}

	sorted, err := SortSlots(p.sorter, occupants, flags, pref)
	if err != nil {
		return Result{}, err
	}

	sp := slot.NewProcessor(p.l, p.ctx, tx)
	changed := 0
	for i, s := range targets {
		if sorted[i] != occupants[i] {
			err = sp.UpdateStack(s.ContainerId(), s.Index(), sorted[i])
			if err != nil {
				return Result{}, err
			}
			changed++
		}
		ns := slot.Clone(s.Slot()).SetStack(sorted[i]).Build()
		result.slots = append(result.slots, s.WithSlot(ns))
	}
	p.l.Debugf("Sorted region [%s] of player [%s] by [%s], [%d] slot(s) changed.", r.String(), playerId.String(), pref.String(), changed)
	return result, mb.Put(sort2.EnvEventTopicStatus, SortedEventStatusProvider(result))
}

func (p *Processor) logFailure(err error, playerId uuid.UUID, r region.Region) {
	if errors.Is(err, ErrNotApplicable) {
		p.l.Debugf("Sorting region [%s] is not applicable for player [%s].", r.String(), playerId.String())
		return
	}
	p.l.WithError(err).Errorf("Unable to sort region [%s] of player [%s].", r.String(), playerId.String())
}
