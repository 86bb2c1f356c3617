package sorter_test

import (
	"atlas-sorter/catalog"
	"atlas-sorter/container"
	"atlas-sorter/kafka/message"
	sort2 "atlas-sorter/kafka/message/sort"
	"atlas-sorter/locked"
	"atlas-sorter/player"
	"atlas-sorter/preference"
	"atlas-sorter/region"
	"atlas-sorter/session"
	"atlas-sorter/slot"
	"atlas-sorter/sorter"
	"atlas-sorter/sorting"
	"atlas-sorter/stack"
	"context"
	"errors"
	"testing"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	t        *testing.T
	ctx      context.Context
	db       *gorm.DB
	l        logrus.FieldLogger
	tenant   tenant.Model
	sessions *session.Registry
	locks    *player.LockRegistry
	playerId uuid.UUID
	inv      container.Model
}

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	var migrators []func(db *gorm.DB) error
	migrators = append(migrators, slot.Migration, container.Migration, locked.Migration, preference.Migration)

	for _, migrator := range migrators {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	return db
}

func newFixture(t *testing.T) *fixture {
	te, _ := tenant.Create(uuid.New(), "GMS", 83, 1)
	l, _ := test.NewNullLogger()
	f := &fixture{
		t:        t,
		ctx:      tenant.WithContext(context.Background(), te),
		db:       testDatabase(t),
		l:        l,
		tenant:   te,
		sessions: session.NewRegistry(),
		locks:    player.NewLockRegistry(),
		playerId: uuid.New(),
	}
	inv, err := container.NewProcessor(f.l, f.ctx, f.db).Create(message.NewBuffer())(f.playerId, container.KindPlayer, 0)
	require.NoError(t, err)
	f.inv = inv
	return f
}

func (f *fixture) processor() *sorter.Processor {
	return sorter.NewProcessor(f.l, f.ctx, f.db, sorter.Collaborators{
		Oracle:   catalog.Default(),
		Locks:    f.locks,
		Sessions: f.sessions,
	})
}

func (f *fixture) set(containerId uuid.UUID, index int16, s stack.Model) {
	_, err := container.NewProcessor(f.l, f.ctx, f.db).SetSlot(catalog.Default())(containerId, index, s)
	require.NoError(f.t, err)
}

func (f *fixture) lock(index int16) {
	_, err := locked.NewProcessor(f.l, f.ctx, f.db, f.locks).ToggleLock(message.NewBuffer())(f.playerId, index)
	require.NoError(f.t, err)
}

func (f *fixture) stacks(containerId uuid.UUID, lo int16, hi int16) []stack.Model {
	c, err := container.NewProcessor(f.l, f.ctx, f.db).GetById(containerId)
	require.NoError(f.t, err)
	r := make([]stack.Model, 0)
	for _, s := range c.Slots() {
		if s.Index() >= lo && s.Index() <= hi {
			r = append(r, s.Stack())
		}
	}
	return r
}

func TestSortMainRespectsLocks(t *testing.T) {
	f := newFixture(t)
	f.set(f.inv.Id(), 9, stone(1))
	f.set(f.inv.Id(), 10, diamond(1))
	f.set(f.inv.Id(), 11, apple(1))
	f.lock(9)

	mb := message.NewBuffer()
	res, err := f.processor().SortRegion(mb)(f.playerId, region.PlayerMain)
	require.NoError(t, err)
	assert.Len(t, res.Slots(), 27)
	assert.Len(t, mb.GetAll()[sort2.EnvEventTopicStatus], 1)

	got := f.stacks(f.inv.Id(), 9, 11)
	assertStacks(t, []stack.Model{stone(1), apple(1), diamond(1)}, got)
}

func TestSortMainAbsorbsIntoLockedStack(t *testing.T) {
	f := newFixture(t)
	f.set(f.inv.Id(), 9, stone(50))
	f.set(f.inv.Id(), 20, stone(32))
	f.lock(9)

	_, err := f.processor().SortRegion(message.NewBuffer())(f.playerId, region.PlayerMain)
	require.NoError(t, err)

	got := f.stacks(f.inv.Id(), 9, 11)
	assertStacks(t, []stack.Model{stone(64), stone(18), stack.Empty}, got)
	assert.True(t, f.stacks(f.inv.Id(), 20, 20)[0].Empty())
}

func TestSortInventoryKeepsHotbarSeparate(t *testing.T) {
	f := newFixture(t)
	f.set(f.inv.Id(), 8, diamond(2))
	f.set(f.inv.Id(), 0, stone(4))
	f.set(f.inv.Id(), 35, apple(1))
	f.set(f.inv.Id(), 30, stone(10))

	results, err := f.processor().SortInventory(message.NewBuffer())(f.playerId)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, region.PlayerMain, results[0].Region())
	assert.Equal(t, region.PlayerHotbar, results[1].Region())

	assertStacks(t, []stack.Model{diamond(2), stone(4)}, f.stacks(f.inv.Id(), 0, 1))
	assertStacks(t, []stack.Model{apple(1), stone(10)}, f.stacks(f.inv.Id(), 9, 10))
}

func TestSortUsesPlayerPreference(t *testing.T) {
	f := newFixture(t)
	f.set(f.inv.Id(), 0, stone(4))
	f.set(f.inv.Id(), 1, apple(9))
	f.set(f.inv.Id(), 2, diamond(2))

	_, err := preference.NewProcessor(f.l, f.ctx, f.db, f.locks).Set(message.NewBuffer())(f.playerId, "quantity", "ascending")
	require.NoError(t, err)

	res, err := f.processor().SortRegion(message.NewBuffer())(f.playerId, region.PlayerHotbar)
	require.NoError(t, err)
	assert.Equal(t, sorting.MethodQuantity, res.Preference().Method())
	assertStacks(t, []stack.Model{apple(9), stone(4), diamond(2), stack.Empty}, f.stacks(f.inv.Id(), 0, 3))
}

func TestSortContainerIgnoresLocks(t *testing.T) {
	f := newFixture(t)
	chest, err := container.NewProcessor(f.l, f.ctx, f.db).Create(message.NewBuffer())(uuid.New(), container.KindChest, 4)
	require.NoError(t, err)
	f.set(chest.Id(), 0, stone(5))
	f.set(chest.Id(), 2, apple(5))
	f.set(chest.Id(), 3, stone(5))
	f.set(f.inv.Id(), 0, dirt(1))
	f.lock(0)
	f.sessions.Set(f.tenant.Id(), f.playerId, session.NewState(chest.Id(), false))

	res, err := f.processor().SortRegion(message.NewBuffer())(f.playerId, region.Container)
	require.NoError(t, err)
	assert.Len(t, res.Slots(), 4)
	for _, s := range res.Slots() {
		assert.Equal(t, chest.Id(), s.ContainerId())
	}

	assertStacks(t, []stack.Model{apple(5), stone(10), stack.Empty, stack.Empty}, f.stacks(chest.Id(), 0, 3))
	assertStacks(t, []stack.Model{dirt(1)}, f.stacks(f.inv.Id(), 0, 0))
}

func TestSortContainerWithoutOpenContainer(t *testing.T) {
	f := newFixture(t)
	mb := message.NewBuffer()
	_, err := f.processor().SortRegion(mb)(f.playerId, region.Container)
	assert.True(t, errors.Is(err, sorter.ErrNotApplicable))
	assert.Empty(t, mb.GetAll())
}

func TestSortSpecialContainerIsNoOp(t *testing.T) {
	f := newFixture(t)
	furnace, err := container.NewProcessor(f.l, f.ctx, f.db).Create(message.NewBuffer())(uuid.New(), container.KindFurnace, 0)
	require.NoError(t, err)
	f.set(furnace.Id(), 0, apple(1))
	f.sessions.Set(f.tenant.Id(), f.playerId, session.NewState(furnace.Id(), false))

	mb := message.NewBuffer()
	res, err := f.processor().SortRegion(mb)(f.playerId, region.Container)
	require.NoError(t, err)
	assert.Empty(t, res.Slots())
	assert.Empty(t, mb.GetAll())
	assertStacks(t, []stack.Model{apple(1)}, f.stacks(furnace.Id(), 0, 0))
}

func TestSpectatorCannotSort(t *testing.T) {
	f := newFixture(t)
	f.set(f.inv.Id(), 10, stone(1))
	f.set(f.inv.Id(), 9, stack.Empty)
	f.sessions.Set(f.tenant.Id(), f.playerId, session.NewState(uuid.Nil, true))

	_, err := f.processor().SortRegion(message.NewBuffer())(f.playerId, region.PlayerMain)
	assert.True(t, errors.Is(err, sorter.ErrNotApplicable))
	_, err = f.processor().SortInventory(message.NewBuffer())(f.playerId)
	assert.True(t, errors.Is(err, sorter.ErrNotApplicable))

	assertStacks(t, []stack.Model{stack.Empty, stone(1)}, f.stacks(f.inv.Id(), 9, 10))
}

func TestSortMissingInventory(t *testing.T) {
	f := newFixture(t)
	_, err := f.processor().SortRegion(message.NewBuffer())(uuid.New(), region.PlayerMain)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSortInvalidRegion(t *testing.T) {
	f := newFixture(t)
	_, err := f.processor().SortRegion(message.NewBuffer())(f.playerId, region.Region(9))
	assert.True(t, errors.Is(err, region.ErrInvalidRegion))
}

// spectatorAfter reports the player as a spectator from the given check onwards.
type spectatorAfter struct {
	*session.Registry
	checks int
	after  int
}

func (s *spectatorAfter) Spectator(tenantId uuid.UUID, playerId uuid.UUID) bool {
	s.checks++
	return s.checks >= s.after
}

func TestSortInventoryRollsBackMainWhenHotbarFails(t *testing.T) {
	f := newFixture(t)
	f.set(f.inv.Id(), 9, stone(1))
	f.set(f.inv.Id(), 10, diamond(1))
	f.set(f.inv.Id(), 11, apple(1))
	f.set(f.inv.Id(), 0, stone(3))
	f.set(f.inv.Id(), 2, apple(3))
	before := f.stacks(f.inv.Id(), 0, 35)

	sessions := &spectatorAfter{Registry: f.sessions, after: 2}
	p := sorter.NewProcessor(f.l, f.ctx, f.db, sorter.Collaborators{
		Oracle:   catalog.Default(),
		Locks:    f.locks,
		Sessions: sessions,
	})

	mb := message.NewBuffer()
	res, err := p.SortInventory(mb)(f.playerId)
	require.ErrorIs(t, err, sorter.ErrNotApplicable)
	assert.Nil(t, res)
	assert.Equal(t, 2, sessions.checks)
	assertStacks(t, before, f.stacks(f.inv.Id(), 0, 35))

	_, err = p.SortInventoryAndEmit(f.playerId)
	require.ErrorIs(t, err, sorter.ErrNotApplicable)
	assertStacks(t, before, f.stacks(f.inv.Id(), 0, 35))

	_, err = f.processor().SortInventory(message.NewBuffer())(f.playerId)
	require.NoError(t, err)
	assertStacks(t, []stack.Model{apple(1), diamond(1), stone(1)}, f.stacks(f.inv.Id(), 9, 11))
	assertStacks(t, []stack.Model{apple(3), stone(3)}, f.stacks(f.inv.Id(), 0, 1))
}
