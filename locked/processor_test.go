package locked_test

import (
	"atlas-sorter/kafka/message"
	locked2 "atlas-sorter/kafka/message/locked"
	"atlas-sorter/locked"
	"atlas-sorter/player"
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

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := locked.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testProcessor(t *testing.T) *locked.Processor {
	te, _ := tenant.Create(uuid.New(), "GMS", 83, 1)
	ctx := tenant.WithContext(context.Background(), te)
	return locked.NewProcessor(testLogger(), ctx, testDatabase(t), player.NewLockRegistry())
}

func TestToggleLockPersists(t *testing.T) {
	p := testProcessor(t)
	playerId := uuid.New()

	m, err := p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	mb := message.NewBuffer()
	m, err = p.ToggleLock(mb)(playerId, 12)
	require.NoError(t, err)
	assert.True(t, m.IsLocked(12))
	assert.Len(t, mb.GetAll()[locked2.EnvEventTopicStatus], 1)

	_, err = p.ToggleLock(message.NewBuffer())(playerId, 3)
	require.NoError(t, err)

	m, err = p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, []int16{3, 12}, m.Slots())

	m, err = p.ToggleLock(message.NewBuffer())(playerId, 12)
	require.NoError(t, err)
	assert.Equal(t, []int16{3}, m.Slots())

	m, err = p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, []int16{3}, m.Slots())
}

func TestToggleLockInvalidIndex(t *testing.T) {
	p := testProcessor(t)
	playerId := uuid.New()

	mb := message.NewBuffer()
	_, err := p.ToggleLock(mb)(playerId, 36)
	assert.True(t, errors.Is(err, locked.ErrInvalidSlotIndex))
	assert.Empty(t, mb.GetAll())

	m, err := p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestUnlockAll(t *testing.T) {
	p := testProcessor(t)
	playerId := uuid.New()
	other := uuid.New()

	for _, s := range []int16{0, 9, 35} {
		_, err := p.ToggleLock(message.NewBuffer())(playerId, s)
		require.NoError(t, err)
	}
	_, err := p.ToggleLock(message.NewBuffer())(other, 5)
	require.NoError(t, err)

	m, err := p.UnlockAll(message.NewBuffer())(playerId)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	m, err = p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	m, err = p.GetByPlayerId(other)
	require.NoError(t, err)
	assert.Equal(t, []int16{5}, m.Slots())
}

func TestToggleLockAndEmitWithoutWriter(t *testing.T) {
	p := testProcessor(t)
	playerId := uuid.New()

	m, err := p.ToggleLockAndEmit(playerId, 7)
	require.NoError(t, err)
	assert.True(t, m.IsLocked(7))
}
