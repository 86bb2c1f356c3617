package preference_test

import (
	"atlas-sorter/kafka/message"
	preference2 "atlas-sorter/kafka/message/preference"
	"atlas-sorter/player"
	"atlas-sorter/preference"
	"atlas-sorter/sorting"
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
	if err := preference.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testProcessor(t *testing.T) *preference.Processor {
	te, _ := tenant.Create(uuid.New(), "GMS", 83, 1)
	ctx := tenant.WithContext(context.Background(), te)
	return preference.NewProcessor(testLogger(), ctx, testDatabase(t), player.NewLockRegistry())
}

func TestDefaultWhenUnset(t *testing.T) {
	p := testProcessor(t)

	got, err := p.GetByPlayerId(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, sorting.DefaultPreference, got)

	custom := sorting.NewPreference(sorting.MethodQuantity, sorting.OrderDescending)
	got, err = p.WithDefaults(custom).GetByPlayerId(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestCyclePersists(t *testing.T) {
	p := testProcessor(t)
	playerId := uuid.New()

	mb := message.NewBuffer()
	got, err := p.Cycle(mb)(playerId)
	require.NoError(t, err)
	assert.Equal(t, sorting.NewPreference(sorting.MethodAlphabetical, sorting.OrderDescending), got)
	assert.Len(t, mb.GetAll()[preference2.EnvEventTopicStatus], 1)

	got, err = p.Cycle(message.NewBuffer())(playerId)
	require.NoError(t, err)
	assert.Equal(t, sorting.NewPreference(sorting.MethodCategory, sorting.OrderAscending), got)

	stored, err := p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestNextMethodAndToggleOrder(t *testing.T) {
	p := testProcessor(t)
	playerId := uuid.New()

	_, err := p.NextMethod(message.NewBuffer())(playerId)
	require.NoError(t, err)
	got, err := p.ToggleOrder(message.NewBuffer())(playerId)
	require.NoError(t, err)
	assert.Equal(t, sorting.NewPreference(sorting.MethodCategory, sorting.OrderDescending), got)

	for i := 0; i < 3; i++ {
		got, err = p.NextMethod(message.NewBuffer())(playerId)
		require.NoError(t, err)
	}
	assert.Equal(t, sorting.NewPreference(sorting.MethodAlphabetical, sorting.OrderDescending), got)
}

func TestSetRejectsUnknownNames(t *testing.T) {
	p := testProcessor(t)
	playerId := uuid.New()

	got, err := p.Set(message.NewBuffer())(playerId, "mod_id", "descending")
	require.NoError(t, err)
	assert.Equal(t, sorting.NewPreference(sorting.MethodModNamespace, sorting.OrderDescending), got)

	mb := message.NewBuffer()
	_, err = p.Set(mb)(playerId, "rarity", "ascending")
	assert.True(t, errors.Is(err, sorting.ErrInvalidPreferenceValue))
	_, err = p.Set(mb)(playerId, "quantity", "sideways")
	assert.True(t, errors.Is(err, sorting.ErrInvalidPreferenceValue))
	assert.Empty(t, mb.GetAll())

	stored, err := p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestReset(t *testing.T) {
	custom := sorting.NewPreference(sorting.MethodCategory, sorting.OrderAscending)
	p := testProcessor(t).WithDefaults(custom)
	playerId := uuid.New()

	_, err := p.Set(message.NewBuffer())(playerId, "quantity", "descending")
	require.NoError(t, err)

	got, err := p.Reset(message.NewBuffer())(playerId)
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	stored, err := p.GetByPlayerId(playerId)
	require.NoError(t, err)
	assert.Equal(t, custom, stored)
}
