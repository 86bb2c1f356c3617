package player_test

import (
	"atlas-sorter/player"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestGetReturnsSameMutex(t *testing.T) {
	r := player.NewLockRegistry()
	tenantId := uuid.New()
	playerId := uuid.New()

	assert.Same(t, r.Get(tenantId, playerId), r.Get(tenantId, playerId))
	assert.NotSame(t, r.Get(tenantId, playerId), r.Get(uuid.New(), playerId))

	m := r.Get(tenantId, playerId)
	r.Delete(tenantId, playerId)
	assert.NotSame(t, m, r.Get(tenantId, playerId))
}

func TestWithLockSerializes(t *testing.T) {
	r := player.NewLockRegistry()
	tenantId := uuid.New()
	playerId := uuid.New()

	var mu sync.Mutex
	inside := 0
	overlap := false
	counter := 0

	g := errgroup.Group{}
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			_, err := player.WithLock(r, tenantId, playerId, func() (int, error) {
				mu.Lock()
				inside++
				if inside > 1 {
					overlap = true
				}
				mu.Unlock()

				counter++

				mu.Lock()
				inside--
				mu.Unlock()
				return counter, nil
			})
			return err
		})
	}
	assert.NoError(t, g.Wait())
	assert.False(t, overlap)
	assert.Equal(t, 50, counter)
}
