package player

import (
	"sync"

	"github.com/google/uuid"
)

type lockKey struct {
	tenantId uuid.UUID
	playerId uuid.UUID
}

// LockRegistry hands out one mutex per tenant and player so that a player's mutations run one at a time.
type LockRegistry struct {
	locks sync.Map
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{}
}

func (r *LockRegistry) Get(tenantId uuid.UUID, playerId uuid.UUID) *sync.RWMutex {
	key := lockKey{tenantId: tenantId, playerId: playerId}
	val, _ := r.locks.LoadOrStore(key, &sync.RWMutex{})
	if mtx, ok := val.(*sync.RWMutex); ok {
		return mtx
	}
	mtx := &sync.RWMutex{}
	r.locks.Store(key, mtx)
	return mtx
}

func (r *LockRegistry) Delete(tenantId uuid.UUID, playerId uuid.UUID) {
	r.locks.Delete(lockKey{tenantId: tenantId, playerId: playerId})
}

// WithLock runs f while holding the player's write lock.
func WithLock[T any](r *LockRegistry, tenantId uuid.UUID, playerId uuid.UUID, f func() (T, error)) (T, error) {
	mtx := r.Get(tenantId, playerId)
	mtx.Lock()
	defer mtx.Unlock()
	return f()
}

// WithReadLock runs f while holding the player's read lock.
func WithReadLock[T any](r *LockRegistry, tenantId uuid.UUID, playerId uuid.UUID, f func() (T, error)) (T, error) {
	mtx := r.Get(tenantId, playerId)
	mtx.RLock()
	defer mtx.RUnlock()
	return f()
}
