package session

import (
	"sync"

	"github.com/google/uuid"
)

// State is what the service knows about a player's live client session.
type State struct {
	openContainerId uuid.UUID
	spectator       bool
}

func (s State) OpenContainerId() (uuid.UUID, bool) {
	return s.openContainerId, s.openContainerId != uuid.Nil
}

func (s State) Spectator() bool {
	return s.spectator
}

func NewState(openContainerId uuid.UUID, spectator bool) State {
	return State{openContainerId: openContainerId, spectator: spectator}
}

type key struct {
	tenantId uuid.UUID
	playerId uuid.UUID
}

// Registry tracks session state per tenant and player. The zero State means the player only has
// their own inventory open and is not spectating.
type Registry struct {
	mu     sync.RWMutex
	states map[key]State
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[key]State)}
}

func (r *Registry) Get(tenantId uuid.UUID, playerId uuid.UUID) State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[key{tenantId, playerId}]
}

func (r *Registry) Set(tenantId uuid.UUID, playerId uuid.UUID, s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s == (State{}) {
		delete(r.states, key{tenantId, playerId})
		return
	}
	r.states[key{tenantId, playerId}] = s
}

func (r *Registry) OpenContainer(tenantId uuid.UUID, playerId uuid.UUID) (uuid.UUID, bool) {
	return r.Get(tenantId, playerId).OpenContainerId()
}

func (r *Registry) Spectator(tenantId uuid.UUID, playerId uuid.UUID) bool {
	return r.Get(tenantId, playerId).Spectator()
}

// Clear forgets the player, as on disconnect.
func (r *Registry) Clear(tenantId uuid.UUID, playerId uuid.UUID) {
	r.Set(tenantId, playerId, State{})
}
