package push

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	EnvelopeTypeSnapshot    = "SNAPSHOT"
	EnvelopeTypePreference  = "PREFERENCE"
	EnvelopeTypeLockedSlots = "LOCKED_SLOTS"
	EnvelopeTypeSorted      = "SORTED"
	EnvelopeTypeError       = "ERROR"

	writeWait = 5 * time.Second
)

// Envelope is the single frame shape written to sync clients.
type Envelope struct {
	Type     string      `json:"type"`
	PlayerId uuid.UUID   `json:"playerId"`
	Body     interface{} `json:"body"`
}

type key struct {
	tenantId uuid.UUID
	playerId uuid.UUID
}

// Subscriber is one open sync connection. Writes are serialized because a websocket connection
// supports a single concurrent writer.
type Subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *Subscriber) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}

func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return s.conn.Close()
}

// Hub fans status changes out to every connection a player has open.
type Hub struct {
	l           logrus.FieldLogger
	mu          sync.RWMutex
	subscribers map[key]map[*Subscriber]struct{}
}

func NewHub(l logrus.FieldLogger) *Hub {
	return &Hub{
		l:           l,
		subscribers: make(map[key]map[*Subscriber]struct{}),
	}
}

func (h *Hub) Subscribe(tenantId uuid.UUID, playerId uuid.UUID, conn *websocket.Conn) *Subscriber {
	s := &Subscriber{conn: conn}
	k := key{tenantId: tenantId, playerId: playerId}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[k]; !ok {
		h.subscribers[k] = make(map[*Subscriber]struct{})
	}
	h.subscribers[k][s] = struct{}{}
	h.l.Debugf("Player [%s] opened a sync connection. [%d] open.", playerId.String(), len(h.subscribers[k]))
	return s
}

func (h *Hub) Unsubscribe(tenantId uuid.UUID, playerId uuid.UUID, s *Subscriber) {
	k := key{tenantId: tenantId, playerId: playerId}

	h.mu.Lock()
	defer h.mu.Unlock()
	ss, ok := h.subscribers[k]
	if !ok {
		return
	}
	delete(ss, s)
	if len(ss) == 0 {
		delete(h.subscribers, k)
	}
}

func (h *Hub) Count(tenantId uuid.UUID, playerId uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[key{tenantId: tenantId, playerId: playerId}])
}

// Publish writes the envelope to each of the player's connections and returns how many received it.
// Connections that fail the write are dropped.
func (h *Hub) Publish(tenantId uuid.UUID, e Envelope) int {
	h.mu.RLock()
	ss := make([]*Subscriber, 0, len(h.subscribers[key{tenantId: tenantId, playerId: e.PlayerId}]))
	for s := range h.subscribers[key{tenantId: tenantId, playerId: e.PlayerId}] {
		ss = append(ss, s)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, s := range ss {
		if err := s.WriteJSON(e); err != nil {
			h.l.WithError(err).Warnf("Dropping sync connection for player [%s].", e.PlayerId.String())
			h.Unsubscribe(tenantId, e.PlayerId, s)
			_ = s.conn.Close()
			continue
		}
		delivered++
	}
	return delivered
}

// Close disconnects every subscriber. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	all := h.subscribers
	h.subscribers = make(map[key]map[*Subscriber]struct{})
	h.mu.Unlock()

	for _, ss := range all {
		for s := range ss {
			_ = s.Close()
		}
	}
}
