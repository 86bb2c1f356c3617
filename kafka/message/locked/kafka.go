package locked

import "github.com/google/uuid"

const (
	EnvEventTopicStatus    = "EVENT_TOPIC_LOCKED_SLOTS_STATUS"
	StatusEventTypeChanged = "CHANGED"
)

type StatusEvent[E any] struct {
	PlayerId uuid.UUID `json:"playerId"`
	Type     string    `json:"type"`
	Body     E         `json:"body"`
}

type ChangedStatusEventBody struct {
	Slots []int16 `json:"slots"`
}
