package preference

import "github.com/google/uuid"

const (
	EnvEventTopicStatus    = "EVENT_TOPIC_SORT_PREFERENCE_STATUS"
	StatusEventTypeChanged = "CHANGED"
)

type StatusEvent[E any] struct {
	PlayerId uuid.UUID `json:"playerId"`
	Type     string    `json:"type"`
	Body     E         `json:"body"`
}

type ChangedStatusEventBody struct {
	Method string `json:"method"`
	Order  string `json:"order"`
}
