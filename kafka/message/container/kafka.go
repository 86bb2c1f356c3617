package container

import "github.com/google/uuid"

const (
	EnvEventTopicStatus    = "EVENT_TOPIC_CONTAINER_STATUS"
	StatusEventTypeCreated = "CREATED"
	StatusEventTypeDeleted = "DELETED"
)

type StatusEvent[E any] struct {
	OwnerId     uuid.UUID `json:"ownerId"`
	ContainerId uuid.UUID `json:"containerId"`
	Type        string    `json:"type"`
	Body        E         `json:"body"`
}

type CreatedStatusEventBody struct {
	Kind     string `json:"kind"`
	Capacity uint32 `json:"capacity"`
}

type DeletedStatusEventBody struct {
}
