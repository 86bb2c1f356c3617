package container

import (
	container2 "atlas-sorter/kafka/message/container"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func CreatedEventStatusProvider(id uuid.UUID, ownerId uuid.UUID, kind Kind, capacity uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId.ID()))
	value := &container2.StatusEvent[container2.CreatedStatusEventBody]{
		OwnerId:     ownerId,
		ContainerId: id,
		Type:        container2.StatusEventTypeCreated,
		Body: container2.CreatedStatusEventBody{
			Kind:     string(kind),
			Capacity: capacity,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func DeletedEventStatusProvider(id uuid.UUID, ownerId uuid.UUID) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId.ID()))
	value := &container2.StatusEvent[container2.DeletedStatusEventBody]{
		OwnerId:     ownerId,
		ContainerId: id,
		Type:        container2.StatusEventTypeDeleted,
		Body:        container2.DeletedStatusEventBody{},
	}
	return producer.SingleMessageProvider(key, value)
}
