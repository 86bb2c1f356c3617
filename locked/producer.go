package locked

import (
	locked2 "atlas-sorter/kafka/message/locked"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func ChangedEventStatusProvider(playerId uuid.UUID, m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(playerId.ID()))
	value := &locked2.StatusEvent[locked2.ChangedStatusEventBody]{
		PlayerId: playerId,
		Type:     locked2.StatusEventTypeChanged,
		Body: locked2.ChangedStatusEventBody{
			Slots: m.Slots(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}
