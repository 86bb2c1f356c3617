package preference

import (
	preference2 "atlas-sorter/kafka/message/preference"
	"atlas-sorter/sorting"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func ChangedEventStatusProvider(playerId uuid.UUID, p sorting.Preference) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(playerId.ID()))
	value := &preference2.StatusEvent[preference2.ChangedStatusEventBody]{
		PlayerId: playerId,
		Type:     preference2.StatusEventTypeChanged,
		Body: preference2.ChangedStatusEventBody{
			Method: p.Method().String(),
			Order:  p.Order().String(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}
