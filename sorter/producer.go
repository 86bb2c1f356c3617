package sorter

import (
	sort2 "atlas-sorter/kafka/message/sort"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func SortedEventStatusProvider(r Result) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(r.PlayerId().ID()))
	slots := make([]sort2.SlotBody, 0, len(r.Slots()))
	for _, s := range r.Slots() {
		st := s.Slot().Stack()
		slots = append(slots, sort2.SlotBody{
			ContainerId: s.ContainerId(),
			Slot:        s.Index(),
			ItemId:      st.ItemId(),
			Quantity:    st.Quantity(),
			Components:  st.Components(),
		})
	}
	value := &sort2.StatusEvent[sort2.SortedStatusEventBody]{
		PlayerId: r.PlayerId(),
		Type:     sort2.StatusEventTypeSorted,
		Body: sort2.SortedStatusEventBody{
			Region: byte(r.Region()),
			Method: r.Preference().Method().String(),
			Order:  r.Preference().Order().String(),
			Slots:  slots,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func ErrorEventStatusProvider(playerId uuid.UUID, command string, errorCode string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(playerId.ID()))
	value := &sort2.StatusEvent[sort2.ErrorStatusEventBody]{
		PlayerId: playerId,
		Type:     sort2.StatusEventTypeError,
		Body: sort2.ErrorStatusEventBody{
			Command:   command,
			ErrorCode: errorCode,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
