package push

import (
	consumer2 "atlas-sorter/kafka/consumer"
	locked2 "atlas-sorter/kafka/message/locked"
	preference2 "atlas-sorter/kafka/message/preference"
	sort2 "atlas-sorter/kafka/message/sort"
	"context"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	"github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
)

// InitConsumers subscribes to the status topics. Every instance holds its own connections, so the
// group id must be unique per instance.
func InitConsumers(l logrus.FieldLogger) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			rf(consumer2.NewConfig(l)("sort_preference_status_event")(preference2.EnvEventTopicStatus)(consumerGroupId), consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
			rf(consumer2.NewConfig(l)("locked_slots_status_event")(locked2.EnvEventTopicStatus)(consumerGroupId), consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
			rf(consumer2.NewConfig(l)("sort_status_event")(sort2.EnvEventTopicStatus)(consumerGroupId), consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
		}
	}
}

func InitHandlers(l logrus.FieldLogger) func(hub *Hub) func(rf func(topic string, handler handler.Handler) (string, error)) {
	return func(hub *Hub) func(rf func(topic string, handler handler.Handler) (string, error)) {
		return func(rf func(topic string, handler handler.Handler) (string, error)) {
			var t string
			t, _ = topic.EnvProvider(l)(preference2.EnvEventTopicStatus)()
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handlePreferenceChanged(hub))))
			t, _ = topic.EnvProvider(l)(locked2.EnvEventTopicStatus)()
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleLockedSlotsChanged(hub))))
			t, _ = topic.EnvProvider(l)(sort2.EnvEventTopicStatus)()
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleSorted(hub))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleError(hub))))
		}
	}
}

func handlePreferenceChanged(hub *Hub) message.Handler[preference2.StatusEvent[preference2.ChangedStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e preference2.StatusEvent[preference2.ChangedStatusEventBody]) {
		if e.Type != preference2.StatusEventTypeChanged {
			return
		}
		hub.Publish(tenant.MustFromContext(ctx).Id(), Envelope{Type: EnvelopeTypePreference, PlayerId: e.PlayerId, Body: e.Body})
	}
}

func handleLockedSlotsChanged(hub *Hub) message.Handler[locked2.StatusEvent[locked2.ChangedStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e locked2.StatusEvent[locked2.ChangedStatusEventBody]) {
		if e.Type != locked2.StatusEventTypeChanged {
			return
		}
		hub.Publish(tenant.MustFromContext(ctx).Id(), Envelope{Type: EnvelopeTypeLockedSlots, PlayerId: e.PlayerId, Body: e.Body})
	}
}

func handleSorted(hub *Hub) message.Handler[sort2.StatusEvent[sort2.SortedStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e sort2.StatusEvent[sort2.SortedStatusEventBody]) {
		if e.Type != sort2.StatusEventTypeSorted {
			return
		}
		hub.Publish(tenant.MustFromContext(ctx).Id(), Envelope{Type: EnvelopeTypeSorted, PlayerId: e.PlayerId, Body: e.Body})
	}
}

func handleError(hub *Hub) message.Handler[sort2.StatusEvent[sort2.ErrorStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e sort2.StatusEvent[sort2.ErrorStatusEventBody]) {
		if e.Type != sort2.StatusEventTypeError {
			return
		}
		hub.Publish(tenant.MustFromContext(ctx).Id(), Envelope{Type: EnvelopeTypeError, PlayerId: e.PlayerId, Body: e.Body})
	}
}
