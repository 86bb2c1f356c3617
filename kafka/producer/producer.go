package producer

import (
	"context"
	"sync/atomic"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Provider func(token string) producer.MessageProducer

var enabled atomic.Bool

// Enable turns on delivery to the brokers. Until it is called produced messages are discarded.
func Enable() {
	enabled.Store(true)
}

func Enabled() bool {
	return enabled.Load()
}

func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) Provider {
	return func(ctx context.Context) Provider {
		sd := producer.SpanHeaderDecorator(ctx)
		td := producer.TenantHeaderDecorator(ctx)
		return func(token string) producer.MessageProducer {
			if !enabled.Load() {
				return discard(l, token)
			}
			return producer.Produce(l)(producer.WriterProvider(topic.EnvProvider(l)(token)))(sd, td)
		}
	}
}

func discard(l logrus.FieldLogger, token string) producer.MessageProducer {
	return func(provider model.Provider[[]kafka.Message]) error {
		ms, err := provider()
		if err != nil {
			return err
		}
		l.Debugf("Kafka delivery disabled, discarding [%d] message(s) for [%s].", len(ms), token)
		return nil
	}
}
