package message

import (
	"atlas-sorter/kafka/producer"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

// Buffer collects messages while an operation runs so they can be emitted only once it succeeds.
type Buffer struct {
	order    []string
	messages map[string][]kafka.Message
}

func NewBuffer() *Buffer {
	return &Buffer{messages: make(map[string][]kafka.Message)}
}

func (b *Buffer) Put(token string, p model.Provider[[]kafka.Message]) error {
	ms, err := p()
	if err != nil {
		return err
	}
	if _, ok := b.messages[token]; !ok {
		b.order = append(b.order, token)
	}
	b.messages[token] = append(b.messages[token], ms...)
	return nil
}

func (b *Buffer) GetAll() map[string][]kafka.Message {
	return b.messages
}

// Emit runs f against a fresh buffer and, when f succeeds, produces everything it buffered.
func Emit(p producer.Provider) func(f func(*Buffer) error) error {
	return func(f func(*Buffer) error) error {
		b := NewBuffer()
		err := f(b)
		if err != nil {
			return err
		}
		for _, token := range b.order {
			err = p(token)(model.FixedProvider(b.messages[token]))
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// EmitWithResult is Emit for operations that also produce a value.
func EmitWithResult[M any](p producer.Provider) func(f func(*Buffer) (M, error)) (M, error) {
	return func(f func(*Buffer) (M, error)) (M, error) {
		var result M
		err := Emit(p)(func(b *Buffer) error {
			var err error
			result, err = f(b)
			return err
		})
		return result, err
	}
}
