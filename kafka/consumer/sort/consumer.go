package sort

import (
	consumer2 "atlas-sorter/kafka/consumer"
	sort2 "atlas-sorter/kafka/message/sort"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/locked"
	"atlas-sorter/preference"
	"atlas-sorter/region"
	"atlas-sorter/sorter"
	"atlas-sorter/sorting"
	"context"
	"errors"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	"github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitConsumers(l logrus.FieldLogger) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			rf(consumer2.NewConfig(l)("sort_command")(sort2.EnvCommandTopic)(consumerGroupId), consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
		}
	}
}

func InitHandlers(l logrus.FieldLogger) func(db *gorm.DB) func(c sorter.Collaborators) func(rf func(topic string, handler handler.Handler) (string, error)) {
	return func(db *gorm.DB) func(c sorter.Collaborators) func(rf func(topic string, handler handler.Handler) (string, error)) {
		return func(c sorter.Collaborators) func(rf func(topic string, handler handler.Handler) (string, error)) {
			return func(rf func(topic string, handler handler.Handler) (string, error)) {
				var t string
				t, _ = topic.EnvProvider(l)(sort2.EnvCommandTopic)()
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleSortRegionCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleSortInventoryCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleToggleLockCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleUnlockAllCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleCyclePreferenceCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleNextMethodCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleToggleOrderCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleSetPreferenceCommand(db, c))))
				_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleResetPreferenceCommand(db, c))))
			}
		}
	}
}

func handleSortRegionCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.SortRegionCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.SortRegionCommandBody]) {
		if cmd.Type != sort2.CommandSortRegion {
			return
		}
		r, err := region.FromCode(cmd.Body.Region)
		if err == nil {
			_, err = sorter.NewProcessor(l, ctx, db, c).SortRegionAndEmit(cmd.PlayerId, r)
		}
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func handleSortInventoryCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.SortInventoryCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.SortInventoryCommandBody]) {
		if cmd.Type != sort2.CommandSortInventory {
			return
		}
		_, err := sorter.NewProcessor(l, ctx, db, c).SortInventoryAndEmit(cmd.PlayerId)
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func handleToggleLockCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.ToggleLockCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.ToggleLockCommandBody]) {
		if cmd.Type != sort2.CommandToggleLock {
			return
		}
		slot, err := locked.ParseIndex(cmd.Body.Slot)
		if err == nil {
			_, err = locked.NewProcessor(l, ctx, db, c.Locks).ToggleLockAndEmit(cmd.PlayerId, slot)
		}
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func handleUnlockAllCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.UnlockAllCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.UnlockAllCommandBody]) {
		if cmd.Type != sort2.CommandUnlockAll {
			return
		}
		_, err := locked.NewProcessor(l, ctx, db, c.Locks).UnlockAllAndEmit(cmd.PlayerId)
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func preferenceProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c sorter.Collaborators) *preference.Processor {
	return preference.NewProcessor(l, ctx, db, c.Locks).WithDefaults(c.Defaults)
}

func handleCyclePreferenceCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.CyclePreferenceCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.CyclePreferenceCommandBody]) {
		if cmd.Type != sort2.CommandCyclePreference {
			return
		}
		_, err := preferenceProcessor(l, ctx, db, c).CycleAndEmit(cmd.PlayerId)
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func handleNextMethodCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.NextMethodCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.NextMethodCommandBody]) {
		if cmd.Type != sort2.CommandNextMethod {
			return
		}
		_, err := preferenceProcessor(l, ctx, db, c).NextMethodAndEmit(cmd.PlayerId)
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func handleToggleOrderCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.ToggleOrderCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.ToggleOrderCommandBody]) {
		if cmd.Type != sort2.CommandToggleOrder {
			return
		}
		_, err := preferenceProcessor(l, ctx, db, c).ToggleOrderAndEmit(cmd.PlayerId)
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func handleSetPreferenceCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.SetPreferenceCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.SetPreferenceCommandBody]) {
		if cmd.Type != sort2.CommandSetPreference {
			return
		}
		_, err := preferenceProcessor(l, ctx, db, c).SetAndEmit(cmd.PlayerId, cmd.Body.Method, cmd.Body.Order)
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

func handleResetPreferenceCommand(db *gorm.DB, c sorter.Collaborators) message.Handler[sort2.Command[sort2.ResetPreferenceCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd sort2.Command[sort2.ResetPreferenceCommandBody]) {
		if cmd.Type != sort2.CommandResetPreference {
			return
		}
		_, err := preferenceProcessor(l, ctx, db, c).ResetAndEmit(cmd.PlayerId)
		reject(l, ctx, cmd.PlayerId, cmd.Type, err)
	}
}

const (
	ErrorCodeInvalidRegion     = "INVALID_REGION"
	ErrorCodeInvalidSlot       = "INVALID_SLOT"
	ErrorCodeInvalidPreference = "INVALID_PREFERENCE"
	ErrorCodeNotApplicable     = "NOT_APPLICABLE"
	ErrorCodeNotFound          = "NOT_FOUND"
	ErrorCodeUnknown           = "UNKNOWN"
)

func ErrorCode(err error) string {
	switch {
	case errors.Is(err, region.ErrInvalidRegion):
		return ErrorCodeInvalidRegion
	case errors.Is(err, locked.ErrInvalidSlotIndex):
		return ErrorCodeInvalidSlot
	case errors.Is(err, sorting.ErrInvalidPreferenceValue):
		return ErrorCodeInvalidPreference
	case errors.Is(err, sorter.ErrNotApplicable):
		return ErrorCodeNotApplicable
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrorCodeNotFound
	}
	return ErrorCodeUnknown
}

// reject reports a failed command back to the player. The command itself is dropped.
func reject(l logrus.FieldLogger, ctx context.Context, playerId uuid.UUID, command string, err error) {
	if err == nil {
		return
	}
	code := ErrorCode(err)
	l.WithError(err).Warnf("Rejected [%s] command for player [%s] with [%s].", command, playerId.String(), code)
	perr := producer.ProviderImpl(l)(ctx)(sort2.EnvEventTopicStatus)(sorter.ErrorEventStatusProvider(playerId, command, code))
	if perr != nil {
		l.WithError(perr).Errorf("Unable to report [%s] rejection to player [%s].", command, playerId.String())
	}
}
