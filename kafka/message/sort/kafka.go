package sort

import "github.com/google/uuid"

const (
	EnvCommandTopic        = "COMMAND_TOPIC_SORT"
	CommandSortRegion      = "SORT_REGION"
	CommandSortInventory   = "SORT_INVENTORY"
	CommandToggleLock      = "TOGGLE_LOCK"
	CommandUnlockAll       = "UNLOCK_ALL"
	CommandCyclePreference = "CYCLE_PREFERENCE"
	CommandNextMethod      = "NEXT_METHOD"
	CommandToggleOrder     = "TOGGLE_ORDER"
	CommandSetPreference   = "SET_PREFERENCE"
	CommandResetPreference = "RESET_PREFERENCE"
)

type Command[E any] struct {
	PlayerId uuid.UUID `json:"playerId"`
	Type     string    `json:"type"`
	Body     E         `json:"body"`
}

type SortRegionCommandBody struct {
	Region int `json:"region"`
}

type SortInventoryCommandBody struct {
}

type ToggleLockCommandBody struct {
	Slot int `json:"slot"`
}

type UnlockAllCommandBody struct {
}

type CyclePreferenceCommandBody struct {
}

type NextMethodCommandBody struct {
}

type ToggleOrderCommandBody struct {
}

type SetPreferenceCommandBody struct {
	Method string `json:"method"`
	Order  string `json:"order"`
}

type ResetPreferenceCommandBody struct {
}

const (
	EnvEventTopicStatus   = "EVENT_TOPIC_SORT_STATUS"
	StatusEventTypeSorted = "SORTED"
	StatusEventTypeError  = "ERROR"
)

type StatusEvent[E any] struct {
	PlayerId uuid.UUID `json:"playerId"`
	Type     string    `json:"type"`
	Body     E         `json:"body"`
}

type SlotBody struct {
	ContainerId uuid.UUID `json:"containerId"`
	Slot        int16     `json:"slot"`
	ItemId      string    `json:"itemId"`
	Quantity    uint32    `json:"quantity"`
	Components  string    `json:"components,omitempty"`
}

type SortedStatusEventBody struct {
	Region byte       `json:"region"`
	Method string     `json:"method"`
	Order  string     `json:"order"`
	Slots  []SlotBody `json:"slots"`
}

type ErrorStatusEventBody struct {
	Command   string `json:"command"`
	ErrorCode string `json:"errorCode"`
}
