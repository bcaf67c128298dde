package event

import (
	"encoding/json"
	"time"
)

type Event interface {
	Message() string
	OccurredAt() time.Time
}

type BaseEvent struct {
	Text string
	Time time.Time
}

func (b BaseEvent) Message() string {
	return b.Text
}

func (b BaseEvent) OccurredAt() time.Time {
	return b.Time
}

func WithMessage(message string) BaseEvent {
	return BaseEvent{
		Text: message,
		Time: time.Now(),
	}
}

// TemplatesUpdatedEvent carries the new template store snapshot after a
// successful mutation, already serialized for broadcast.
type TemplatesUpdatedEvent struct {
	BaseEvent
	Snapshot json.RawMessage
}

func TemplatesUpdated(be BaseEvent, snapshot json.RawMessage) TemplatesUpdatedEvent {
	return TemplatesUpdatedEvent{
		BaseEvent: be,
		Snapshot:  snapshot,
	}
}

// RelicRatedEvent is emitted after a relic scores against at least one
// character, for notification sinks.
type RelicRatedEvent struct {
	BaseEvent
	SetName    string
	PartName   string
	Characters []string
	MinPercent float64
	MaxPercent float64
}

func RelicRated(be BaseEvent, setName, partName string, characters []string, minPercent, maxPercent float64) RelicRatedEvent {
	return RelicRatedEvent{
		BaseEvent:  be,
		SetName:    setName,
		PartName:   partName,
		Characters: characters,
		MinPercent: minPercent,
		MaxPercent: maxPercent,
	}
}

// MutationFailedEvent is emitted when a template mutation is rejected, so
// remote sinks can surface the outcome message.
type MutationFailedEvent struct {
	BaseEvent
}

func MutationFailed(be BaseEvent) MutationFailedEvent {
	return MutationFailedEvent{BaseEvent: be}
}
