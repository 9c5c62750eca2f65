package events

import (
	"time"

	"github.com/google/uuid"

	"client-ledger/shared"
)

type EventType string

type BaseEvent struct {
	EventID   uuid.UUID       `json:"eventId"`
	ClientID  shared.ClientID `json:"clientId"`
	Version   int             `json:"version"` // Version of the client account *after* this event is applied.
	Timestamp time.Time       `json:"timestamp"`
	Type      EventType       `json:"type"`
}

type Event interface {
	GetBase() BaseEvent
}

func (e BaseEvent) GetBase() BaseEvent {
	return e
}

const (
	TransactionRecordedType EventType = "TransactionRecorded"
	DisputeOpenedType       EventType = "DisputeOpened"
	DisputeResolvedType     EventType = "DisputeResolved"
	ChargebackAppliedType   EventType = "ChargebackApplied"
)

func NewBaseEvent(clientID shared.ClientID, version int, eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New(),
		ClientID:  clientID,
		Version:   version,
		Timestamp: time.Now().UTC(),
		Type:      eventType,
	}
}
