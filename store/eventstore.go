package store

import (
	"errors"
	"fmt"
	"sync"

	"client-ledger/events"
	"client-ledger/shared"
)

var (
	ErrOptimisticLock = errors.New("optimistic lock error: version conflict")
)

// EventStore keeps the journal of accepted operations, one stream per client.
type EventStore interface {
	SaveEvents(clientID shared.ClientID, expectedVersion int, eventsToSave []events.Event) error

	GetEvents(clientID shared.ClientID) ([]events.Event, error)

	GetEventsAfterVersion(clientID shared.ClientID, version int) ([]events.Event, error)

	// AllEvents returns every saved event in the order it was saved.
	AllEvents() ([]events.Event, error)
}

type InMemoryEventStore struct {
	sync.RWMutex
	streams map[shared.ClientID][]events.Event
	log     []events.Event
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[shared.ClientID][]events.Event),
	}
}

func (s *InMemoryEventStore) SaveEvents(clientID shared.ClientID, expectedVersion int, newEvents []events.Event) error {
	s.Lock()
	defer s.Unlock()

	if len(newEvents) == 0 {
		return nil
	}

	stream := s.streams[clientID]
	currentVersion := 0
	if len(stream) > 0 {
		currentVersion = stream[len(stream)-1].GetBase().Version
	}

	if currentVersion != expectedVersion {
		return fmt.Errorf("%w: expected version %d, but current version is %d for client %d",
			ErrOptimisticLock, expectedVersion, currentVersion, clientID)
	}

	nextVersion := expectedVersion
	for _, event := range newEvents {
		base := event.GetBase()
		nextVersion++
		if base.Version != nextVersion {
			return fmt.Errorf("event sequence error for client %d: expected version %d for event %T (%s), but got %d",
				clientID, nextVersion, event, base.EventID, base.Version)
		}
		if base.ClientID != clientID {
			return fmt.Errorf("event client mismatch: stream is for %d, but event %T (%s) has client %d",
				clientID, event, base.EventID, base.ClientID)
		}
	}

	s.streams[clientID] = append(stream, newEvents...)
	s.log = append(s.log, newEvents...)
	return nil
}

func (s *InMemoryEventStore) GetEvents(clientID shared.ClientID) ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	return copyEvents(s.streams[clientID]), nil
}

func (s *InMemoryEventStore) GetEventsAfterVersion(clientID shared.ClientID, version int) ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	streamData := s.streams[clientID]
	for i, event := range streamData {
		if event.GetBase().Version > version {
			return copyEvents(streamData[i:]), nil
		}
	}
	return []events.Event{}, nil
}

func (s *InMemoryEventStore) AllEvents() ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	return copyEvents(s.log), nil
}

func copyEvents(src []events.Event) []events.Event {
	copied := make([]events.Event, len(src))
	copy(copied, src)
	return copied
}
