package state

import (
	"context"
	"sync"
)

// Store holds the current State. Dispatch replaces the whole value; readers
// only ever see complete states.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   map[int]chan State
	nextID int
}

func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[int]chan State)}
}

// State returns the current value.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and publishes the new state to subscribers.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	for _, ch := range s.subs {
		publish(ch, s.state)
	}
	return s.state
}

// Subscribe returns a stream of states starting with the current one. A slow
// reader only sees the latest state. The channel is closed when ctx ends.
func (s *Store) Subscribe(ctx context.Context) <-chan State {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan State, 1)
	ch <- s.state
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// publish replaces any unread state in ch with st. Callers hold s.mu, so
// there is a single sender.
func publish(ch chan State, st State) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- st
}
