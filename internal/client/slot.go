package client

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/seifeddinerezgui/gethrought/internal/querykey"
)

// State is what a slot currently shows.
type State struct {
	Key       string
	Data      json.RawMessage
	IsLoading bool
	Error     error
}

// Slot is one place in a UI that displays a single query at a time.
// Only the latest Request is applied; responses to superseded requests are dropped.
type Slot struct {
	queries  *QueryClient
	onChange func(State)

	mu    sync.Mutex
	seq   uint64
	state State
}

// NewSlot creates a slot reading through q. onChange, when set, is called after each state change.
func (q *QueryClient) NewSlot(onChange func(State)) *Slot {
	return &Slot{queries: q, onChange: onChange}
}

// State returns the current state.
func (s *Slot) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Request switches the slot to (path, params). A cached key is applied at once; otherwise
// the slot is loading until the fetch settles. The returned channel is closed once this
// request has been applied or discarded.
func (s *Slot) Request(ctx context.Context, path string, params map[string]string) <-chan struct{} {
	key := querykey.Key(path, params)
	done := make(chan struct{})

	s.mu.Lock()
	s.seq++
	seq := s.seq
	if data, ok := s.queries.Cached(key); ok {
		s.state = State{Key: key, Data: data}
		state := s.state
		s.mu.Unlock()
		s.notify(state)
		close(done)
		return done
	}
	s.state = State{Key: key, IsLoading: true}
	state := s.state
	s.mu.Unlock()
	s.notify(state)

	go func() {
		defer close(done)
		res := s.queries.Query(ctx, path, params)

		s.mu.Lock()
		if seq != s.seq {
			s.mu.Unlock()
			return
		}
		s.state = State{Key: key, Data: res.Data, Error: res.Err}
		state := s.state
		s.mu.Unlock()
		s.notify(state)
	}()
	return done
}

func (s *Slot) notify(state State) {
	if s.onChange != nil {
		s.onChange(state)
	}
}

// Decode unmarshals the data of a settled state.
func Decode[T any](data json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}
