// Package loadstate models the lifecycle of one asynchronous dashboard load:
// Idle, Loading, Loaded(value) or Failed(error).
//
// A State is a value; it is replaced, never mutated. Loaded states carry no
// error and Failed states carry no data, so "loading with a stale error" and
// similar combinations cannot be built.
package loadstate

import (
	"context"
	"encoding/json"
)

// Kind tags a State.
type Kind int

const (
	Idle Kind = iota
	Loading
	Loaded
	Failed
)

func (k Kind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the tagged result of a load of T.
type State[T any] struct {
	kind Kind
	data T
	err  error
}

// NewIdle returns a state for a load that has not started.
func NewIdle[T any]() State[T] { return State[T]{kind: Idle} }

// NewLoading returns a state for a load in flight.
func NewLoading[T any]() State[T] { return State[T]{kind: Loading} }

// NewLoaded returns a successful state holding v.
func NewLoaded[T any](v T) State[T] { return State[T]{kind: Loaded, data: v} }

// NewFailed returns a failed state. A nil err is reported as ErrUnknown.
func NewFailed[T any](err error) State[T] {
	if err == nil {
		err = ErrUnknown
	}
	return State[T]{kind: Failed, err: err}
}

// Kind returns the state's tag.
func (s State[T]) Kind() Kind { return s.kind }

func (s State[T]) IsIdle() bool    { return s.kind == Idle }
func (s State[T]) IsLoading() bool { return s.kind == Loading }
func (s State[T]) IsLoaded() bool  { return s.kind == Loaded }
func (s State[T]) IsFailed() bool  { return s.kind == Failed }

// Data returns the loaded value; ok is false unless the state is Loaded.
func (s State[T]) Data() (v T, ok bool) {
	if s.kind != Loaded {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Value returns the loaded value or the zero T. Handy in templates.
func (s State[T]) Value() T {
	v, _ := s.Data()
	return v
}

// Err returns the failure, or nil unless the state is Failed.
func (s State[T]) Err() error {
	if s.kind != Failed {
		return nil
	}
	return s.err
}

// Run performs load and returns Loaded or Failed.
func Run[T any](ctx context.Context, load func(context.Context) (T, error)) State[T] {
	v, err := load(ctx)
	if err != nil {
		return NewFailed[T](err)
	}
	return NewLoaded(v)
}

type wire[T any] struct {
	State string `json:"state"`
	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// MarshalJSON encodes {"state":"loaded","data":...} or
// {"state":"failed","error":"..."}.
func (s State[T]) MarshalJSON() ([]byte, error) {
	w := wire[T]{State: s.kind.String()}
	switch s.kind {
	case Loaded:
		d := s.data
		w.Data = &d
	case Failed:
		w.Error = s.err.Error()
	}
	return json.Marshal(w)
}
