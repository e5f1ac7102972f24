// Package fetch tracks the loading lifecycle of a view's data.
package fetch

import "sync/atomic"

// Phase is the observable stage of a fetch.
type Phase int

const (
	// Loading is the initial phase and the phase after every Begin.
	Loading Phase = iota
	// Loaded means the payload holds the latest result.
	Loaded
	// Error means the latest fetch failed and the payload is empty.
	Error
)

func (p Phase) String() string {
	switch p {
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	default:
		return "loading"
	}
}

var owners atomic.Uint64

// Token identifies one fetch started on one State.
type Token struct {
	owner uint64
	gen   uint64
}

// State holds the phase and payload of the most recent fetch. Results for
// any fetch other than the latest one are dropped.
type State[T any] struct {
	owner   uint64
	gen     uint64
	phase   Phase
	payload T
	err     error
}

// New returns a State in the Loading phase.
func New[T any]() *State[T] {
	return &State[T]{owner: owners.Add(1)}
}

// Begin starts a new fetch: the phase returns to Loading, the payload is
// cleared and earlier tokens become stale.
func (s *State[T]) Begin() Token {
	var zero T
	s.gen++
	s.phase = Loading
	s.payload = zero
	s.err = nil
	return Token{owner: s.owner, gen: s.gen}
}

// Current reports whether tok belongs to the latest fetch on s.
func (s *State[T]) Current(tok Token) bool {
	return tok.owner == s.owner && tok.gen == s.gen
}

// Resolve records the result of the fetch started with tok. It returns false,
// leaving the state untouched, when tok is stale or the fetch already settled.
func (s *State[T]) Resolve(tok Token, payload T, err error) bool {
	if !s.Current(tok) || s.phase != Loading {
		return false
	}
	if err != nil {
		var zero T
		s.phase = Error
		s.payload = zero
		s.err = err
		return true
	}
	s.phase = Loaded
	s.payload = payload
	return true
}

// Phase returns the current phase.
func (s *State[T]) Phase() Phase { return s.phase }

// Payload returns the loaded payload, the zero value otherwise.
func (s *State[T]) Payload() T { return s.payload }

// Err returns the error of the latest fetch when in the Error phase.
func (s *State[T]) Err() error { return s.err }
