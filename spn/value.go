// Package spn decodes and encodes the Suspect Parameter Number (SPN) signal
// payloads of J1939 parameter groups. Each supported group has a typed
// message with a Decode constructor and a MarshalPDU method; both directions
// are total and preserve the exact byte patterns of the error-indicator and
// not-available sentinels.
//
// Decoding a buffer shorter than a message's declared width is a caller
// error, not a recoverable condition: the codec indexes the buffer directly
// and will panic. Callers that only know the PGN at runtime should go
// through the dispatch package, which validates lengths first.
package spn

import "fmt"

type state uint8

const (
	stateAvailable state = iota
	stateError
	stateNotAvailable
)

// Value is a decoded signal: either an available reading, the error
// indicator, or the not-available state. The two non-numeric states are
// valid decoded values that callers must branch on explicitly; they are not
// codec errors.
type Value[T any] struct {
	state state
	value T
}

// Available wraps an available reading.
func Available[T any](value T) Value[T] {
	return Value[T]{state: stateAvailable, value: value}
}

// ErrorIndicator returns the error-indicator state.
func ErrorIndicator[T any]() Value[T] {
	return Value[T]{state: stateError}
}

// NotAvailable returns the not-available state.
func NotAvailable[T any]() Value[T] {
	return Value[T]{state: stateNotAvailable}
}

// Get returns the reading and whether one is available.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.state == stateAvailable
}

// IsAvailable reports whether the value carries a reading.
func (v Value[T]) IsAvailable() bool {
	return v.state == stateAvailable
}

// IsErrorIndicator reports whether the value is the error indicator.
func (v Value[T]) IsErrorIndicator() bool {
	return v.state == stateError
}

// IsNotAvailable reports whether the value is the not-available state.
func (v Value[T]) IsNotAvailable() bool {
	return v.state == stateNotAvailable
}

func (v Value[T]) String() string {
	switch v.state {
	case stateError:
		return "<error>"
	case stateNotAvailable:
		return "-"
	default:
		return fmt.Sprintf("%v", v.value)
	}
}
