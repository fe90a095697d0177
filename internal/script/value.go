package script

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedValue reports a system value outside the closed Value variants.
var ErrMalformedValue = errors.New("malformed system value")

// Value is a system value. The set of implementations is closed.
type Value interface {
	isValue()
}

// Bool is emitted as a lowercase literal.
type Bool bool

// Text is emitted as a single-quoted literal.
type Text string

// Number is emitted as the shortest decimal literal.
type Number float64

// Int is emitted with all of its digits.
type Int int64

// Uint is emitted with all of its digits.
type Uint uint64

// DateTime is emitted through the DateFormatter.
type DateTime time.Time

// Structured is emitted through the Serializer.
type Structured struct {
	V any
}

func (Bool) isValue()       {}
func (Text) isValue()       {}
func (Number) isValue()     {}
func (Int) isValue()        {}
func (Uint) isValue()       {}
func (DateTime) isValue()   {}
func (Structured) isValue() {}

// ValueOf wraps a plain Go value into its Value variant.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrMalformedValue)
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return Text(x), nil
	case int:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(x), nil
	case uint32:
		return Uint(x), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return Number(x), nil
	case float64:
		return Number(x), nil
	case time.Time:
		return DateTime(x), nil
	default:
		return Structured{V: x}, nil
	}
}

// SystemValues is an insertion-ordered set of named system values.
type SystemValues struct {
	keys   []string
	values map[string]Value
}

// NewSystemValues creates an empty set.
func NewSystemValues() *SystemValues {
	return &SystemValues{values: make(map[string]Value)}
}

// Set stores v under key. Overwriting keeps the original position.
func (s *SystemValues) Set(key string, v Value) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.values[key] = v
}

// Get returns the value stored under key.
func (s *SystemValues) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns keys in insertion order.
func (s *SystemValues) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of values.
func (s *SystemValues) Len() int {
	return len(s.keys)
}
