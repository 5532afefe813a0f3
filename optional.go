// Package optional provides a generic container holding zero or one value.
package optional

import "errors"

// ErrNoValue is returned (or carried by a panic from MustValue) when a
// value accessor is called on an empty Option. Accessing an empty Option
// is caller misuse, not a recoverable runtime condition.
var ErrNoValue = errors.New("optional: no value present")

// Option represents an optional value.
// It either contains a value or it does not.
//
// The zero value of Option is empty and ready to use. Option is a value
// type: assigning one Option to another copies the contained value, and
// the copies are independent afterwards (as independent as values of T
// are under Go assignment).
//
// An Option must not be mutated concurrently without external
// synchronization, same as any other value.
type Option[T any] struct {
	value    T
	hasValue bool
}

// Some returns an Option containing value.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:    value,
		hasValue: true,
	}
}

// None returns an empty Option.
// It is equivalent to the zero value of Option[T].
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns an Option containing *p, or an empty Option when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}

	return Some(*p)
}

// HasValue returns true if the Option contains a value.
func (o Option[T]) HasValue() bool {
	return o.hasValue
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.hasValue
}

// Value returns the contained value.
// It returns ErrNoValue if the Option is empty.
func (o Option[T]) Value() (T, error) {
	if !o.hasValue {
		var zero T

		return zero, ErrNoValue
	}

	return o.value, nil
}

// MustValue returns the contained value.
// It panics with ErrNoValue if the Option is empty.
func (o Option[T]) MustValue() T {
	if !o.hasValue {
		panic(ErrNoValue)
	}

	return o.value
}

// Get returns the contained value and whether it is present.
// When the Option is empty, the returned value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

// ValueOr returns the contained value if present, otherwise fallback.
func (o Option[T]) ValueOr(fallback T) T {
	if !o.hasValue {
		return fallback
	}

	return o.value
}

// Set replaces the contents of the Option with value.
func (o *Option[T]) Set(value T) {
	o.value = value
	o.hasValue = true
}

// Reset empties the Option, releasing any contained value.
// Calling Reset on an empty Option is a no-op.
func (o *Option[T]) Reset() {
	var zero T

	o.value = zero
	o.hasValue = false
}

// Take returns the current contents of the Option and empties it,
// transferring ownership of the contained value to the caller.
// Taking from an empty Option returns an empty Option.
func (o *Option[T]) Take() Option[T] {
	taken := *o

	o.Reset()

	return taken
}

// Ptr returns a pointer to the contained value, or nil if the Option is
// empty. The pointer aliases the Option's own storage: writes through it
// mutate the contained value in place.
func (o *Option[T]) Ptr() *T {
	if !o.hasValue {
		return nil
	}

	return &o.value
}
