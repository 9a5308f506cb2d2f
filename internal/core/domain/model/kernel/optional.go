package kernel

import "encoding/json"

// Optional holds a value that may be absent. Composed package attachments use it
// so that "resolved" and "missing" are distinguishable without nil pointers.
//
// The zero value is an empty Optional.
//
// Example:
//
//	hotel := kernel.Some(h)
//	if v, ok := hotel.Get(); ok {
//	    fmt.Println(v.Name)
//	}
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps v as a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the wrapped value or fallback when empty.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// MarshalJSON encodes an empty Optional as null and a present one as its value.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
