// Package optional provides a zero-or-one value container. An Option is
// backed by a slice so an absent value allocates nothing and a present
// value carries exactly one element.
package optional

// Option holds zero or one values of T.
type Option[T any] []T

// None returns an empty Option.
func None[T any]() Option[T] {
	return nil
}

// Some wraps v in a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{v}
}

// Has reports whether a value is present.
func (o Option[T]) Has() bool {
	return o != nil
}

// Value returns the contained value, or the zero value when absent.
func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

// ValueOrDefault returns the contained value, or v when absent.
func (o Option[T]) ValueOrDefault(v T) T {
	if o.Has() {
		return o[0]
	}
	return v
}
