package kart

// Option is a per-frame command field: Unset, or Set with a value
// A set false/zero is distinct from no command
type Option[T any] struct {
	value T
	set   bool
}

// Some wraps a value as a set option
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// Get returns the value and whether it was set
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was recorded
func (o Option[T]) IsSet() bool {
	return o.set
}

// OrElse returns the value, or def when unset
func (o Option[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}
