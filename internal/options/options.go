// Package options implements the generic functional-option pattern shared by the
// nbt, blob and region constructors.
package options

import "fmt"

// Option configures a target of type T and may reject the configuration.
type Option[T any] interface {
	apply(T) error
}

// Func is a functional option backed by a plain function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from fn.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Positive returns an error naming the option when v is not strictly positive.
func Positive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("invalid %s: %d, must be positive", name, v)
	}

	return nil
}
