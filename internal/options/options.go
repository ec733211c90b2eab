// Package options implements the generic functional option pattern shared by every
// configurable type in mathviz.
package options

// Option represents a functional option for configuring a value of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is a functional option that wraps a function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
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

// Apply applies the options to target in order and stops at the first error.
// Nil options are skipped, so callers can build option lists conditionally.
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

// Build applies opts on top of the defaults produced by def and returns the result.
//
// This is the usual entry point for constructors:
//
//	cfg, err := options.Build(defaultConfig, opts...)
func Build[T any](def func() T, opts ...Option[T]) (T, error) {
	target := def()
	if err := Apply(target, opts...); err != nil {
		var zero T
		return zero, err
	}

	return target, nil
}
