package visitor

import "errors"

var (
	// ErrHandlerNil a Binding or ResultBinding was made from a nil handler
	ErrHandlerNil = errors.New("handler is nil")

	// ErrNoBindings NewDispatcher or NewAdapter was called without bindings
	ErrNoBindings = errors.New("no bindings")

	// ErrDuplicateBinding two bindings declare the same visitable type
	ErrDuplicateBinding = errors.New("type already bound")

	// ErrNotBound the visitable's type is outside the declared type set
	ErrNotBound = errors.New("type not bound")

	// ErrVisitableNil visitable arg is nil
	ErrVisitableNil = errors.New("visitable is nil")

	// ErrAcceptorNil Acceptor arg is nil
	ErrAcceptorNil = errors.New("acceptor is nil")
)
