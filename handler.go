package visitor

// Handler is a handler for visitables of a single concrete type.
//
// The dispatcher forwards the visitable by pointer, so the handler may read
// or mutate it; the dispatch mechanism itself never does either. A returned
// error is passed through to the Accept caller unmodified.
type Handler[Visitable any] interface {
	Handle(v *Visitable) error
}

// The HandlerFunc type is an adapter to allow the use of ordinary functions as Handler.
// If f is a function with the appropriate signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc[Visitable any] func(v *Visitable) error

// Handle calls f(v).
func (f HandlerFunc[Visitable]) Handle(v *Visitable) error {
	return f(v)
}

// NoopHandler is a Handler that does nothing and returns a nil error.
type NoopHandler[Visitable any] struct{}

func (NoopHandler[Visitable]) Handle(*Visitable) error { return nil }

// ResultHandler is a handler for visitables of a single concrete type that
// produces a value of the shared result type Result.
type ResultHandler[Visitable any, Result any] interface {
	Handle(v *Visitable) (Result, error)
}

// The ResultHandlerFunc type is an adapter to allow the use of ordinary functions as ResultHandler.
// If f is a function with the appropriate signature, ResultHandlerFunc(f) is a ResultHandler that calls f.
type ResultHandlerFunc[Visitable any, Result any] func(v *Visitable) (Result, error)

// Handle calls f(v).
func (f ResultHandlerFunc[Visitable, Result]) Handle(v *Visitable) (Result, error) {
	return f(v)
}

// NoopResultHandler is a ResultHandler that does nothing and returns a zero
// Result and a nil error.
type NoopResultHandler[Visitable any, Result any] struct{}

func (NoopResultHandler[Visitable, Result]) Handle(*Visitable) (Result, error) {
	return *new(Result), nil
}
