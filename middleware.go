package visitor

// Middleware allows us to write something like decorators to Handler.
// It can execute something before Handle or after.
type Middleware[Visitable any] interface {
	// Decorate wraps the underlying Handler, adding some functionality.
	Decorate(handler Handler[Visitable]) Handler[Visitable]
}

// The MiddlewareFunc type is an adapter to allow the use of ordinary functions as Middleware.
// If f is a function with the appropriate signature, MiddlewareFunc(f) is a Middleware that calls f.
type MiddlewareFunc[Visitable any] func(handler Handler[Visitable]) Handler[Visitable]

// Decorate call f(handler).
func (f MiddlewareFunc[Visitable]) Decorate(handler Handler[Visitable]) Handler[Visitable] {
	return f(handler)
}

// ChainHandler decorates the given Handler with all middlewares, the first
// middleware being the outermost.
func ChainHandler[Visitable any](handler Handler[Visitable], middlewares ...Middleware[Visitable]) Handler[Visitable] {
	var chain Handler[Visitable]
	chain = handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i].Decorate(chain)
	}
	return chain
}

// ResultMiddleware allows us to write something like decorators to ResultHandler.
// It can execute something before Handle or after.
type ResultMiddleware[Visitable any, Result any] interface {
	// Decorate wraps the underlying ResultHandler, adding some functionality.
	Decorate(handler ResultHandler[Visitable, Result]) ResultHandler[Visitable, Result]
}

// The ResultMiddlewareFunc type is an adapter to allow the use of ordinary functions as ResultMiddleware.
// If f is a function with the appropriate signature, ResultMiddlewareFunc(f) is a ResultMiddleware that calls f.
type ResultMiddlewareFunc[Visitable any, Result any] func(handler ResultHandler[Visitable, Result]) ResultHandler[Visitable, Result]

// Decorate call f(handler).
func (f ResultMiddlewareFunc[Visitable, Result]) Decorate(handler ResultHandler[Visitable, Result]) ResultHandler[Visitable, Result] {
	return f(handler)
}

// ChainResultHandler decorates the given ResultHandler with all middlewares,
// the first middleware being the outermost.
func ChainResultHandler[Visitable any, Result any](handler ResultHandler[Visitable, Result], middlewares ...ResultMiddleware[Visitable, Result]) ResultHandler[Visitable, Result] {
	var chain ResultHandler[Visitable, Result]
	chain = handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i].Decorate(chain)
	}
	return chain
}
