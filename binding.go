package visitor

import "fmt"

// typeKey identifies one concrete visitable type. keyOf materializes a typed
// nil pointer per instantiation, so two keys compare equal exactly when the
// type arguments are identical. No reflection is involved; the key is fixed
// when the generic call is compiled.
type typeKey any

func keyOf[Visitable any]() typeKey {
	return (*Visitable)(nil)
}

func nameOf[Visitable any]() string {
	return fmt.Sprintf("%T", *new(Visitable))
}

// Binding associates one concrete visitable type with its Handler. Bindings
// are composed into a Dispatcher by NewDispatcher.
type Binding struct {
	key    typeKey
	name   string
	invoke func(v any) error
}

// Bind binds the type Visitable to handler. The handler receives every
// visitable of exactly that type dispatched through the Dispatcher the
// binding is composed into.
func Bind[Visitable any](handler Handler[Visitable]) Binding {
	b := Binding{key: keyOf[Visitable](), name: nameOf[Visitable]()}
	if handler == nil {
		return b
	}
	b.invoke = func(v any) error {
		return handler.Handle(v.(*Visitable))
	}
	return b
}

// BindFunc binds the type Visitable to an ordinary function.
func BindFunc[Visitable any](f func(v *Visitable) error) Binding {
	if f == nil {
		return Binding{key: keyOf[Visitable](), name: nameOf[Visitable]()}
	}
	return Bind[Visitable](HandlerFunc[Visitable](f))
}

// ResultBinding associates one concrete visitable type with a ResultHandler
// producing the shared result type Result. ResultBindings are composed into
// an Adapter by NewAdapter.
type ResultBinding[Result any] struct {
	key    typeKey
	name   string
	invoke func(v any) (Result, error)
}

// BindResult binds the type Visitable to handler.
func BindResult[Visitable any, Result any](handler ResultHandler[Visitable, Result]) ResultBinding[Result] {
	b := ResultBinding[Result]{key: keyOf[Visitable](), name: nameOf[Visitable]()}
	if handler == nil {
		return b
	}
	b.invoke = func(v any) (Result, error) {
		return handler.Handle(v.(*Visitable))
	}
	return b
}

// BindResultFunc binds the type Visitable to an ordinary function.
func BindResultFunc[Visitable any, Result any](f func(v *Visitable) (Result, error)) ResultBinding[Result] {
	if f == nil {
		return ResultBinding[Result]{key: keyOf[Visitable](), name: nameOf[Visitable]()}
	}
	return BindResult[Visitable, Result](ResultHandlerFunc[Visitable, Result](f))
}
