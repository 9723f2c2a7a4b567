package visitor

// Acceptor is the dispatching side of an Accept call: a Dispatcher or an
// Adapter. The interface is closed, only types of this package implement it.
type Acceptor interface {
	accept(key typeKey, v any) error
	bound(key typeKey) bool
}

// Accept forwards v, as its own concrete type, to the acceptor's handler for
// exactly that type. It reports ErrVisitableNil for a nil v, ErrAcceptorNil
// for a nil acceptor, and ErrNotBound when the acceptor declares no handler
// for the type. A handler error is returned unmodified.
//
// Accept is what makes a type visitable: any concrete type can be accepted
// without implementing an interface or embedding anything, and v is
// forwarded by pointer, never copied.
func Accept[Visitable any](v *Visitable, acceptor Acceptor) error {
	if v == nil {
		return ErrVisitableNil
	}
	if acceptor == nil {
		return ErrAcceptorNil
	}
	return acceptor.accept(keyOf[Visitable](), v)
}

// Dispatch is Accept with the acceptor first. The two are equivalent and
// exist so call sites can read either way around.
func Dispatch[Visitable any](acceptor Acceptor, v *Visitable) error {
	return Accept(v, acceptor)
}

// Bound reports whether the acceptor declares a handler for the type
// Visitable. It lets construction sites verify that a closed type set is
// fully covered before the first dispatch.
func Bound[Visitable any](acceptor Acceptor) bool {
	if acceptor == nil {
		return false
	}
	return acceptor.bound(keyOf[Visitable]())
}
