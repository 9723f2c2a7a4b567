package visitor

import "fmt"

var _ Acceptor = (*Adapter[any])(nil)

// Adapter collapses the per-type handlers of a closed type set into one
// shared result type and keeps the result of the most recent dispatch.
// Unlike a Dispatcher it is stateful: every successful dispatch overwrites
// the slot read by Get, a failed dispatch leaves it untouched.
//
// The result slot makes an Adapter single-owner. Concurrent dispatch
// requires external serialization or one Adapter per goroutine.
type Adapter[Result any] struct {
	head   *resultCell[Result]
	result Result
}

type resultCell[Result any] struct {
	binding ResultBinding[Result]
	next    *resultCell[Result]
}

// NewAdapter composes bindings into an Adapter, one binding per concrete
// type, all handlers producing the same result type. It fails with
// ErrNoBindings on an empty binding list, ErrHandlerNil on a binding made
// from a nil handler, and ErrDuplicateBinding when two bindings declare the
// same type.
func NewAdapter[Result any](bindings ...ResultBinding[Result]) (*Adapter[Result], error) {
	if len(bindings) == 0 {
		return nil, ErrNoBindings
	}
	seen := make(map[typeKey]struct{}, len(bindings))
	for _, b := range bindings {
		if b.invoke == nil {
			return nil, fmt.Errorf("%w: %s", ErrHandlerNil, b.name)
		}
		if _, ok := seen[b.key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBinding, b.name)
		}
		seen[b.key] = struct{}{}
	}
	return &Adapter[Result]{head: chainResult(bindings)}, nil
}

func chainResult[Result any](bindings []ResultBinding[Result]) *resultCell[Result] {
	if len(bindings) == 1 {
		return &resultCell[Result]{binding: bindings[0]}
	}
	return &resultCell[Result]{binding: bindings[0], next: chainResult(bindings[1:])}
}

// Get returns the result of the most recent successful dispatch, or a zero
// Result before the first one.
func (a *Adapter[Result]) Get() Result {
	return a.result
}

// Len returns the number of bound types.
func (a *Adapter[Result]) Len() int {
	n := 0
	for c := a.head; c != nil; c = c.next {
		n++
	}
	return n
}

func (a *Adapter[Result]) accept(key typeKey, v any) error {
	for c := a.head; c != nil; c = c.next {
		if c.binding.key == key {
			r, err := c.binding.invoke(v)
			if err != nil {
				return err
			}
			a.result = r
			return nil
		}
	}
	return fmt.Errorf("%w: %T", ErrNotBound, v)
}

func (a *Adapter[Result]) bound(key typeKey) bool {
	for c := a.head; c != nil; c = c.next {
		if c.binding.key == key {
			return true
		}
	}
	return false
}

// Apply dispatches v and returns the freshly stored result. On a successful
// dispatch it is exactly Accept followed by Get; on a failed one it returns
// a zero Result and the error, and the slot read by Get keeps its previous
// value.
func Apply[Result any, Visitable any](a *Adapter[Result], v *Visitable) (Result, error) {
	if err := Accept(v, a); err != nil {
		return *new(Result), err
	}
	return a.Get(), nil
}
