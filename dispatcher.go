package visitor

import "fmt"

var _ Acceptor = (*Dispatcher)(nil)

// Dispatcher routes a visitable to the one Handler bound to the visitable's
// exact static type. The bound type set is fixed at construction and a
// Dispatcher is immutable afterwards, so it is safe for concurrent use.
//
// Selection is by static type only. A visitable whose type also satisfies
// some interface handled elsewhere is still routed by its own type, and a
// type outside the set is reported as ErrNotBound, never handled "close
// enough".
type Dispatcher struct {
	head *cell
}

// cell is one link of the handling chain: the binding for its own type
// extended with the chain for the remaining types. A single-type Dispatcher
// is one cell with no tail.
type cell struct {
	binding Binding
	next    *cell
}

// NewDispatcher composes bindings into a Dispatcher, one binding per
// concrete type. It fails with ErrNoBindings on an empty binding list,
// ErrHandlerNil on a binding made from a nil handler, and
// ErrDuplicateBinding when two bindings declare the same type.
func NewDispatcher(bindings ...Binding) (*Dispatcher, error) {
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
	return &Dispatcher{head: chain(bindings)}, nil
}

// chain links bindings into cells, the first binding extending the chain of
// the remaining ones. It bottoms out at exactly one binding.
func chain(bindings []Binding) *cell {
	if len(bindings) == 1 {
		return &cell{binding: bindings[0]}
	}
	return &cell{binding: bindings[0], next: chain(bindings[1:])}
}

// Len returns the number of bound types.
func (d *Dispatcher) Len() int {
	n := 0
	for c := d.head; c != nil; c = c.next {
		n++
	}
	return n
}

func (d *Dispatcher) accept(key typeKey, v any) error {
	for c := d.head; c != nil; c = c.next {
		if c.binding.key == key {
			return c.binding.invoke(v)
		}
	}
	return fmt.Errorf("%w: %T", ErrNotBound, v)
}

func (d *Dispatcher) bound(key typeKey) bool {
	for c := d.head; c != nil; c = c.next {
		if c.binding.key == key {
			return true
		}
	}
	return false
}
