// Package visitor routes a value to the one handler bound to the value's
// exact static type.
//
// A closed set of concrete types is composed, one Handler per type, into a
// Dispatcher, and any value of those types is forwarded to its handler with
// the free function Accept. The handler is selected through the call's type
// argument, so no reflection and no type switch is involved, and a value
// never has to implement an interface or embed anything to be visitable.
//
//	d, err := visitor.NewDispatcher(
//		visitor.BindFunc(func(c *Circle) error { ... }),
//		visitor.BindFunc(func(s *Square) error { ... }),
//	)
//	if err != nil {
//		...
//	}
//	err = visitor.Accept(&circle, d)
//
// Adapter is the Dispatcher variant with one shared result type: every
// handler produces a Result, the most recent result is retained and read
// with Get, and Apply combines dispatch and read into one call.
//
// A Dispatcher is immutable after construction and safe for concurrent use.
// An Adapter carries a result slot and is meant for a single caller; see
// Adapter.
package visitor
