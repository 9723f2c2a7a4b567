// Package measures is the visitorgen example for the result form. The
// Measure visitor is generated from the visitor.yaml config next to this
// file.
package measures

//go:generate visitorgen -config visitor.yaml

type Circle struct {
	Radius float64
}

type Square struct {
	Side float64
}

type Blob struct {
}
