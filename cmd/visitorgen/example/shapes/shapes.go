// Package shapes is the visitorgen example. The Shape visitor over its three
// concrete types is generated from the go:generate directive below.
package shapes

//go:generate visitorgen -name Shape -types Circle,Square,Blob

type Circle struct {
	Radius float64
}

type Square struct {
	Side float64
}

type Blob struct {
}
