package visitor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-leo/visitor"
	"github.com/stretchr/testify/assert"
)

func TestChainHandler(t *testing.T) {
	var steps []string
	mw := func(name string) visitor.Middleware[Circle] {
		return visitor.MiddlewareFunc[Circle](func(next visitor.Handler[Circle]) visitor.Handler[Circle] {
			return visitor.HandlerFunc[Circle](func(c *Circle) error {
				steps = append(steps, name+" before")
				err := next.Handle(c)
				steps = append(steps, name+" after")
				return err
			})
		})
	}

	h := visitor.ChainHandler[Circle](
		visitor.HandlerFunc[Circle](func(c *Circle) error {
			steps = append(steps, "handle")
			return nil
		}),
		mw("outer"),
		mw("inner"),
	)
	assert.NoError(t, h.Handle(&Circle{}))
	assert.Equal(t, []string{"outer before", "inner before", "handle", "inner after", "outer after"}, steps)
}

func TestChainHandler_NoMiddlewares(t *testing.T) {
	called := false
	h := visitor.ChainHandler[Circle](visitor.HandlerFunc[Circle](func(c *Circle) error {
		called = true
		return nil
	}))
	assert.NoError(t, h.Handle(&Circle{}))
	assert.True(t, called)
}

func TestChainHandler_InDispatcher(t *testing.T) {
	var steps []string
	logging := visitor.MiddlewareFunc[Circle](func(next visitor.Handler[Circle]) visitor.Handler[Circle] {
		return visitor.HandlerFunc[Circle](func(c *Circle) error {
			steps = append(steps, "before")
			err := next.Handle(c)
			steps = append(steps, "after")
			return err
		})
	})
	h := visitor.ChainHandler[Circle](visitor.HandlerFunc[Circle](func(c *Circle) error {
		steps = append(steps, "handle")
		return nil
	}), logging)

	d, err := visitor.NewDispatcher(visitor.Bind[Circle](h))
	assert.NoError(t, err)
	assert.NoError(t, visitor.Accept(&Circle{}, d))
	assert.Equal(t, []string{"before", "handle", "after"}, steps)
}

func TestChainHandler_ErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	seen := false
	observing := visitor.MiddlewareFunc[Circle](func(next visitor.Handler[Circle]) visitor.Handler[Circle] {
		return visitor.HandlerFunc[Circle](func(c *Circle) error {
			err := next.Handle(c)
			seen = err != nil
			return err
		})
	})
	h := visitor.ChainHandler[Circle](visitor.HandlerFunc[Circle](func(c *Circle) error {
		return boom
	}), observing)

	assert.Same(t, boom, h.Handle(&Circle{}))
	assert.True(t, seen)
}

func TestChainResultHandler(t *testing.T) {
	base := visitor.ResultHandlerFunc[Circle, float64](func(c *Circle) (float64, error) {
		return c.Radius, nil
	})
	double := visitor.ResultMiddlewareFunc[Circle, float64](func(next visitor.ResultHandler[Circle, float64]) visitor.ResultHandler[Circle, float64] {
		return visitor.ResultHandlerFunc[Circle, float64](func(c *Circle) (float64, error) {
			r, err := next.Handle(c)
			return r * 2, err
		})
	})

	h := visitor.ChainResultHandler[Circle, float64](base, double)
	r, err := h.Handle(&Circle{Radius: 3})
	assert.NoError(t, err)
	assert.InDelta(t, 6.0, r, 1e-9)
}

func TestChainResultHandler_InAdapter(t *testing.T) {
	rounding := visitor.ResultMiddlewareFunc[Circle, float64](func(next visitor.ResultHandler[Circle, float64]) visitor.ResultHandler[Circle, float64] {
		return visitor.ResultHandlerFunc[Circle, float64](func(c *Circle) (float64, error) {
			r, err := next.Handle(c)
			if err != nil {
				return 0, err
			}
			return math.Round(r*1000) / 1000, nil
		})
	})
	measure := visitor.ResultHandlerFunc[Circle, float64](func(c *Circle) (float64, error) {
		return 2 * 3.1415 * c.Radius * c.Radius, nil
	})

	a, err := visitor.NewAdapter(
		visitor.BindResult[Circle, float64](visitor.ChainResultHandler[Circle, float64](measure, rounding)),
	)
	assert.NoError(t, err)

	r, err := visitor.Apply(a, &Circle{Radius: 3})
	assert.NoError(t, err)
	assert.InDelta(t, 56.547, r, 1e-9)
}
