package session

import "context"

type containerContextKey struct{}

// NewContext returns ctx with a session container attached. If ctx already
// carries one, ctx and that container are returned unchanged.
func NewContext(ctx context.Context) (context.Context, *Container) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c, ok := ctx.Value(containerContextKey{}).(*Container); ok && c != nil {
		return ctx, c
	}
	c := NewContainer()
	return context.WithValue(ctx, containerContextKey{}, c), c
}

// FromContext returns the session container of the current request.
// It returns ErrNoContainer if ctx was not prepared by the session wrapper.
func FromContext(ctx context.Context) (*Container, error) {
	if ctx == nil {
		return nil, ErrNoContainer
	}
	c, ok := ctx.Value(containerContextKey{}).(*Container)
	if !ok || c == nil {
		return nil, ErrNoContainer
	}
	return c, nil
}

// MustFromContext returns the session container or panics
func MustFromContext(ctx context.Context) *Container {
	c, err := FromContext(ctx)
	if err != nil {
		panic("session: not found in context")
	}
	return c
}

// Clear empties the session container of the current request in place.
func Clear(ctx context.Context) error {
	c, err := FromContext(ctx)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

// Get is shorthand for FromContext.
func Get(ctx context.Context) (*Container, error) {
	return FromContext(ctx)
}
