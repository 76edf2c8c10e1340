package platformapi

import (
	"context"

	"github.com/google/uuid"
)

type loadIDKey struct{}

// NewLoadID returns a fresh correlation id for one dashboard load.
func NewLoadID() string {
	return uuid.NewString()
}

// WithLoadID attaches a load id; every request made with the returned
// context carries it in the X-Request-ID header.
func WithLoadID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, loadIDKey{}, id)
}

// LoadID returns the load id on ctx, or "".
func LoadID(ctx context.Context) string {
	id, _ := ctx.Value(loadIDKey{}).(string)
	return id
}

// EnsureLoadID returns ctx with a load id, creating one if ctx has none.
func EnsureLoadID(ctx context.Context) (context.Context, string) {
	if id := LoadID(ctx); id != "" {
		return ctx, id
	}
	id := NewLoadID()
	return WithLoadID(ctx, id), id
}
