package application

import (
	"context"
	"sync"
)

// AddGuard serializes concurrent registrations of the same currency code.
type AddGuard interface {
	// TryReserve returns true if key was free and is now held by the caller.
	TryReserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// LocalAddGuard holds reservations in process memory. The zero value is ready to use.
type LocalAddGuard struct {
	held sync.Map
}

func (g *LocalAddGuard) TryReserve(_ context.Context, key string) (bool, error) {
	_, loaded := g.held.LoadOrStore(key, struct{}{})
	return !loaded, nil
}

func (g *LocalAddGuard) Release(_ context.Context, key string) error {
	g.held.Delete(key)
	return nil
}
