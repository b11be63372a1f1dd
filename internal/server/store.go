package server

import (
	"context"
	"errors"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence surface shared by the tracker and the
// handlers: the two state slots plus the cleanup-event tables.
type Store interface {
	squad.Store

	ListEvents(ctx context.Context) ([]squad.CleanupEvent, error)
	CreateEvent(ctx context.Context, ev squad.CleanupEvent) error
	HasEvents(ctx context.Context) (bool, error)
	AddSignup(ctx context.Context, eventID, name string) (squad.Signup, error)
}
