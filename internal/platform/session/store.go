// Package session holds the per-client login state: an opaque session ID
// mapped to the ID of the logged-in user. Absence of the mapping means
// "not logged in".
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a session ID does not resolve to a user,
// either because it was never issued or because it expired or was logged out.
var ErrNoSession = errors.New("no such session")

type Store interface {
	// Create issues a new session ID for userID.
	Create(ctx context.Context, userID int) (string, error)
	// UserID resolves a session ID to the user it was issued for.
	UserID(ctx context.Context, sessionID string) (int, error)
	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
