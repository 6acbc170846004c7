package tokenstore

import "errors"

var TokenNotFoundErr = errors.New("no persisted token")

// Repo defines the interface for persisting the single opaque bearer token.
// Exactly one token exists at a time; the session store is its only writer.
type Repo interface {
	// Get returns the persisted token, or TokenNotFoundErr when none exists
	Get() (string, error)

	// Set persists the token, replacing any previous one
	Set(token string) error

	// Delete removes the persisted token. Deleting an absent token is not an error
	Delete() error
}
