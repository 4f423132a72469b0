// Package database holds connections to the databases used by the category store.
package database

import "context"

// Database represents a database connection that can be health checked.
type Database interface {
	// Ping verifies the connection is still alive.
	Ping(ctx context.Context) error
	// Close closes the connection with database.
	Close() error
}
