package notify

import (
	"context"
)

// ConnectionStore defines the connection-tracking operations the publisher
// needs: enumerating live connections and evicting stale ones.
type ConnectionStore interface {
	GetAllConnections(ctx context.Context) ([]string, error)
	RemoveConnection(ctx context.Context, connectionID string) error
}

// Publisher defines the interface for pushing messages to WebSocket clients.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
