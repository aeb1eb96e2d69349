package health

import "context"

// DBPinger checks catalog backend availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
