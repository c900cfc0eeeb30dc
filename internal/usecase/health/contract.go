package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// SourceChecker checks that the upstream menu source is reachable.
type SourceChecker interface {
	HealthCheck(ctx context.Context) error
}
