package interfaces

import "context"

// Repository defines the interface for data persistence.
// Each entity collection is exclusively owned by its repository; services
// reference entities across collections by ID only.
type Repository interface {
	Risk() RiskRepository
	Process() ProcessRepository
	Project() ProjectRepository
	Subsidy() SubsidyRepository
	Alert() AlertRepository

	// Ping reports whether the backend is reachable; used by the health check
	Ping(ctx context.Context) error

	Close() error
}
