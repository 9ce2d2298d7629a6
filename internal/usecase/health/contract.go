package health

import "context"

// SourcePinger checks that the tabular source backend is reachable.
type SourcePinger interface {
	Ping(ctx context.Context) error
}

// CatalogInfo reports the state of the in-memory catalog.
type CatalogInfo interface {
	Size() int
}
