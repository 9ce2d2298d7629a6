package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckPending indicates a component that has not been exercised yet.
	CheckPending CheckResult = "pending"
)

// Report aggregates health check results.
type Report struct {
	Status      Status
	Checks      map[string]CheckResult
	CatalogSize int
}

// Service coordinates health checks.
type Service struct {
	sources SourcePinger
	catalog CatalogInfo
}

// New creates a Service. catalog may be nil.
func New(sources SourcePinger, catalog CatalogInfo) *Service {
	return &Service{sources: sources, catalog: catalog}
}

// Check runs health checks against the source backend and the catalog cache.
// A not-yet-built catalog is pending, not an error: the build is lazy.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.sources.Ping(ctx); err != nil {
		checks["sources"] = CheckError
	} else {
		checks["sources"] = CheckOK
	}

	size := 0
	if s.catalog != nil {
		size = s.catalog.Size()
		if size > 0 {
			checks["catalog"] = CheckOK
		} else {
			checks["catalog"] = CheckPending
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, CatalogSize: size}
}
