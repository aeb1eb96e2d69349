package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates an optional component is failing.
	Degraded Status = "degraded"
	// Unhealthy indicates the catalog backend is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	CheckOK    CheckResult = "ok"
	CheckError CheckResult = "error"
)

// ComponentDatabase is the name of the mandatory catalog check.
const ComponentDatabase = "database"

// Features lists the search capabilities advertised by the chat health endpoint.
var Features = []string{
	"multi_field_search",
	"keyword_extraction",
	"relevance_scoring",
	"smart_suggestions",
	"eligibility_relaxation",
}

// Report aggregates health check results.
type Report struct {
	Status  Status
	Backend string
	Checks  map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	backend string
	extra   map[string]DBPinger
}

// New creates a Service for the named catalog backend.
func New(db DBPinger, backend string) *Service {
	return &Service{db: db, backend: backend, extra: map[string]DBPinger{}}
}

// WithComponent adds an optional check whose failure only degrades the report.
func (s *Service) WithComponent(name string, p DBPinger) *Service {
	s.extra[name] = p
	return s
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{ComponentDatabase: probe(ctx, s.db)}
	status := Healthy
	for name, p := range s.extra {
		checks[name] = probe(ctx, p)
		if checks[name] == CheckError {
			status = Degraded
		}
	}
	if checks[ComponentDatabase] == CheckError {
		status = Unhealthy
	}
	return Report{Status: status, Backend: s.backend, Checks: checks}
}

func probe(ctx context.Context, p DBPinger) CheckResult {
	if err := p.Ping(ctx); err != nil {
		return CheckError
	}
	return CheckOK
}
