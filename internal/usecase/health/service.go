package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the proxy is up but its upstream is not answering.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

const defaultCheckTimeout = 3 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	upstream UpstreamChecker
	timeout  time.Duration
}

// New creates a Service. upstream can be nil.
func New(upstream UpstreamChecker) *Service {
	return &Service{upstream: upstream, timeout: defaultCheckTimeout}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.upstream != nil {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.upstream.HealthCheck(cctx)
		cancel()
		if err != nil {
			checks["upstream"] = CheckError
		} else {
			checks["upstream"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
