package health

import "context"

// UpstreamChecker checks catalog provider availability.
type UpstreamChecker interface {
	HealthCheck(ctx context.Context) error
}
