package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockUpstreamChecker struct {
	err         error
	hadDeadline bool
}

func (m *mockUpstreamChecker) HealthCheck(ctx context.Context) error {
	_, m.hadDeadline = ctx.Deadline()
	return m.err
}

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	up := &mockUpstreamChecker{}
	r := New(up).Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["upstream"] != CheckOK {
		t.Errorf("expected upstream %q, got %q", CheckOK, r.Checks["upstream"])
	}
	if !up.hadDeadline {
		t.Error("expected health probe to run under a deadline")
	}
}

func TestCheck_UpstreamError(t *testing.T) {
	r := New(&mockUpstreamChecker{err: errors.New("timeout")}).Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["upstream"] != CheckError {
		t.Errorf("expected upstream %q, got %q", CheckError, r.Checks["upstream"])
	}
}

func TestCheck_NoUpstream(t *testing.T) {
	r := New(nil).Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["upstream"]; ok {
		t.Error("upstream check should be absent when upstream is nil")
	}
}
