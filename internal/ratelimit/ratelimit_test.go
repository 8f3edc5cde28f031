package ratelimit

import (
	"testing"

	"github.com/streamlens/content-analysis/internal/logger"
)

func TestClientLimiter_BurstThenDeny(t *testing.T) {
	l := NewClientLimiter(5, logger.NewNop())

	for i := 0; i < 5; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d denied inside burst", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("request beyond burst was allowed")
	}
}

func TestClientLimiter_KeysAreIndependent(t *testing.T) {
	l := NewClientLimiter(1, logger.NewNop())

	if !l.Allow("a") {
		t.Fatal("first request for key a denied")
	}
	if l.Allow("a") {
		t.Error("second request for key a allowed")
	}
	if !l.Allow("b") {
		t.Error("key b throttled by key a's bucket")
	}
}

func TestClientLimiter_DefaultQuota(t *testing.T) {
	l := NewClientLimiter(0, logger.NewNop())
	if l.perMinute != 60 {
		t.Errorf("default quota = %d, want 60", l.perMinute)
	}
}

func TestClientLimiter_PruneKeepsActive(t *testing.T) {
	l := NewClientLimiter(10, logger.NewNop())
	l.Allow("active")

	if removed := l.Prune(); removed != 0 {
		t.Errorf("pruned %d recently-seen clients", removed)
	}
	if l.Size() != 1 {
		t.Errorf("size = %d, want 1", l.Size())
	}
}
