package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_BurstThenReject(t *testing.T) {
	l := NewRateLimiter(60, 2)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("burst should be allowed")
	}
	if l.Allow("a") {
		t.Fatal("third request within the same instant should be rejected")
	}
	if !l.Allow("b") {
		t.Fatal("other clients have their own bucket")
	}

	now = now.Add(time.Second)
	if !l.Allow("a") {
		t.Fatal("one token should refill after a second at 60/min")
	}
}

func TestRateLimiter_NonPositiveRateDisablesLimiting(t *testing.T) {
	for _, perMinute := range []int{0, -5} {
		l := NewRateLimiter(perMinute, 0)
		for i := 0; i < 100; i++ {
			if !l.Allow("a") {
				t.Fatalf("perMinute=%d: request %d rejected", perMinute, i)
			}
		}
	}
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	l := NewRateLimiter(60, 1)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(2 * limiterIdleTTL)
	l.Allow("b")

	if _, ok := l.limiters["a"]; ok {
		t.Error("idle client should be evicted")
	}
	if len(l.limiters) != 1 {
		t.Errorf("limiters: got %d, want 1", len(l.limiters))
	}
}

func TestRateLimiter_Middleware429(t *testing.T) {
	l := NewRateLimiter(60, 1)
	handler := l.Middleware(okHandler())

	codes := make([]int, 2)
	for i := range codes {
		req := httptest.NewRequest("POST", "/api/v1/assistant/conversations", http.NoBody)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes[i] = rr.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes: got %v, want [200 429]", codes)
	}
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.RemoteAddr = "192.0.2.7:1234"
	if got := clientKey(req); got != "ip:192.0.2.7" {
		t.Errorf("ip key: got %q", got)
	}

	req.Header.Set("Authorization", "Bearer secret")
	if got := clientKey(req); got != "key:secret" {
		t.Errorf("api key: got %q", got)
	}
}
