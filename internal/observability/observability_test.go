package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lastomo-app/internal/llm"
	"lastomo-app/internal/testutil"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

// Prometheus collectors register globally, so the whole package shares one
// Metrics value.
var testMetrics = NewMetrics("test")

func TestMiddleware_RecordsStatus(t *testing.T) {
	handler := Middleware(testMetrics, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("POST", "/api/chat", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status 418 passed through, got %d", rec.Code)
	}

	count := promtestutil.ToFloat64(testMetrics.HTTPRequests.WithLabelValues("/api/chat", "418"))
	if count != 1 {
		t.Errorf("expected request counter 1, got %v", count)
	}
}

func TestInstrumentedProvider_CountsErrors(t *testing.T) {
	mock := &testutil.MockProvider{
		CompleteFunc: func(messages []llm.Message) (string, error) {
			return "", errors.New("boom")
		},
	}
	provider := NewInstrumentedProvider(mock, testMetrics)

	before := promtestutil.ToFloat64(testMetrics.ProviderErrors)
	if _, err := provider.Complete(nil); err == nil {
		t.Fatal("expected error from wrapped provider")
	}
	after := promtestutil.ToFloat64(testMetrics.ProviderErrors)

	if after != before+1 {
		t.Errorf("expected provider error counter to increment, got %v -> %v", before, after)
	}
}

func TestInstrumentedProvider_PassesThrough(t *testing.T) {
	mock := &testutil.MockProvider{
		CompleteFunc: func(messages []llm.Message) (string, error) {
			return "ok", nil
		},
	}
	provider := NewInstrumentedProvider(mock, testMetrics)

	response, err := provider.Complete([]llm.Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response != "ok" {
		t.Errorf("expected response passed through, got %q", response)
	}
}
