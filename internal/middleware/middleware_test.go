// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/vinoteca/internal/logging"
	"github.com/tomtom215/vinoteca/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated", "", false},
		{"upstream kept", "proxy-123", true},
		{"too long replaced", strings.Repeat("x", maxRequestIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seenID, seenCorrelation string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = logging.RequestIDFromContext(r.Context())
				seenCorrelation = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/wines", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			header := rec.Header().Get(RequestIDHeader)
			if header == "" || header != seenID {
				t.Errorf("header %q, context %q", header, seenID)
			}
			if tt.keep && header != tt.incoming {
				t.Errorf("upstream ID replaced: %q", header)
			}
			if !tt.keep && len(header) != 36 {
				t.Errorf("expected generated UUID, got %q", header)
			}
			if len(seenCorrelation) != 8 {
				t.Errorf("correlation ID = %q", seenCorrelation)
			}
		})
	}
}

func newTestRouter(mw ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}
	r.Get("/api/v1/wines/{slug}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "slug") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
	})
	return r
}

func TestPrometheusMetrics(t *testing.T) {
	router := newTestRouter(PrometheusMetrics)

	okBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/wines/{slug}", "200"))
	nfBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/wines/{slug}", "404"))
	unBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404"))

	for _, path := range []string{"/api/v1/wines/barolo", "/api/v1/wines/amarone", "/api/v1/wines/missing", "/nowhere"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/wines/{slug}", "200")) - okBefore; got != 2 {
		t.Errorf("200 delta = %v, want 2 (pattern label, not raw path)", got)
	}
	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/wines/{slug}", "404")) - nfBefore; got != 1 {
		t.Errorf("404 delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")) - unBefore; got != 1 {
		t.Errorf("unmatched delta = %v, want 1", got)
	}
}

func TestAccessLog(t *testing.T) {
	original := logging.Logger()
	defer logging.SetLogger(original)
	defer logging.Init(logging.DefaultConfig())

	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "debug", Output: &buf})

	router := newTestRouter(RequestID, AccessLog(10*time.Millisecond))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wines/barolo", nil))
	fast := buf.String()
	for _, want := range []string{`"level":"debug"`, `"route":"/api/v1/wines/{slug}"`, `"status":200`, `"request_id":"` + rec.Header().Get(RequestIDHeader) + `"`} {
		if !strings.Contains(fast, want) {
			t.Errorf("access log missing %s: %s", want, fast)
		}
	}

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("slow request not logged at warn: %s", buf.String())
	}
}
