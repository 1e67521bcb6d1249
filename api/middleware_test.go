package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saqibullah/diabetes-predictor/predictor"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("generated request id %q is not a uuid: %v", w.Header().Get(RequestIDHeader), err)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id got: %s, expected: abc-123", got)
	}
}

func TestRequestID_Replaced(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		id   string
	}{
		{name: "too_long", id: strings.Repeat("a", 65)},
		{name: "spaces", id: "abc 123"},
		{name: "control", id: "abc\x1b[31m"},
		{name: "markup", id: "<script>"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set(RequestIDHeader, test.id)
			w := httptest.NewRecorder()
			newTestRouter().ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == test.id {
				t.Fatalf("request id %q echoed back", test.id)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("replacement id %q is not a uuid: %v", got, err)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		origins  []string
		origin   string
		expected string
	}{
		{name: "allow_all", origins: []string{"*"}, origin: "https://any.example", expected: "*"},
		{name: "listed", origins: []string{"https://app.example"}, origin: "https://app.example", expected: "https://app.example"},
		{name: "not_listed", origins: []string{"https://app.example"}, origin: "https://evil.example", expected: ""},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := NewRouter(RouterConfig{AllowedOrigins: test.origins}, zap.NewNop().Sugar(),
				NewHandlers(predictor.GlucoseRule{}, 1<<20))
			req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
			req.Header.Set("Origin", test.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != test.expected {
				t.Errorf("allow origin got: %q, expected: %q", got, test.expected)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()
	r := newTestRouter()
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status got: %d, expected: %d", w.Code, http.StatusInternalServerError)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status after panic got: %d, expected: %d", w.Code, http.StatusOK)
	}
}
