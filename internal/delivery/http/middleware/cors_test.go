package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantOrigin  string
		wantMethods string
	}{
		{
			name:       "allowed origin on simple request",
			allowed:    []string{"http://localhost:3000"},
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:3000",
		},
		{
			name:       "trailing slash in configuration is ignored",
			allowed:    []string{" http://localhost:3000/ "},
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:3000",
		},
		{
			name:       "unknown origin gets no header",
			allowed:    []string{"http://localhost:3000"},
			method:     http.MethodGet,
			origin:     "http://evil.example",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wildcard admits any origin",
			allowed:    []string{"*"},
			method:     http.MethodPost,
			origin:     "http://evil.example",
			wantStatus: http.StatusOK,
			wantOrigin: "http://evil.example",
		},
		{
			name:        "preflight for allowed origin",
			allowed:     []string{"http://localhost:3000"},
			method:      http.MethodOptions,
			origin:      "http://localhost:3000",
			preflight:   true,
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "http://localhost:3000",
			wantMethods: corsAllowMethods,
		},
		{
			name:       "preflight for unknown origin",
			allowed:    []string{"http://localhost:3000"},
			method:     http.MethodOptions,
			origin:     "http://evil.example",
			preflight:  true,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "no configured origins",
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test/events", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rr.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}
