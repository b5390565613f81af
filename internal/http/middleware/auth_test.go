package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedCall bool
	}{
		{"valid token", "Bearer secret-token", http.StatusOK, true},
		{"case-insensitive scheme", "bearer secret-token", http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"wrong token", "Bearer other", http.StatusUnauthorized, false},
		{"wrong scheme", "Basic secret-token", http.StatusUnauthorized, false},
		{"token only", "secret-token", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, called := okHandler()
			handler := BearerAuth("secret-token")(next)

			req := httptest.NewRequest(http.MethodPost, "/api/generate-pdf-report", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedCall, *called)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	next, called := okHandler()
	handler := CORS(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-pdf-report", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, *called, "preflight must not reach the handler")
}

func TestCORSPassesThrough(t *testing.T) {
	next, called := okHandler()
	handler := CORS(next)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-pdf-report", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
