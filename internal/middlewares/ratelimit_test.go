package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		hits         int64
		hitErr       error
		expectNext   bool
		expectedCode int
	}{
		{name: "under limit", hits: 1, expectNext: true, expectedCode: http.StatusOK},
		{name: "at limit", hits: 3, expectNext: true, expectedCode: http.StatusOK},
		{name: "over limit", hits: 4, expectNext: false, expectedCode: http.StatusTooManyRequests},
		{name: "counter down fails open", hitErr: errors.New("dial tcp: connection refused"), expectNext: true, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NewMockHitCounter(ctrl)
			counter.EXPECT().Hit(gomock.Any(), "192.0.2.1").Return(tt.hits, tt.hitErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/submit", nil)
			rr := httptest.NewRecorder()

			RateLimitMiddleware(counter, 3)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectNext, nextCalled)
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"success":false,"error":"Too many requests"}`, rr.Body.String())
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "203.0.113.9:51234"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
