package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestAs(uid, role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := req.Context()
	if uid != "" {
		ctx = context.WithValue(ctx, CtxUserID, uid)
	}
	if role != "" {
		ctx = context.WithValue(ctx, CtxRole, role)
	}
	return req.WithContext(ctx)
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestAs("", ""))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestAs("u-1", "student"))
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	h := RequireRoles("employee", "admin")(okHandler())

	tests := []struct {
		role string
		want int
	}{
		{"employee", http.StatusOK},
		{"admin", http.StatusOK},
		{"student", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestAs("u-1", tc.role))
		if rec.Code != tc.want {
			t.Errorf("role %q status = %d, want %d", tc.role, rec.Code, tc.want)
		}
	}
}
