package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func doRequestWithUserType(t *testing.T, mw func(http.Handler) http.Handler, userType string) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if userType != "" {
		req = req.WithContext(context.WithValue(req.Context(), UserTypeKey, userType))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK && !called {
		t.Fatal("200 returned but inner handler never ran")
	}
	return rec
}

func TestRequireDoctor(t *testing.T) {
	if rec := doRequestWithUserType(t, RequireDoctor, "doctor"); rec.Code != http.StatusOK {
		t.Errorf("doctor rejected: %d", rec.Code)
	}
	if rec := doRequestWithUserType(t, RequireDoctor, "patient"); rec.Code != http.StatusForbidden {
		t.Errorf("patient allowed through doctor gate: %d", rec.Code)
	}
	if rec := doRequestWithUserType(t, RequireDoctor, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing user type: got %d, want 401", rec.Code)
	}
}

func TestRequirePatient(t *testing.T) {
	if rec := doRequestWithUserType(t, RequirePatient, "patient"); rec.Code != http.StatusOK {
		t.Errorf("patient rejected: %d", rec.Code)
	}
	if rec := doRequestWithUserType(t, RequirePatient, "doctor"); rec.Code != http.StatusForbidden {
		t.Errorf("doctor allowed through patient gate: %d", rec.Code)
	}
}
