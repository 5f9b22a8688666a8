package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medifriend/internal/domain/entity"
)

func requestWithRole(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/dashboard", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireDoctor_AllowsDoctor(t *testing.T) {
	called := false
	handler := RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleDoctor))

	if !called {
		t.Error("the wrapped handler must run for a doctor")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireDoctor_RejectsPatient(t *testing.T) {
	handler := RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the wrapped handler must not run for a patient")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RolePatient))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireDoctor_MissingRole(t *testing.T) {
	handler := RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the wrapped handler must not run without role context")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctor/dashboard", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequirePatient_RejectsDoctor(t *testing.T) {
	handler := RequirePatient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the wrapped handler must not run for a doctor")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleDoctor))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
