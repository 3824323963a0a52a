package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func roleRequest(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nurse/queue-reports", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireStaff_AllowsStaffRoles(t *testing.T) {
	for _, roleID := range []int{entity.RoleIDAdmin, entity.RoleIDDoctor, entity.RoleIDNurse} {
		rec := httptest.NewRecorder()
		RequireStaff(okHandler()).ServeHTTP(rec, roleRequest(roleID))

		assert.Equal(t, http.StatusOK, rec.Code, "role %d", roleID)
	}
}

func TestRequireStaff_RejectsPatient(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireStaff(okHandler()).ServeHTTP(rec, roleRequest(entity.RoleIDPatient))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_MissingRoleContext(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nurse/queue-reports", nil)

	RequireNurse(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
