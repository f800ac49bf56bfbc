package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orcafacil/orcafacil-api/internal/config"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/internal/scheduler"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
)

func TestGetCronStatus(t *testing.T) {
	snapshotSyncService := scheduler.NewOverviewSnapshotSyncService(nil, nil, nil, &config.Config{
		OverviewSnapshot: config.OverviewSnapshot{
			CronSchedule:    "0 5 * * *",
			Enabled:         false,
			RetentionMonths: 12,
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req = requestWithClaims(req, &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
	rec := httptest.NewRecorder()

	GetCronStatus(CronJobServices{OverviewSnapshotSyncService: snapshotSyncService})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Contains(t, status, "overview-snapshot")
}

func TestGetCronStatus_SemServicoDeSnapshot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req = requestWithClaims(req, &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
	rec := httptest.NewRecorder()

	GetCronStatus(CronJobServices{})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.NotContains(t, status, "overview-snapshot")
}

func TestGetCronStatus_SemPrivilegio(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req = requestWithClaims(req, &domain.Claims{UserID: 2, UserRoleID: middleware.RoleMember})
	rec := httptest.NewRecorder()

	GetCronStatus(CronJobServices{})(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
