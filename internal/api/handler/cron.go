package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/internal/scheduler"
	"github.com/orcafacil/orcafacil-api/pkg/apiErrors"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOverviewSnapshot = "overview-snapshot"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OverviewSnapshotSyncService *scheduler.OverviewSnapshotSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeOverviewSnapshot, CronJobTypeAll:
			if services.OverviewSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots do overview não disponível", nil)
				return
			}
			services.OverviewSnapshotSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: overview-snapshot, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{}
		if services.OverviewSnapshotSyncService != nil {
			status["overview-snapshot"] = services.OverviewSnapshotSyncService.GetStatus()
		}

		json.NewEncoder(w).Encode(status)
	}
}
