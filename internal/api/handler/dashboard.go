package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/internal/usecases/dashboarding"
	"github.com/orcafacil/orcafacil-api/pkg/apiErrors"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/orcafacil/orcafacil-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryMonths = 6
	maxHistoryMonths     = 24
)

// GetDashboardOverview retorna os KPIs, séries e rankings do período pedido.
// O escopo é sempre a empresa do token; o range vem da query string e cai no
// mês corrente quando ausente ou desconhecido.
func GetDashboardOverview(service dashboarding.Overviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		rangeName := r.URL.Query().Get("range")

		overview, err := service.GetOverview(userClaims.CompanyID, rangeName)
		if err != nil {
			if errors.Is(err, dashboarding.ErrCompanyRequired) {
				apiErrors.WriteError(w, apiErrors.ErrCompanyRequired, "Usuário sem empresa vinculada", nil)
				return
			}

			logrus.WithFields(logrus.Fields{
				"company_id": userClaims.CompanyID,
				"range":      rangeName,
			}).WithError(err).Error("Erro ao montar overview do dashboard")

			// O detalhe da falha fica só no log; o cliente recebe a mensagem genérica
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao montar o overview do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do overview")
		}
	}
}

type DashboardHistoryResponse struct {
	OK      bool                       `json:"ok"`
	History []*domain.OverviewSnapshot `json:"history"`
}

// GetDashboardHistory retorna os snapshots mensais de KPIs da empresa, em
// ordem crescente de mês. A janela vem de ?months=N (padrão 6, máximo 24) ou
// de ?from=YYYY-MM-DD; meses sem snapshot materializado ficam de fora.
func GetDashboardHistory(repo repository.OverviewSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.CompanyID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrCompanyRequired, "Usuário sem empresa vinculada", nil)
			return
		}

		months, err := historyWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		currentMonth := utils.StartOfMonth(time.Now())
		history := make([]*domain.OverviewSnapshot, 0, months)

		for i := months - 1; i >= 0; i-- {
			month := currentMonth.AddDate(0, -i, 0).Format("2006-01")

			snapshot, err := repo.GetByCompanyAndMonth(userClaims.CompanyID, month)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"company_id": userClaims.CompanyID,
					"month":      month,
				}).WithError(err).Error("Erro ao buscar snapshot do overview")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico do dashboard", nil)
				return
			}

			if snapshot != nil {
				history = append(history, snapshot)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DashboardHistoryResponse{OK: true, History: history})
	}
}

// historyWindow resolve quantos meses de histórico a requisição pede. ?from
// tem precedência sobre ?months; a janela fica sempre entre 1 e 24 meses.
func historyWindow(r *http.Request) (int, error) {
	months := defaultHistoryMonths

	if monthsStr := r.URL.Query().Get("months"); monthsStr != "" {
		if parsed, err := strconv.Atoi(monthsStr); err == nil && parsed > 0 {
			months = parsed
		}
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := utils.ParseDate(fromStr)
		if err != nil {
			return 0, err
		}

		months = 1
		for cursor := utils.StartOfMonth(*from); cursor.Before(utils.StartOfMonth(time.Now())); cursor = cursor.AddDate(0, 1, 0) {
			months++
		}
	}

	if months > maxHistoryMonths {
		months = maxHistoryMonths
	}

	return months, nil
}
