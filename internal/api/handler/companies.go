package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type UpdateCompanyPlanRequest struct {
	Plan string `json:"plan"`
}

// UpdateCompanyPlan troca o plano de assinatura de uma empresa. É a fronteira
// de cobrança do sistema: o provedor de pagamento fica fora e só o plano
// gravado aqui libera os recursos premium.
func UpdateCompanyPlan(repo repository.CompanyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		companyID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da empresa inválido", nil)
			return
		}

		var req UpdateCompanyPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Plan != domain.PlanFree && req.Plan != domain.PlanPremium {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plano inválido. Valores aceitos: free, premium", nil)
			return
		}

		company, err := repo.GetByID(companyID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar empresa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa", nil)
			return
		}

		if company == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Empresa não encontrada", nil)
			return
		}

		if err := repo.UpdatePlan(companyID, req.Plan); err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": companyID,
				"plan":       req.Plan,
			}).WithError(err).Error("Erro ao atualizar plano da empresa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar plano da empresa", nil)
			return
		}

		company.Plan = req.Plan

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(company)
	}
}
