package handler

import (
	"net/http"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/apiErrors"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	BasePrice   float64 `json:"base_price"`
}

func CreateService(repo repository.ServiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do serviço é obrigatório", nil)
			return
		}

		if req.BasePrice < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço base não pode ser negativo", nil)
			return
		}

		service := &domain.Service{
			CompanyID:   userClaims.CompanyID,
			Name:        req.Name,
			Description: req.Description,
			BasePrice:   req.BasePrice,
			Active:      true,
		}

		service, err := repo.Create(service)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar serviço")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar serviço", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(service)
	}
}

func ListServices(repo repository.ServiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		services, err := repo.ListByCompany(userClaims.CompanyID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar serviços")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar serviços", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services)
	}
}
