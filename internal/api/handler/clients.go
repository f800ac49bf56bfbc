package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/apiErrors"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type CreateClientRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func CreateClient(repo repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)
			return
		}

		client := &domain.Client{
			CompanyID: userClaims.CompanyID,
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
		}

		client, err := repo.Create(client)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client)
	}
}

func ListClients(repo repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clients, err := repo.ListByCompany(userClaims.CompanyID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar clientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(clients)
	}
}

func GetClient(repo repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		clientID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		client, err := repo.GetByID(userClaims.CompanyID, clientID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente", nil)
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client)
	}
}
