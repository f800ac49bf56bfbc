package handler

import (
	"net/http"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/apiErrors"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// ListUsers lista os usuários da empresa do token
func ListUsers(repo repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		users, err := repo.ListByCompany(userClaims.CompanyID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}
