package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository/mocks"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	mockUserRepo.EXPECT().
		ListByCompany(42).
		Return([]*domain.User{
			{ID: 1, CompanyID: 42, Name: "Maria", Email: "maria@empresa.com", Active: true, RoleID: 1},
			{ID: 2, CompanyID: 42, Name: "Pedro", Email: "pedro@empresa.com", Active: true, RoleID: 2},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req = requestWithClaims(req, &domain.Claims{UserID: 1, CompanyID: 42, UserRoleID: 1})
	rec := httptest.NewRecorder()

	ListUsers(mockUserRepo)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var users []*domain.User
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	assert.Len(t, users, 2)
	assert.Equal(t, "Maria", users[0].Name)
}

func TestListUsers_SemToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()

	ListUsers(mockUserRepo)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
