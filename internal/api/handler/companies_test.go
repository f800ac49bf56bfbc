package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/orcafacil/orcafacil-api/infrastructure/repository/mocks"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func requestWithCompanyID(r *http.Request, id string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: id}}
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func TestUpdateCompanyPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)

	mockCompanyRepo.EXPECT().
		GetByID(42).
		Return(&domain.Company{ID: 42, Name: "Empresa A", Plan: domain.PlanFree, Active: true}, nil)

	mockCompanyRepo.EXPECT().
		UpdatePlan(42, domain.PlanPremium).
		Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/companies/42/plan", strings.NewReader(`{"plan":"premium"}`))
	req = requestWithCompanyID(req, "42")
	rec := httptest.NewRecorder()

	UpdateCompanyPlan(mockCompanyRepo)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var company domain.Company
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&company))
	assert.Equal(t, 42, company.ID)
	assert.Equal(t, domain.PlanPremium, company.Plan)
}

func TestUpdateCompanyPlan_Errors(t *testing.T) {
	tests := []struct {
		name           string
		companyID      string
		body           string
		setup          func(*mocks.MockCompanyRepository)
		expectedStatus int
	}{
		{
			name:           "id inválido",
			companyID:      "abc",
			body:           `{"plan":"premium"}`,
			setup:          func(_ *mocks.MockCompanyRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "plano desconhecido",
			companyID:      "42",
			body:           `{"plan":"enterprise"}`,
			setup:          func(_ *mocks.MockCompanyRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "empresa inexistente",
			companyID: "999",
			body:      `{"plan":"free"}`,
			setup: func(companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().GetByID(999).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
			tt.setup(mockCompanyRepo)

			req := httptest.NewRequest(http.MethodPatch, "/v1/companies/"+tt.companyID+"/plan", strings.NewReader(tt.body))
			req = requestWithCompanyID(req, tt.companyID)
			rec := httptest.NewRecorder()

			UpdateCompanyPlan(mockCompanyRepo)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
