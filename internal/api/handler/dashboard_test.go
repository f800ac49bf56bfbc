package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository/mocks"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/orcafacil/orcafacil-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func requestWithClaims(r *http.Request, claims *domain.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func TestGetDashboardHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSnapshotRepo := mocks.NewMockOverviewSnapshotRepository(ctrl)

	currentMonth := utils.StartOfMonth(time.Now())
	months := make([]string, 0, defaultHistoryMonths)
	for i := defaultHistoryMonths - 1; i >= 0; i-- {
		months = append(months, currentMonth.AddDate(0, -i, 0).Format("2006-01"))
	}

	// Só o mês mais antigo e o corrente têm snapshot materializado
	for _, month := range months {
		var snapshot *domain.OverviewSnapshot
		if month == months[0] || month == months[len(months)-1] {
			snapshot = &domain.OverviewSnapshot{
				CompanyID: 42,
				Month:     month,
				KPIs:      &domain.OverviewKPIs{Budgets: 3, Approved: 1, Conversion: 33},
			}
		}
		mockSnapshotRepo.EXPECT().GetByCompanyAndMonth(42, month).Return(snapshot, nil)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/history", nil)
	req = requestWithClaims(req, &domain.Claims{UserID: 1, CompanyID: 42})
	rec := httptest.NewRecorder()

	GetDashboardHistory(mockSnapshotRepo)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response DashboardHistoryResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.True(t, response.OK)
	assert.Len(t, response.History, 2)
	assert.Equal(t, months[0], response.History[0].Month)
	assert.Equal(t, months[len(months)-1], response.History[1].Month)
	assert.Equal(t, 3, response.History[0].KPIs.Budgets)
}

func TestGetDashboardHistory_SemEmpresa(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSnapshotRepo := mocks.NewMockOverviewSnapshotRepository(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/history", nil)
	req = requestWithClaims(req, &domain.Claims{UserID: 1, CompanyID: 0})
	rec := httptest.NewRecorder()

	GetDashboardHistory(mockSnapshotRepo)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDashboardHistory_SemToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSnapshotRepo := mocks.NewMockOverviewSnapshotRepository(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/history", nil)
	rec := httptest.NewRecorder()

	GetDashboardHistory(mockSnapshotRepo)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHistoryWindow(t *testing.T) {
	threeMonthsAgo := utils.StartOfMonth(time.Now()).AddDate(0, -3, 0).Format(time.DateOnly)

	tests := []struct {
		name           string
		query          string
		expectedMonths int
		expectErr      bool
	}{
		{name: "janela padrão", query: "", expectedMonths: 6},
		{name: "months explícito", query: "months=12", expectedMonths: 12},
		{name: "months acima do teto", query: "months=40", expectedMonths: 24},
		{name: "months inválido cai no padrão", query: "months=abc", expectedMonths: 6},
		{name: "from delimita a janela", query: "from=" + threeMonthsAgo, expectedMonths: 4},
		{name: "from mal formatado", query: "from=31-08-2025", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/dashboard/history?%s", tt.query), nil)

			months, err := historyWindow(req)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMonths, months)
		})
	}
}
