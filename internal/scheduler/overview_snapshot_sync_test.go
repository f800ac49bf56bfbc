package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository/mocks"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	dashboardingmocks "github.com/orcafacil/orcafacil-api/internal/usecases/dashboarding/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOverviewSnapshotSyncService_SyncSnapshots(t *testing.T) {
	month := time.Now().Format("2006-01")

	tests := []struct {
		name  string
		setup func(*mocks.MockCompanyRepository, *mocks.MockOverviewSnapshotRepository, *dashboardingmocks.MockOverviewer)
	}{
		{
			name: "Empresas ativas geram snapshot do mês corrente",
			setup: func(companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockOverviewSnapshotRepository, overviewer *dashboardingmocks.MockOverviewer) {
				companyRepo.EXPECT().
					ListActive().
					Return([]*domain.Company{
						{ID: 1, Name: "Empresa A"},
						{ID: 2, Name: "Empresa B"},
					}, nil)

				overviewer.EXPECT().
					GetOverview(1, "this-month").
					Return(&domain.OverviewResponse{
						OK:   true,
						KPIs: domain.OverviewKPIs{Budgets: 4, Approved: 2, Conversion: 50},
					}, nil)

				overviewer.EXPECT().
					GetOverview(2, "this-month").
					Return(&domain.OverviewResponse{
						OK:   true,
						KPIs: domain.OverviewKPIs{Budgets: 1},
					}, nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.OverviewSnapshot) error {
						assert.Equal(t, 1, snapshot.CompanyID)
						assert.Equal(t, month, snapshot.Month)
						assert.Equal(t, 4, snapshot.KPIs.Budgets)
						assert.Equal(t, 50, snapshot.KPIs.Conversion)
						return nil
					})

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.OverviewSnapshot) error {
						assert.Equal(t, 2, snapshot.CompanyID)
						assert.Equal(t, month, snapshot.Month)
						return nil
					})

				snapshotRepo.EXPECT().
					DeleteOlderThan(24).
					Return(int64(0), nil)
			},
		},
		{
			name: "Falha em uma empresa não interrompe as demais",
			setup: func(companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockOverviewSnapshotRepository, overviewer *dashboardingmocks.MockOverviewer) {
				companyRepo.EXPECT().
					ListActive().
					Return([]*domain.Company{
						{ID: 1, Name: "Empresa A"},
						{ID: 2, Name: "Empresa B"},
					}, nil)

				overviewer.EXPECT().
					GetOverview(1, "this-month").
					Return(nil, errors.New("banco indisponível"))

				overviewer.EXPECT().
					GetOverview(2, "this-month").
					Return(&domain.OverviewResponse{OK: true}, nil)

				// Só a empresa 2 chega ao SaveOrUpdate
				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.OverviewSnapshot) error {
						assert.Equal(t, 2, snapshot.CompanyID)
						return nil
					})

				snapshotRepo.EXPECT().
					DeleteOlderThan(24).
					Return(int64(3), nil)
			},
		},
		{
			name: "Sem empresas ativas não há snapshots nem limpeza",
			setup: func(companyRepo *mocks.MockCompanyRepository, _ *mocks.MockOverviewSnapshotRepository, _ *dashboardingmocks.MockOverviewer) {
				companyRepo.EXPECT().
					ListActive().
					Return([]*domain.Company{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
			mockSnapshotRepo := mocks.NewMockOverviewSnapshotRepository(ctrl)
			mockOverviewer := dashboardingmocks.NewMockOverviewer(ctrl)

			tt.setup(mockCompanyRepo, mockSnapshotRepo, mockOverviewer)

			service := &OverviewSnapshotSyncService{
				companyRepo:  mockCompanyRepo,
				snapshotRepo: mockSnapshotRepo,
				overviewer:   mockOverviewer,
				config: OverviewSnapshotConfig{
					RetentionMonths: 24,
				},
			}

			err := service.SyncSnapshots()
			assert.NoError(t, err)
		})
	}
}

func TestOverviewSnapshotSyncService_SyncSnapshots_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockOverviewSnapshotRepository(ctrl)
	mockOverviewer := dashboardingmocks.NewMockOverviewer(ctrl)

	expectedErr := errors.New("banco indisponível")

	mockCompanyRepo.EXPECT().
		ListActive().
		Return(nil, expectedErr)

	service := &OverviewSnapshotSyncService{
		companyRepo:  mockCompanyRepo,
		snapshotRepo: mockSnapshotRepo,
		overviewer:   mockOverviewer,
		config:       OverviewSnapshotConfig{RetentionMonths: 24},
	}

	err := service.SyncSnapshots()
	assert.ErrorIs(t, err, expectedErr)
}

func TestOverviewSnapshotSyncService_GetStatus(t *testing.T) {
	service := &OverviewSnapshotSyncService{
		config: OverviewSnapshotConfig{
			CronSchedule:    "0 5 * * *",
			SyncEnabled:     true,
			RetentionMonths: 12,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, 12, status["retention_months"])
	assert.Equal(t, false, status["sync_running"])
}

func TestOverviewSnapshotSyncService_GetStatus_DuranteSincronizacao(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockOverviewSnapshotRepository(ctrl)
	mockOverviewer := dashboardingmocks.NewMockOverviewer(ctrl)

	service := &OverviewSnapshotSyncService{
		companyRepo:  mockCompanyRepo,
		snapshotRepo: mockSnapshotRepo,
		overviewer:   mockOverviewer,
		config:       OverviewSnapshotConfig{RetentionMonths: 24},
	}

	mockCompanyRepo.EXPECT().
		ListActive().
		Return([]*domain.Company{{ID: 1, Name: "Empresa A"}}, nil)

	// Consulta o status no meio da sincronização, como /v1/cron/status faria
	mockOverviewer.EXPECT().
		GetOverview(1, "this-month").
		DoAndReturn(func(int, string) (*domain.OverviewResponse, error) {
			status := service.GetStatus()
			assert.Equal(t, true, status["sync_running"])
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			return &domain.OverviewResponse{OK: true}, nil
		})

	mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	mockSnapshotRepo.EXPECT().DeleteOlderThan(24).Return(int64(0), nil)

	err := service.SyncSnapshots()
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
