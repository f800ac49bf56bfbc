// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/config"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/internal/usecases/dashboarding"
	"github.com/orcafacil/orcafacil-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type OverviewSnapshotConfig struct {
	CronSchedule    string
	SyncEnabled     bool
	RetentionMonths int
}

// OverviewSnapshotSyncService materializa os KPIs do mês corrente de cada
// empresa ativa em overview_snapshots, preservando o histórico mensal mesmo
// depois que os orçamentos do período saem da janela dos ranges do dashboard.
type OverviewSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	companyRepo         repository.CompanyRepository
	snapshotRepo        repository.OverviewSnapshotRepository
	overviewer          dashboarding.Overviewer
	config              OverviewSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewOverviewSnapshotSyncService(
	companyRepo repository.CompanyRepository,
	snapshotRepo repository.OverviewSnapshotRepository,
	overviewer dashboarding.Overviewer,
	cfg *config.Config,
) *OverviewSnapshotSyncService {
	snapshotConfig := OverviewSnapshotConfig{
		CronSchedule:    cfg.OverviewSnapshot.CronSchedule,    // Default: 5h da manhã todos os dias
		SyncEnabled:     cfg.OverviewSnapshot.Enabled,         // Default: desabilitado
		RetentionMonths: cfg.OverviewSnapshot.RetentionMonths, // Default: 24 meses
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshots do overview carregada")

	return &OverviewSnapshotSyncService{
		scheduler:    scheduler,
		companyRepo:  companyRepo,
		snapshotRepo: snapshotRepo,
		overviewer:   overviewer,
		config:       snapshotConfig,
	}
}

func (s *OverviewSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots do overview desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots do overview")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de snapshots do overview")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots do overview: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots do overview")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OverviewSnapshotSyncService) SyncSnapshots() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de snapshots do overview já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	// O mutex não fica retido durante a sincronização: GetStatus pode ser
	// consultado por /v1/cron/status enquanto o trabalho roda
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots do overview")

	companies, err := s.companyRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar empresas ativas para snapshots do overview")
		return err
	}

	if len(companies) == 0 {
		logrus.Info("Nenhuma empresa ativa encontrada para snapshots do overview")
		return nil
	}

	month := time.Now().Format("2006-01")
	s.processCompanies(companies, month)

	if s.config.RetentionMonths > 0 {
		deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionMonths)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover snapshots antigos do overview")
		} else if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Snapshots antigos do overview removidos")
		}
	}

	logrus.Info("Sincronização de snapshots do overview concluída")

	return nil
}

// processCompanies agrega e persiste o snapshot do mês de cada empresa. Uma
// falha em uma empresa não interrompe as demais.
func (s *OverviewSnapshotSyncService) processCompanies(companies []*domain.Company, month string) {
	for _, company := range companies {
		overview, err := s.overviewer.GetOverview(company.ID, dashboarding.RangeThisMonth)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"month":      month,
			}).WithError(err).Error("Erro ao montar overview para snapshot")
			continue
		}

		kpis := overview.KPIs
		snapshot := &domain.OverviewSnapshot{
			CompanyID: company.ID,
			Month:     month,
			KPIs:      &kpis,
		}

		logrus.Debugf("Snapshot calculado: %s", utils.PrettyJson(snapshot))

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"month":      month,
			}).WithError(err).Error("Erro ao salvar snapshot do overview")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"company_id": company.ID,
			"month":      month,
		}).Info("Snapshot do overview atualizado")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *OverviewSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots do overview")
	go s.SyncSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *OverviewSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_months":       s.config.RetentionMonths,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
