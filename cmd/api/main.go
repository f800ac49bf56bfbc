package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/orcafacil/orcafacil-api/infrastructure/database/postgres"
	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/api"
	"github.com/orcafacil/orcafacil-api/internal/config"
	"github.com/orcafacil/orcafacil-api/internal/scheduler"
	"github.com/orcafacil/orcafacil-api/internal/usecases/authenticating"
	"github.com/orcafacil/orcafacil-api/internal/usecases/dashboarding"
	"github.com/orcafacil/orcafacil-api/internal/usecases/quoting"
	"github.com/orcafacil/orcafacil-api/internal/usecases/quoting/pdf"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	quoteRepo := repository.NewQuoteRepository(pgConn)
	snapshotRepo := repository.NewOverviewSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, companyRepo, cfg)

	overviewService := dashboarding.NewService(quoteRepo, clientRepo, serviceRepo)

	pdfGenerator := pdf.NewGenerator("OrçaFácil")
	quoteService := quoting.NewService(quoteRepo, clientRepo, serviceRepo, pdfGenerator)

	// Inicializa o agendador de snapshots do overview
	snapshotSyncService := scheduler.NewOverviewSnapshotSyncService(
		companyRepo,
		snapshotRepo,
		overviewService,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do overview")
	} else {
		logrus.Info("Agendador de snapshots do overview iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		overviewService,
		quoteService,
		authenticator,
		clientRepo,
		serviceRepo,
		companyRepo,
		userRepo,
		snapshotRepo,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
