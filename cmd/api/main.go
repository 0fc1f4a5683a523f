package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/rcclient"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-leaderboard-api/internal/api"
	"github.com/vfg2006/revenue-leaderboard-api/internal/config"
	"github.com/vfg2006/revenue-leaderboard-api/internal/scheduler"
	"github.com/vfg2006/revenue-leaderboard-api/internal/usecases/leaderboarding"
	"github.com/vfg2006/revenue-leaderboard-api/internal/usecases/registering"
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

	startupRepo := repository.NewStartupRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	metricsRepo := repository.NewMetricsRepository(pgConn)

	rcClient := rcclient.NewClient(cfg)
	rcIntegrator := revenuecat.New(cfg, rcClient)

	registeringService := registering.NewService(startupRepo, credentialRepo, metricsRepo, rcIntegrator, cfg)
	leaderboardService := leaderboarding.NewService(metricsRepo, startupRepo)

	metricsRefreshService := scheduler.NewMetricsRefreshService(
		startupRepo,
		credentialRepo,
		metricsRepo,
		rcIntegrator,
		cfg,
	)

	// Inicia o agendador em background
	if err := metricsRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de métricas")
	} else {
		logrus.Info("Agendador de atualização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		leaderboardService,
		registeringService,
		metricsRefreshService,
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
