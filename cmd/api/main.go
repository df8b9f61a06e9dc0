package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/infrastructure/database/postgres"
	"github.com/Gabryellzs/blecks-david-sub000/infrastructure/repository"
	"github.com/Gabryellzs/blecks-david-sub000/internal/api"
	"github.com/Gabryellzs/blecks-david-sub000/internal/config"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/factory"
	"github.com/Gabryellzs/blecks-david-sub000/internal/scheduler"
	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/authenticating"
	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/tracking"
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

	syncStatusRepo := repository.NewSyncStatusRepository(pgConn)
	snapshotRepo := repository.NewMetricsSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	platformFactory := factory.NewFactory(platform.NewClient(0))
	trackingService := tracking.NewService(platformFactory)

	// Registra as plataformas habilitadas na configuração
	for _, seed := range cfg.PlatformSeeds() {
		if err := trackingService.AddPlatform(ctx, seed.Kind, seed.Overrides); err != nil {
			logrus.WithError(err).WithField("platform", seed.Kind).
				Error("Erro ao registrar plataforma de rastreamento")
			continue
		}

		logrus.WithField("platform", seed.Kind).Info("Plataforma de rastreamento registrada")
	}

	// Inicializa o agendador de sincronização de plataformas
	trackingSyncService := scheduler.NewTrackingSyncService(
		trackingService,
		syncStatusRepo,
		snapshotRepo,
		cfg,
	)

	if err := trackingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de plataformas")
	} else {
		logrus.Info("Agendador de sincronização de plataformas iniciado com sucesso")
	}

	server, err := api.New(cfg, trackingService, authenticator)
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
