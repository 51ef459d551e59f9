package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realestate-seo-api/infrastructure/database/postgres"
	"github.com/vfg2006/realestate-seo-api/infrastructure/migration"
	"github.com/vfg2006/realestate-seo-api/infrastructure/ratelimit"
	"github.com/vfg2006/realestate-seo-api/infrastructure/repository"
	"github.com/vfg2006/realestate-seo-api/internal/api"
	"github.com/vfg2006/realestate-seo-api/internal/api/handler"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/internal/scheduler"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/analyzing"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/tracking"
	"github.com/vfg2006/realestate-seo-api/pkg/log"
	"github.com/vfg2006/realestate-seo-api/pkg/middleware"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		runner, err := migration.New(pgConn.DB)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar migrações")
		}
		if err := runner.Up(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	eventRepo := repository.NewEventRepository(pgConn)
	monitoringRepo := repository.NewMonitoringRepository(pgConn)
	keywordRankingRepo := repository.NewKeywordRankingRepository(pgConn)
	pageCountRepo := repository.NewPageCountRepository(pgConn)
	seoIssueRepo := repository.NewSEOIssueRepository(pgConn)
	scoreHistoryRepo := repository.NewScoreHistoryRepository(pgConn)

	analyzer := analyzing.NewService(
		cfg,
		eventRepo,
		monitoringRepo,
		keywordRankingRepo,
		pageCountRepo,
		seoIssueRepo,
		scoreHistoryRepo,
	)

	tracker := tracking.NewService(cfg, eventRepo, monitoringRepo, keywordRankingRepo)

	scoreSnapshotSyncService := scheduler.NewScoreSnapshotSyncService(analyzer, scoreHistoryRepo, cfg)
	eventRetentionService := scheduler.NewEventRetentionService(eventRepo, cfg)

	if err := scoreSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de histórico de score")
	} else {
		logrus.Info("Agendador de histórico de score iniciado com sucesso")
	}

	if err := eventRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de eventos")
	} else {
		logrus.Info("Agendador de retenção de eventos iniciado com sucesso")
	}

	var limiter middleware.RateLimiter
	if cfg.Redis.Addr != "" {
		redisLimiter, err := ratelimit.Connect(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, rate limit desligado")
		} else {
			defer redisLimiter.Close()
			limiter = redisLimiter
			logrus.WithField("addr", cfg.Redis.Addr).Info("Rate limit com redis habilitado")
		}
	}

	server, err := api.New(
		cfg,
		analyzer,
		tracker,
		handler.CronJobServices{
			ScoreSnapshotSyncService: scoreSnapshotSyncService,
			EventRetentionService:    eventRetentionService,
		},
		limiter,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env ao rodar com go run a partir de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
