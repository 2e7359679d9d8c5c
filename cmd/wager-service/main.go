package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/fitstake/weight-wager-platform/internal/shared/cache"
	"github.com/fitstake/weight-wager-platform/internal/shared/config"
	"github.com/fitstake/weight-wager-platform/internal/shared/db"
	sharedkafka "github.com/fitstake/weight-wager-platform/internal/shared/kafka"
	"github.com/fitstake/weight-wager-platform/internal/shared/logger"
	"github.com/fitstake/weight-wager-platform/internal/shared/metrics"
	wcache "github.com/fitstake/weight-wager-platform/internal/wager-service/cache"
	whttp "github.com/fitstake/weight-wager-platform/internal/wager-service/http"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/producer"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/repo"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/wager"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/wallet"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("wager-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Redis (cache de snapshots de progresso)
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}

	// Kafka writers (wager_created e wager_settled)
	createdWriter := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerCreated)
	defer createdWriter.Close()
	settledWriter := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerSettled)
	defer settledWriter.Close()

	// deps
	store := repo.NewPostgres(pg)
	svc := wager.NewService(store)

	walletURL := os.Getenv("WALLET_URL")
	if walletURL == "" {
		walletURL = cfg.WalletURL
	}
	wcli := wallet.New(walletURL)
	publ := producer.NewKafkaPublisher(createdWriter, settledWriter)
	progressCache := wcache.New(rdb)

	// HTTP público
	api := whttp.NewServer(log, svc, wcli, publ, progressCache)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", metricsSrv.Addr))

	log.Info("wager-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
