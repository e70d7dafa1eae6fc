package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/config"
	"github.com/Astemirdum/locallibrary/catalog/internal/handler"
	"github.com/Astemirdum/locallibrary/catalog/internal/repository"
	"github.com/Astemirdum/locallibrary/catalog/internal/server"
	"github.com/Astemirdum/locallibrary/catalog/internal/service"
	"github.com/Astemirdum/locallibrary/catalog/migrations"
	"github.com/Astemirdum/locallibrary/pkg/circuit_breaker"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
	"github.com/Astemirdum/locallibrary/pkg/logger"
	"github.com/Astemirdum/locallibrary/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var (
		enqueuer kafka.Enqueuer = kafka.NopEnqueuer{}
		producer sarama.SyncProducer
	)
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		enqueuer = kafka.NewEnqueuer(producer, circuit_breaker.New(cfg.CircuitBreaker))
	} else {
		log.Warn("no kafka brokers configured, catalog events are dropped")
	}

	svc := service.NewService(repo, enqueuer, log)
	h := handler.New(svc, log, cfg)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
