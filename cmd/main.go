package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/app"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/config"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/events"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/handler"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/postgres"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/repo"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/service"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/cache"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Furniture Store API
// @version         1.0
// @description     Storefront catalog, cart and checkout HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	var notifier service.Notifier = events.NopNotifier{}
	application := app.New(logger, conf)

	if conf.Kafka.Enabled {
		publisher := events.NewKafkaPublisher(logger, conf.Kafka)
		application.SetClosers(publisher)
		notifier = publisher
		logger.Info("kafka publisher enabled")
	}

	catalogService := service.NewCatalogService(logger, storeRepo, lru)
	cartStore := service.NewCacheCartStore(lru)
	cartService := service.NewCartService(logger, cartStore, catalogService)
	orderService := service.NewOrderService(logger, txManager, storeRepo, catalogService, cartStore, notifier)

	httpHandler := handler.NewHTTPHandler(logger, catalogService, cartService, orderService)

	application.SetHTTPHandlers(httpHandler)
	application.SetStarters(lru)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
