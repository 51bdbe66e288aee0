package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"miniattic-api/internal/config"
	"miniattic-api/internal/controller"
	"miniattic-api/internal/logging"
	"miniattic-api/internal/middleware"
	"miniattic-api/internal/rabbit"
	"miniattic-api/internal/repository"
	"miniattic-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Conexión a MongoDB
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return errors.Wrap(err, "connect mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn("mongo disconnect", zap.Error(err))
		}
	}()
	db := client.Database(cfg.MongoDBName)

	if err := repository.EnsureIndexes(connectCtx, db, cfg.Collections); err != nil {
		return err
	}

	// Repositorios
	orderRepo := repository.NewMongoOrderRepository(db, cfg.Collections.Order)
	productRepo := repository.NewMongoProductRepository(db, cfg.Collections.Product)
	categoryRepo := repository.NewMongoCategoryRepository(db, cfg.Collections.Category)
	paymentRepo := repository.NewMongoPaymentRepository(db, cfg.Collections.Payment)
	pageRepo := repository.NewMongoPageRepository(db, cfg.Collections.Page)
	userRepo := repository.NewMongoUserRepository(db, cfg.Collections.User)

	// Conexión a RabbitMQ (opcional)
	var (
		events service.EventPublisher
		ch     *amqp091.Channel
	)
	if cfg.RabbitURL != "" {
		conn, err := amqp091.Dial(cfg.RabbitURL)
		if err != nil {
			return errors.Wrap(err, "connect rabbitmq")
		}
		defer conn.Close()

		ch, err = conn.Channel()
		if err != nil {
			return errors.Wrap(err, "open rabbitmq channel")
		}
		publisher, err := rabbit.NewPublisher(ch)
		if err != nil {
			return err
		}
		events = publisher
	} else {
		logger.Info("RABBIT_URL not set, messaging disabled")
	}

	// Servicios
	orderService := service.NewOrderService(orderRepo, productRepo, events, logger, cfg.ImageBaseURL)
	authService := service.NewAuthService(userRepo, cfg.JWTKey, cfg.JWTTTL, cfg.Access)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, paymentRepo, cfg.ImageBaseURL)
	pageService, err := service.NewPageService(pageRepo, productRepo, cfg.ImageBaseURL, cfg.ImageCacheSize)
	if err != nil {
		return err
	}
	imageService := service.NewImageService(cfg.ImageDir, cfg.ImageMaxBytes, productRepo, pageService)

	if ch != nil {
		if err := rabbit.SetupConsumers(ctx, ch, orderService, logger); err != nil {
			return err
		}
	}

	// Métricas
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(gin.ReleaseMode)
	router := controller.NewRouter(controller.RouterConfig{
		Orders:         controller.NewOrderController(orderService, logger),
		Catalog:        controller.NewCatalogController(catalogService, logger),
		Pages:          controller.NewPageController(pageService, catalogService, imageService, logger),
		Users:          controller.NewUserController(authService, logger),
		Verifier:       authService,
		Logger:         logger,
		Metrics:        middleware.NewServerMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Health: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		AllowCORS:   cfg.AllowCORS,
		CORSKeyword: cfg.CORSOriginKeyword,
		ImageDir:    cfg.ImageDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("miniattic api listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
