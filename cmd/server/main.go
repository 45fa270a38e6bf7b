package main

import (
	"log"

	"storefront/internal/config"
	apphttp "storefront/internal/controllers/http"
	"storefront/internal/infra/mailer"
	"storefront/internal/infra/notifylog"
	"storefront/internal/infra/rabbitmq"
	"storefront/internal/infra/session"
	dbsqlite "storefront/internal/infra/sqlite"
	sqliterepo "storefront/internal/repository/sqlite"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := dbsqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("db open", zap.Error(err))
	}
	if err := dbsqlite.Seed(db); err != nil {
		logger.Fatal("db seed", zap.Error(err))
	}

	var carts session.CartStore
	var tokens session.TokenStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		carts = session.NewRedisCartStore(rdb, cfg.CartTTL)
		tokens = session.NewRedisTokenStore(rdb, cfg.SessionTTL)
	} else {
		logger.Warn("redis not configured, sessions are process-local")
		carts = session.NewMemoryCartStore()
		tokens = session.NewMemoryTokenStore()
	}

	productRepo := sqliterepo.NewProductRepository(db)
	orderRepo := sqliterepo.NewOrderRepository(db)
	userRepo := sqliterepo.NewUserRepository(db)
	notifRepo := sqliterepo.NewNotificationRepository(db)

	var mail mailer.Sender
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	}

	var publisher rabbitmq.PublisherInterface
	if cfg.AmqpURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.AmqpURL, cfg.OrderEventExchange)
		if err != nil {
			// event publishing is best-effort infrastructure; run without it
			logger.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
		} else {
			defer p.Close()
			publisher = p
		}
	}

	notifier := services.NewNotifier(mail, notifRepo, notifylog.NewFileLog(cfg.NotificationLog), logger)

	catalogSvc := services.NewCatalogService(productRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo, notifier, publisher, logger)
	authSvc := services.NewAuthService(userRepo, tokens)
	notifSvc := services.NewNotificationService(notifRepo)

	handler := apphttp.NewHandler(catalogSvc, orderSvc, authSvc, notifSvc, carts)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), apphttp.RequestLogger(logger))
	handler.RegisterRoutes(r)

	logger.Info("starting storefront", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
