package main

import (
	"net/http"
	"os"
	"time"

	"bozor/api/handler"
	apiMiddleware "bozor/api/middleware"
	"bozor/api/routes"
	"bozor/config"
	"bozor/internal/entity"
	"bozor/internal/repository"
	"bozor/internal/service"
	"bozor/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("config")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database")
	}
	if err := db.AutoMigrate(
		&entity.Region{},
		&entity.Category{},
		&entity.User{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Comment{},
		&entity.SecurityLog{},
	); err != nil {
		logger.WithError(err).Fatal("migrate")
	}

	validate := validator.New()

	jwtManager := &utils.JWTManager{
		AccessSecret:    cfg.AccessTokenSecret,
		RefreshSecret:   cfg.RefreshTokenSecret,
		Issuer:          cfg.JWTIssuer,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	}

	userRepo := repository.NewUserRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	notifier := &service.Notifier{
		Email:   service.NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom),
		SMS:     service.NewEskizSMSSender(cfg.EskizBaseURL, cfg.EskizToken),
		Timeout: cfg.NotifyTimeout,
		Logger:  logger,
	}

	authService := service.NewAuthService(
		userRepo,
		regionRepo,
		securityRepo,
		service.BcryptPasswordHasher{Cost: cfg.BcryptCost},
		service.JWTTokenIssuer{Manager: jwtManager},
		service.NewTOTPChallenge(cfg.OTPSecret, cfg.OTPPeriod),
		notifier,
		service.RealClock{},
	)
	catalogService := service.NewCatalogService(regionRepo, categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	commentService := service.NewCommentService(commentRepo, productRepo)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status":     v.Status,
				"method":     v.Method,
				"uri":        v.URI,
				"ip":         v.RemoteIP,
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	router := routes.NewRouter(
		app,
		handler.NewAuthHandler(authService, validate),
		handler.NewUserHandler(authService, validate),
		handler.NewCatalogHandler(catalogService, validate),
		handler.NewProductHandler(productService, validate),
		handler.NewOrderHandler(orderService, validate),
		handler.NewCommentHandler(commentService, validate),
		apiMiddleware.AuthMiddleware{JWT: jwtManager},
	)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
