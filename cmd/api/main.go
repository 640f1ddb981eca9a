package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"rodvers/internal/adapter/api"
	"rodvers/internal/adapter/api/handler"
	apimiddleware "rodvers/internal/adapter/api/middleware"
	"rodvers/internal/adapter/api/router"
	"rodvers/internal/adapter/repository"
	"rodvers/internal/domain/seo"
	"rodvers/internal/infrastructure/auth"
	"rodvers/internal/infrastructure/cloudinary"
	"rodvers/internal/infrastructure/mongodb"
	"rodvers/internal/infrastructure/ratelimit"
	"rodvers/internal/usecase"
	"rodvers/pkg/config"
	"rodvers/pkg/logger"
	"rodvers/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", "err", err)
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.MongoDB)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("failed to ensure indexes", "err", err)
	}
	logger.Info("connected to MongoDB", "db", cfg.MongoDB)

	mediaClient, err := cloudinary.NewClient(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		logger.Fatal("failed to initialize media client", "err", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	listingRepo := repository.NewMongoListingRepository(db)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	seoGen := seo.NewGenerator(cfg.SiteName, cfg.SiteURL)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, hasher)
	userUseCase := usecase.NewUserUseCase(userRepo, listingRepo, mediaClient, hasher)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo, mediaClient, seoGen)

	handler.Setup(authUseCase, userUseCase, listingUseCase, mediaClient)

	e := echo.New()
	e.HideBanner = true

	e.Use(logger.Middleware())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(metrics.NewHTTPMetrics().Middleware())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokens)

	// Credential endpoints get a per-IP limiter: 1 request/sec, burst of 5.
	authLimiter := apimiddleware.RateLimit(ratelimit.NewKeyedLimiter(1, 5))

	router.Setup(e, authMiddleware, cfg.PromoteSecret, authLimiter)

	logger.Info("starting server", "port", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
