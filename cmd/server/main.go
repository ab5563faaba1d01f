package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"cafesite/config"
	"cafesite/internal/adapters/auth"
	"cafesite/internal/adapters/cache"
	"cafesite/internal/adapters/email"
	"cafesite/internal/adapters/reviews"
	httpdelivery "cafesite/internal/delivery/http"
	"cafesite/internal/delivery/http/controllers"
	"cafesite/internal/delivery/http/middleware"
	"cafesite/internal/domain"
	"cafesite/internal/repository/postgres"
	"cafesite/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
	bcryptCost      = 12
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Redis is optional: when it is unreachable the site falls back to the
	// in-process cache and keeps serving.
	var byteCache domain.Cache
	if client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); client != nil {
		byteCache = cache.NewRedisCache(client)
		logger.Info("using redis cache", "addr", cfg.RedisAddr)
	} else {
		byteCache = cache.NewMemoryCache()
		logger.Info("using in-memory cache")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mailer.SESRegion,
			AccessKeyID:        cfg.Mailer.SESAccessKeyID,
			SecretAccessKey:    cfg.Mailer.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mailer.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	reservationRepo := postgres.NewReservationRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	drinkRepo := postgres.NewDrinkRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	positionRepo := postgres.NewPositionRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.AdminEmail)
	reservationSvc := services.NewReservationService(reservationRepo, emailSvc, cfg.AdminEmail, logger, serviceTimeout)
	menuSvc := services.NewMenuService(categoryRepo, drinkRepo, serviceTimeout)
	gallerySvc := services.NewGalleryService(galleryRepo, serviceTimeout)
	careerSvc := services.NewCareerService(positionRepo, serviceTimeout)
	authSvc := services.NewAuthService(userRepo, auth.NewBcryptHasher(bcryptCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.TokenExpiry, serviceTimeout)
	reviewSvc := services.NewReviewService(
		reviews.NewHTTPFetcher(&http.Client{Timeout: 10 * time.Second}, cfg.ReviewFeedURL),
		byteCache, cfg.ReviewCacheTTL, logger, serviceTimeout)
	formTokenSvc := services.NewFormTokenService(byteCache, serviceTimeout)
	contactSvc := services.NewContactService(emailSvc, serviceTimeout)

	requireAuth := middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger)
	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Reservation: controllers.NewReservationController(logger, reservationSvc, formTokenSvc),
		Menu:        controllers.NewMenuController(logger, menuSvc),
		Gallery:     controllers.NewGalleryController(logger, gallerySvc),
		Career:      controllers.NewCareerController(logger, careerSvc),
		Auth:        controllers.NewAuthController(logger, authSvc),
		Review:      controllers.NewReviewController(logger, reviewSvc),
		Contact:     controllers.NewContactController(logger, contactSvc, formTokenSvc),
	}, requireAuth)

	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger,
			middleware.Metrics(mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
