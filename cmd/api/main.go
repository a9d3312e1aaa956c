package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixnow/internal/config"
	"fixnow/internal/database"
	"fixnow/internal/gateway"
	"fixnow/internal/middleware"
	"fixnow/internal/modules/admin"
	"fixnow/internal/modules/auth"
	"fixnow/internal/modules/booking"
	"fixnow/internal/modules/catalog"
	"fixnow/internal/modules/notification"
	"fixnow/internal/modules/payment"
	"fixnow/internal/modules/professional"
	"fixnow/internal/modules/review"
	jwtsvc "fixnow/internal/pkg/jwt"
	"fixnow/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	professionalRepo := repository.NewProfessionalRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	gw := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewaySecretKey, cfg.GatewayWebhookSecret)

	notificationService := notification.NewService(notificationRepo, userRepo)
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, professionalRepo, notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, gw, notificationService, log.Printf)
	paymentHandler := payment.NewHandler(paymentService)

	professionalService := professional.NewService(professionalRepo, userRepo, serviceRepo, reviewRepo, notificationService)
	professionalHandler := professional.NewHandler(professionalService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, bookingRepo, professionalRepo, notificationService)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(adminRepo, userRepo, professionalRepo)
	adminHandler := admin.NewHandler(adminService)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go notificationService.RunSweeper(sweepCtx, time.Duration(cfg.SweepIntervalHours)*time.Hour)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)
		professionalHandler.RegisterRoutes(api)
		reviewHandler.RegisterRoutes(api)
		paymentHandler.RegisterWebhookRoutes(api)

		// authenticated
		protected := api.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			professionalHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}

		// admin
		adminOnly := api.Group("/")
		adminOnly.Use(middleware.Auth(j, userRepo), middleware.AdminOnly())
		{
			catalogHandler.RegisterAdminRoutes(adminOnly)
			professionalHandler.RegisterAdminRoutes(adminOnly)
			reviewHandler.RegisterAdminRoutes(adminOnly)
			notificationHandler.RegisterAdminRoutes(adminOnly)
		}

		dashboard := api.Group("/admin")
		dashboard.Use(middleware.Auth(j, userRepo), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(dashboard)
		}
	}

	log.Printf("level=info msg=listening port=%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
