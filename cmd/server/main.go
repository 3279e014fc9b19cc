package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"hotel-backend/internal/auth"
	"hotel-backend/internal/cache"
	"hotel-backend/internal/config"
	"hotel-backend/internal/database"
	"hotel-backend/internal/db"
	"hotel-backend/internal/handlers"
	"hotel-backend/internal/health"
	httpPkg "hotel-backend/internal/http"
	"hotel-backend/internal/middleware"
	"hotel-backend/internal/monitoring"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/services"
	"hotel-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	if err := cache.Init(cfg); err != nil {
		log.Printf("[Cache] Redis unavailable, continuing without cache: %v", err)
	}

	migrationCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(migrationCtx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	settingRepo := repositories.NewHotelSettingRepository(pool)
	roomRepo := repositories.NewRoomRepository(pool)
	bookingRepo := repositories.NewBookingRepository(pool)
	foodRepo := repositories.NewFoodRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)

	// Internal ops dashboard on its own port.
	go monitoring.NewMonitoringServer(pool, bookingRepo, invoiceRepo, 9090).Start()

	archiver := storage.NewArchiver(cfg)

	// Services
	totpService := services.NewTOTPService(userRepo)
	userService := services.NewUserService(userRepo, jwtManager, totpService)
	settingService := services.NewHotelSettingService(settingRepo)
	bookingService := services.NewBookingService(bookingRepo, roomRepo)
	foodService := services.NewFoodService(foodRepo, bookingRepo)
	billService := services.NewBillService(settingRepo, bookingRepo, roomRepo, foodRepo, invoiceRepo, archiver)
	paymentService := services.NewPaymentService(cfg, paymentRepo, invoiceRepo)
	reportService := services.NewReportService(settingRepo, invoiceRepo, bookingRepo)
	policeService := services.NewPoliceReportService(settingRepo, bookingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	totpHandler := handlers.NewTOTPHandler(totpService, userService)
	settingHandler := handlers.NewSettingHandler(settingService)
	roomHandler := handlers.NewRoomHandler(roomRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, billService)
	foodHandler := handlers.NewFoodHandler(foodService)
	billHandler := handlers.NewBillHandler(billService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	reportHandler := handlers.NewReportHandler(reportService)
	policeHandler := handlers.NewPoliceHandler(policeService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := httpPkg.NewRouter(
		authHandler,
		userHandler,
		totpHandler,
		settingHandler,
		roomHandler,
		bookingHandler,
		foodHandler,
		billHandler,
		invoiceHandler,
		paymentHandler,
		reportHandler,
		policeHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.NewCORS(cfg)(middleware.MetricsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on port %d", cfg.Server.Port)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
