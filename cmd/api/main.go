package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/mazvaris/optiapp/internal/application/auth"
	"github.com/mazvaris/optiapp/internal/application/lens"
	"github.com/mazvaris/optiapp/internal/application/usecase"
	"github.com/mazvaris/optiapp/internal/infrastructure/cache"
	"github.com/mazvaris/optiapp/internal/infrastructure/notify"
	infrapdf "github.com/mazvaris/optiapp/internal/infrastructure/pdf"
	"github.com/mazvaris/optiapp/internal/infrastructure/postgres"
	httpRouter "github.com/mazvaris/optiapp/internal/interfaces/http"
	"github.com/mazvaris/optiapp/internal/scheduler"
	"github.com/mazvaris/optiapp/pkg/config"
	"github.com/mazvaris/optiapp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis opcional: REDIS_ADDR vacío deja el cache de grilla desactivado.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	gridCache := cache.NewRedisGridCache(redisClient, time.Duration(cfg.Redis.TTLSecs)*time.Second, log)

	userRepo := postgres.NewUserRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	enquiryRepo := postgres.NewEnquiryRepository(pool)
	frameRepo := postgres.NewFrameRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	lensRepo := postgres.NewLensStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	smsClient := notify.NewSMSClient(cfg.Notify, log)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	patientUC := usecase.NewPatientUseCase(patientRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, patientRepo, smsClient, log)
	enquiryUC := usecase.NewEnquiryUseCase(enquiryRepo)
	frameUC := usecase.NewFrameUseCase(frameRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	gridUC := lens.NewGridUseCase(lensRepo, gridCache, log)
	restockUC := lens.NewRestockUseCase(txRunner, gridCache, log)
	removalUC := lens.NewRemovalUseCase(lensRepo, gridCache, log)
	reportUC := lens.NewReportUseCase(lensRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "OptiApp API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		PatientUC:     patientUC,
		AppointmentUC: appointmentUC,
		EnquiryUC:     enquiryUC,
		FrameUC:       frameUC,
		StaffUC:       staffUC,
		ExpenseUC:     expenseUC,
		GridUC:        gridUC,
		RestockUC:     restockUC,
		RemovalUC:     removalUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	sched := scheduler.NewScheduler(gridUC, appointmentUC, log)
	sched.Start()
	defer sched.Stop()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
