package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/blackbox"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/detector"
	v1 "github.com/vish-34/PulseIQ/internal/handler/http/v1"
	"github.com/vish-34/PulseIQ/internal/hospital"
	"github.com/vish-34/PulseIQ/internal/insurance"
	"github.com/vish-34/PulseIQ/internal/notifier"
	"github.com/vish-34/PulseIQ/internal/registry"
	"github.com/vish-34/PulseIQ/internal/repository"
	"github.com/vish-34/PulseIQ/internal/service"
	"github.com/vish-34/PulseIQ/internal/webhook"
	"github.com/vish-34/PulseIQ/pkg/logger"
	redisclient "github.com/vish-34/PulseIQ/pkg/redis"
)

// @title PulseIQ Emergency Response API
// @version 1.0
// @description Crash triangulation and emergency response orchestration server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey TriggerTokenAuth
// @in header
// @name X-Trigger-Token
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя событий инцидентов
	eventPublisher := webhook.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Хранилище инцидентов и реестр отмен
	incidentStore := repository.NewIncidentStore()
	cancelRegistry := registry.NewCancelRegistry(log)

	// Каналы уведомлений: Twilio и SMTP опциональны, протокол работает
	// и без них в режиме "лучший из возможных"
	twilioNotifier, err := notifier.NewTwilioNotifier(cfg, log)
	if err != nil {
		log.Warnf("Twilio channel disabled: %v", err)
	}
	emailSender, err := notifier.NewEmailSender(cfg, log)
	if err != nil {
		log.Warnf("Email channel disabled: %v", err)
	}
	multiChannel := notifier.NewMultiChannel(emailSender, twilioNotifier, log)

	// Доменные сервисы
	crashDetector := detector.New(cfg, log)
	hospitalLocator := hospital.NewLocator(cfg, log)
	insuranceService := insurance.NewService(cfg, log)
	tokenStore := insurance.NewTokenStore(cfg.PreauthTokenTTL)
	blackBox := blackbox.NewManager(cfg.BlackBoxBufferSeconds, log)

	crashService := service.NewCrashService(
		cfg, log, crashDetector, incidentStore, cancelRegistry,
		hospitalLocator, multiChannel, insuranceService, tokenStore,
		blackBox, eventPublisher,
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(crashService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Отменяем активные инциденты, чтобы висящие протоколы завершились
	if n := cancelRegistry.CancelAll(); n > 0 {
		log.Infof("Cancelled %d active incidents on shutdown", n)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
