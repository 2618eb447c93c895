package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/config"
	"github.com/shenikar/barangay_portal/internal/connectivity"
	"github.com/shenikar/barangay_portal/internal/dashboard"
	"github.com/shenikar/barangay_portal/internal/emergency"
	"github.com/shenikar/barangay_portal/internal/forms"
	"github.com/shenikar/barangay_portal/internal/geo"
	v1 "github.com/shenikar/barangay_portal/internal/handler/http/v1"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/shenikar/barangay_portal/internal/repository"
	"github.com/shenikar/barangay_portal/internal/service"
	"github.com/shenikar/barangay_portal/internal/session"
	"github.com/shenikar/barangay_portal/internal/webhook"
	"github.com/shenikar/barangay_portal/pkg/logger"
	redisclient "github.com/shenikar/barangay_portal/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/barangay_portal/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Ключи, которые перечитываются после восстановления связи
var reconnectKeys = []string{
	service.EmergencyKey,
	service.CertificateKey,
	service.BusinessPermitKey,
	service.BlotterKey,
	service.ComplaintKey,
	service.AnnouncementKey,
	service.UserKey,
}

// @title Barangay Portal API
// @version 1.0
// @description Local client of the barangay e-government portal: emergency panel, forms, dashboards and ID cards.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name access_token
func newAlarm(cfg *config.Config, log *logrus.Logger) emergency.Alarm {
	if cfg.AlarmPlayer != "" {
		log.WithFields(logrus.Fields{
			"player": cfg.AlarmPlayer,
			"path":   cfg.AlarmSoundPath,
		}).Info("Using external alarm player")
		return emergency.NewCommandAlarm(cfg.AlarmPlayer, cfg.AlarmSoundPath, log)
	}
	log.Info("ALARM_PLAYER is not set, using terminal bell")
	return emergency.NewBellAlarm(os.Stderr, time.Second)
}

// restoreSession восстанавливает сессию; без нее входит учетной записью сотрудника из конфигурации
func restoreSession(ctx context.Context, store *session.Store, cfg *config.Config, log *logrus.Logger) {
	err := store.Init(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, session.ErrNotAuthenticated) || !cfg.HasStaffCredentials() {
		log.WithError(err).Info("Starting without a session")
		return
	}

	if _, err := store.Login(ctx, &models.LoginInput{Email: cfg.StaffEmail, Password: cfg.StaffPassword}); err != nil {
		log.WithError(err).Warn("Automatic staff login failed")
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Клиент REST API портала
	api, err := apiclient.New(apiclient.Options{
		BaseURL:      cfg.APIBaseURL,
		MediaBaseURL: cfg.MediaBaseURL,
		Timeout:      cfg.APITimeout,
	}, log)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	cache := querycache.New(cfg.CacheStaleTime, log)
	feed := notify.NewFeed(notify.DefaultCapacity, log)

	// Инициализация Redis клиента (необязательно)
	var redisClient *goredis.Client
	if cfg.RedisEnabled() {
		redisClient, err = redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Инициализация репозиториев
	emergencyRepo := repository.NewEmergencyRepository(api)
	certificateRepo := repository.NewCertificateRepository(api)
	permitRepo := repository.NewBusinessPermitRepository(api)
	blotterRepo := repository.NewBlotterRepository(api)
	complaintRepo := repository.NewComplaintRepository(api)
	announcementRepo := repository.NewAnnouncementRepository(api)
	userRepo := repository.NewUserRepository(api)
	authRepo := repository.NewAuthRepository(api)

	// Инициализация сервисов
	emergencyService := service.NewEmergencyService(emergencyRepo, cache, feed, log)
	certificateService := service.NewCertificateService(certificateRepo, cache, feed, log)
	permitService := service.NewBusinessPermitService(permitRepo, cache, feed, log)
	blotterService := service.NewBlotterService(blotterRepo, cache, feed, log)
	complaintService := service.NewComplaintService(complaintRepo, cache, feed, log)
	announcementService := service.NewAnnouncementService(announcementRepo, cache, feed, log)
	userService := service.NewUserService(userRepo, cache, feed, log)

	// Сессия
	var tokens session.TokenStore = session.NewMemoryTokenStore()
	if redisClient != nil {
		tokens = session.NewRedisTokenStore(redisClient)
	}
	store := session.NewStore(authRepo, tokens, cache, feed, log)

	// Ретрансляция тревог во внешний вебхук
	var publisher emergency.AlertPublisher
	if cfg.AlertRelayEnabled() {
		publisher = webhook.NewRedisAlertPublisher(redisClient)
		alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
		alertWorker.Start(ctx)
		defer func() { <-alertWorker.Done() }()
	}

	// Панель экстренных вызовов живет, пока в сессии сотрудник
	alarm := newAlarm(cfg, log)
	tracker := emergency.NewTracker(emergencyService, cache, alarm, feed, log, emergency.Options{
		PollInterval: cfg.EmergencyPollInterval,
		MediaURL:     api.MediaURL,
		Publisher:    publisher,
	})
	unsubscribe := store.OnChange(func(user *models.User) {
		switch user.Role() {
		case models.RoleAdmin, models.RoleStaff:
			tracker.Mount(ctx)
		default:
			tracker.Unmount()
		}
	})
	defer unsubscribe()

	restoreSession(ctx, store, cfg, log)

	refresher, err := session.NewRefresher(store, cfg.TokenRefreshSchedule, cfg.TokenRefreshLeeway, log)
	if err != nil {
		log.Fatalf("Failed to create token refresher: %v", err)
	}
	refresher.Start()

	// Проверка связи с API
	monitor := connectivity.NewMonitor(api, cfg.ConnectivityCheckInterval, log)
	monitor.OnChange(func(online bool) {
		if !online {
			return
		}
		for _, key := range reconnectKeys {
			cache.Invalidate(key)
		}
	})
	monitor.Start(ctx)

	// Таблицы панели сотрудника
	boards := dashboard.NewRegistry(
		dashboard.EmergencyBoard(emergencyService),
		dashboard.CertificateBoard(certificateService),
		dashboard.BusinessPermitBoard(permitService),
		dashboard.BlotterBoard(blotterService),
		dashboard.ComplaintBoard(complaintService),
		dashboard.AnnouncementBoard(announcementService),
		dashboard.PersonnelBoard(userService),
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Deps{
		Session:       store,
		Panel:         tracker,
		Emergencies:   emergencyService,
		Certificates:  certificateService,
		Permits:       permitService,
		Blotters:      blotterService,
		Complaints:    complaintService,
		MyComplaints:  complaintService,
		Announcements: announcementService,
		Dashboards:    boards,
		Notifications: feed,
		Forms:         forms.NewValidator(feed, log),
		Locator:       geo.NewStaticLocator(cfg.GeoDefaultLatitude, cfg.GeoDefaultLongitude),
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	apiGroup := router.Group("/api/v1", monitor.Middleware())
	handler.RegisterRoutes(apiGroup)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	tracker.Unmount()
	refresher.Stop()
	cancel()
	<-monitor.Done()

	log.Info("Server gracefully stopped")
}
