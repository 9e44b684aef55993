package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medtrack/config"
	"medtrack/cron"
	"medtrack/database"
	courseRepoPkg "medtrack/database/repository/course"
	credentialRepoPkg "medtrack/database/repository/credential"
	"medtrack/handlers"
	"medtrack/middleware"
	"medtrack/routes"
	"medtrack/services/auth"
	"medtrack/services/course"
	"medtrack/services/mailer"
	"medtrack/services/notification"
	"medtrack/services/reminder"
	"medtrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	credentialRepo := credentialRepoPkg.NewMongoCredentialRepo()
	courseRepo := courseRepoPkg.NewMongoCourseRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Repo:   credentialRepo,
		Mailer: mailer.NewSMTPMailer(),
		Cache:  utils.GetCacheClient(),
	}
	courseService := &course.DefaultCourseService{
		Repo: courseRepo,
	}

	triggerBackend, err := reminder.NewAsynqTriggerBackend()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder trigger backend: %v", err)
	}
	defer triggerBackend.Shutdown()
	reminderScheduler := reminder.NewDefaultReminderScheduler(triggerBackend)

	notificationService := &notification.DefaultNotificationService{
		Repo: credentialRepo,
	}
	cron.InitReminderWorker(notificationService)

	// handlers.
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	courseHandler := handlers.NewCourseHandler(courseService)
	reminderHandler := handlers.NewReminderHandler(courseService, reminderScheduler)

	handlerBundle := &handlers.HandlerBundle{
		SignupHandler:    authHandler.SignupHandler,
		LoginHandler:     authHandler.LoginHandler,
		VerifyOTPHandler: authHandler.VerifyOTPHandler,

		GetUserByEmailHandler: userHandler.GetUserByEmailHandler,
		UpdateFCMTokenHandler: userHandler.UpdateFCMTokenHandler,

		CreateCourseHandler: courseHandler.CreateCourseHandler,
		ListCoursesHandler:  courseHandler.ListCoursesHandler,

		ScheduleRemindersHandler: reminderHandler.ScheduleRemindersHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
