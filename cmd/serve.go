package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"eon-tracker.com/eon-tracker/internal/clock"
	config "eon-tracker.com/eon-tracker/internal/configs"
	"eon-tracker.com/eon-tracker/internal/digest"
	httpapi "eon-tracker.com/eon-tracker/internal/http"
	"eon-tracker.com/eon-tracker/internal/mail"
	repository "eon-tracker.com/eon-tracker/internal/repositories"
	"eon-tracker.com/eon-tracker/internal/scheduler"
	"eon-tracker.com/eon-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker HTTP API and the daily digest scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		dropRepo := repository.NewDropRepository(database)

		clk := clock.NewSystemClock()
		taskService := services.NewTaskService(taskRepo, clk)
		dropService := services.NewDropService(dropRepo, clk)

		var marker digest.Marker
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			marker = digest.NewRedisMarker(redisClient, cfg.RedisDigestPrefix)
		}

		mailer := mail.NewSMTPMailer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass)
		digestService := services.NewDigestService(
			taskService,
			mailer,
			marker,
			recipientsFromConfig(cfg),
			clk,
		)

		sched := scheduler.New(clk)
		sched.AddJob(scheduler.Job{Name: "morning", Hour: cfg.MorningHour, Run: digestService.MorningDigest})
		sched.AddJob(scheduler.Job{Name: "evening", Hour: cfg.EveningHour, Run: digestService.EveningDigest})
		sched.Start()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(taskService, dropService, cfg.DatabaseDSN)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		sched.Shutdown()

		log.Println("HTTP server and digest scheduler shut down gracefully")
		return nil
	},
}

func recipientsFromConfig(cfg config.Config) []string {
	if cfg.NotifyTo == "" {
		return nil
	}
	return []string{cfg.NotifyTo}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
