package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"eon-tracker.com/eon-tracker/internal/clock"
	config "eon-tracker.com/eon-tracker/internal/configs"
	"eon-tracker.com/eon-tracker/internal/mail"
	repository "eon-tracker.com/eon-tracker/internal/repositories"
	"eon-tracker.com/eon-tracker/internal/services"
)

var digestCmd = &cobra.Command{
	Use:   "digest [morning|evening]",
	Short: "Send one digest immediately",
	Long:  "Composes and sends the named digest right now, bypassing the once-per-day guard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		clk := clock.NewSystemClock()
		taskService := services.NewTaskService(repository.NewTaskRepository(database), clk)
		mailer := mail.NewSMTPMailer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass)

		// nil marker: a manual run always sends.
		digestService := services.NewDigestService(
			taskService,
			mailer,
			nil,
			recipientsFromConfig(cfg),
			clk,
		)

		ctx := cmd.Context()
		switch args[0] {
		case "morning":
			return digestService.MorningDigest(ctx)
		case "evening":
			return digestService.EveningDigest(ctx)
		default:
			return fmt.Errorf("unknown digest %q, expected morning or evening", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
}
