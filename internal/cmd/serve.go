package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/portfolio-assistant/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API until SIGINT or SIGTERM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := app.New(ctx, log)
		if err != nil {
			log.Error("Failed to init app", "error", err)
			return err
		}
		defer a.Close()

		a.Start(ctx)
		if err := a.Run(ctx); err != nil {
			log.Error("Server failed", "error", err)
			return err
		}
		log.Info("Server stopped")
		return nil
	},
}
