package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/portfolio-assistant/internal/app"
	"github.com/yungbote/portfolio-assistant/internal/data/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg := app.LoadConfig(log)
		svc, err := db.Open(cfg.DB, log)
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := db.AutoMigrateAll(svc.DB()); err != nil {
			return err
		}
		log.Info("Migration complete", "driver", svc.Driver())
		return nil
	},
}
