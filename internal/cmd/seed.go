package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/portfolio-assistant/internal/app"
	"github.com/yungbote/portfolio-assistant/internal/data/db"
	"github.com/yungbote/portfolio-assistant/internal/data/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file.yaml]",
	Short: "Upsert the intent corpus, follow-up bank and portfolio data",
	Long: `seed migrates the database and upserts the embedded seed, or the given YAML
file when one is passed. Running it twice leaves the store unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		f, err := loadSeed(args)
		if err != nil {
			return err
		}

		cfg := app.LoadConfig(log)
		svc, err := db.Open(cfg.DB, log)
		if err != nil {
			return err
		}
		defer svc.Close()
		if err := db.AutoMigrateAll(svc.DB()); err != nil {
			return err
		}

		stats, err := seed.Apply(cmd.Context(), svc.DB(), log, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d intents, %d responses, %d follow-ups, %d portfolio rows\n",
			stats.Intents, stats.Responses, stats.FollowUps, stats.Portfolio)
		return nil
	},
}

func loadSeed(args []string) (*seed.File, error) {
	if len(args) == 0 {
		return seed.Load()
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return seed.Parse(data)
}
