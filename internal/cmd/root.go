package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

var logMode string

var rootCmd = &cobra.Command{
	Use:   "portfolio-assistant",
	Short: "portfolio-assistant - visitor Q&A service for the portfolio site",
	Long: `portfolio-assistant answers visitor questions about the portfolio owner.

Commands:
  - serve     run the HTTP API (default)
  - migrate   create or update every table
  - seed      upsert the intent corpus, follow-up bank and portfolio data
  - classify  run one query through the pipeline and print the result`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", os.Getenv("LOG_MODE"), "log mode (development|production|test)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(classifyCmd)
}

func newLogger() (*logger.Logger, error) {
	mode := logMode
	if mode == "" {
		mode = "development"
	}
	log, err := logger.New(mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}
