package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/portfolio-assistant/internal/app"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/intent"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/screen"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <query>",
	Short: "Run one query through the pipeline and print the JSON result",
	Long: `classify prints the intent analysis for the query. Without --analyze-only it
also connects to the configured database and prints the reply the chat endpoint
would return.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		analyzeOnly, _ := cmd.Flags().GetBool("analyze-only")

		v := screen.Validate(query)
		if !v.Valid {
			return fmt.Errorf("invalid input: %s", strings.Join(v.Errors, "; "))
		}

		out := map[string]any{}
		if analyzeOnly {
			out["analysis"] = intent.NewScorer(nil, nil).Score(v.Sanitized)
			return printJSON(cmd, out)
		}

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()
		a, err := app.New(cmd.Context(), log)
		if err != nil {
			return err
		}
		defer a.Close()

		out["analysis"] = a.Services.Assistant.Analyze(v.Sanitized)
		reply, err := a.Services.Assistant.Respond(cmd.Context(), v.Sanitized)
		if err != nil {
			return err
		}
		out["reply"] = reply
		out["source"] = reply.Source
		return printJSON(cmd, out)
	},
}

func init() {
	classifyCmd.Flags().Bool("analyze-only", false, "only run the intent scorer; no database access")
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
