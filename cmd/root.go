package cmd

import (
	"fmt"
	"os"

	"github.com/scrublish/scrublish/pkg/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scrublish",
	Short: "Sanitize and republish AI-agent session transcripts",
	Long: `Scrublish strips secrets and personally-identifiable data from AI-agent
chat transcripts before they are shared. It redacts API keys, credentials,
emails, addresses and usernames, then re-scans the sanitized output as a
final safety net before anything leaves the machine.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Get().SetLevelFromEnv()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
