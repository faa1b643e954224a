package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scrublish/scrublish/pkg/identity"
	"github.com/scrublish/scrublish/pkg/logger"
	"github.com/scrublish/scrublish/pkg/redactor"
	"github.com/scrublish/scrublish/pkg/types"
	"github.com/spf13/cobra"
)

var redactSession bool

var redactCmd = &cobra.Command{
	Use:   "redact [file]",
	Short: "Redact sensitive data from text or a transcript",
	Long: `Redact sensitive data from a file or stdin and write the result to stdout.

Uses the active redaction configuration (~/.scrublish/redaction.json). If
redaction is disabled, input passes through unchanged. A summary of what was
redacted is written to stderr so stdout stays clean for piping.

With --session the input is parsed as a JSON conversation transcript and
every textual field (turn content, thinking, tool-call summaries and results)
is redacted individually.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running redact command")

		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
		} else {
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
		}

		opts, err := redactor.LoadOptions()
		if err != nil {
			logger.Error("Failed to load redaction config: %v", err)
			return fmt.Errorf("failed to load redaction config: %w", err)
		}

		if opts.Enabled {
			// Fold the git/forge identity for the working directory into the
			// username candidates alongside whatever the config lists.
			cwd, err := os.Getwd()
			if err == nil {
				id := identity.Detect(cwd)
				opts.RedactUsernames = id.Candidates(opts.RedactUsernames...)
			}
		}

		if redactSession {
			return runSessionRedact(data, opts)
		}

		result := redactor.Redact(string(data), opts)
		fmt.Print(result.Text)
		reportRedaction(opts.Enabled, result.RedactedCount, result.Types)

		return nil
	},
}

func runSessionRedact(data []byte, opts redactor.Options) error {
	var conv types.Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return fmt.Errorf("failed to parse transcript: %w", err)
	}

	redacted, count, categories := redactor.RedactSession(&conv, opts)

	out, err := json.MarshalIndent(redacted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	fmt.Println(string(out))
	reportRedaction(opts.Enabled, count, categories)

	return nil
}

func reportRedaction(enabled bool, count int, categories []string) {
	if !enabled {
		fmt.Fprintln(os.Stderr, "redaction disabled; input passed through unchanged")
		return
	}
	if count == 0 {
		fmt.Fprintln(os.Stderr, "nothing redacted")
		return
	}
	fmt.Fprintf(os.Stderr, "redacted %d item(s): %s\n", count, strings.Join(categories, ", "))
	logger.Info("Redacted %d item(s) of types: %v", count, categories)
}

func init() {
	redactCmd.Flags().BoolVar(&redactSession, "session", false, "Treat input as a JSON conversation transcript")
	rootCmd.AddCommand(redactCmd)
}
