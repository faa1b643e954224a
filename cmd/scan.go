package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/scrublish/scrublish/pkg/logger"
	"github.com/scrublish/scrublish/pkg/redactor"
	"github.com/scrublish/scrublish/pkg/scanlog"
	"github.com/scrublish/scrublish/pkg/utils"
	"github.com/spf13/cobra"
)

var scanNoLog bool

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan text for sensitive data that slipped through",
	Long: `Scan a file or stdin for sensitive data and report anything found.

This is the verification side of scrublish: run it on already-redacted output
as a safety net before sharing. Every built-in pattern plus the entropy
detector is checked regardless of the active configuration. Findings are
recorded in ~/.scrublish/scans.db unless --no-log is given.

Exits with status 1 when anything is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running scan command")

		source := "stdin"
		var data []byte
		var err error
		if len(args) == 1 {
			source = args[0]
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

		hits := redactor.ScanForRemaining(string(data))

		if !scanNoLog {
			db, err := scanlog.Open()
			if err != nil {
				logger.Warn("Failed to open scan log: %v", err)
			} else {
				defer db.Close()
				if _, err := db.RecordScan(source, hits); err != nil {
					logger.Warn("Failed to record scan: %v", err)
				}
			}
		}

		if len(hits) == 0 {
			fmt.Println("✓ Clean - no sensitive data found")
			return nil
		}

		fmt.Printf("✗ Found %d potential leak(s):\n\n", len(hits))
		for _, hit := range hits {
			fmt.Printf("  %s\n", hit)
		}
		fmt.Println()
		logger.Warn("Scan of %s found %d potential leak(s)", source, len(hits))

		// Nonzero exit so scripts can gate on a clean scan.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		os.Exit(1)
		return nil
	},
}

var scanHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent scan results",
	Long:  `List recent scans recorded in ~/.scrublish/scans.db, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running scan history command")

		db, err := scanlog.Open()
		if err != nil {
			return fmt.Errorf("failed to open scan log: %w", err)
		}
		defer db.Close()

		scans, err := db.RecentScans(20)
		if err != nil {
			return fmt.Errorf("failed to read scan history: %w", err)
		}

		if len(scans) == 0 {
			fmt.Println("No scans recorded yet.")
			return nil
		}

		for _, s := range scans {
			status := "✓ clean"
			if s.FindingCount > 0 {
				status = fmt.Sprintf("✗ %d finding(s)", s.FindingCount)
			}
			fmt.Printf("%s  %-14s  %s\n", s.ScannedAt.Format("2006-01-02 15:04:05"), status, utils.TruncateWithEllipsis(s.Source, 60))
			if s.FindingCount > 0 {
				findings, err := db.Findings(s.ID)
				if err != nil {
					continue
				}
				for _, f := range findings {
					fmt.Printf("    [%s] %s\n", f.Category, utils.TruncateEnd(f.Snippet, 64))
				}
			}
		}

		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanNoLog, "no-log", false, "Do not record this scan in the scan log")
	scanCmd.AddCommand(scanHistoryCmd)
	rootCmd.AddCommand(scanCmd)
}
