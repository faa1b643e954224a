package cmd

import (
	"fmt"
	"os"

	"github.com/scrublish/scrublish/pkg/logger"
	"github.com/scrublish/scrublish/pkg/redactor"
	"github.com/spf13/cobra"
)

var redactionCmd = &cobra.Command{
	Use:   "redaction",
	Short: "Manage sensitive data redaction",
	Long: `Manage redaction of sensitive data (API keys, passwords, secrets) in transcripts.

Redaction is configured via ~/.scrublish/redaction.json and can be enabled/disabled
by renaming the file (redaction.json = enabled, redaction.json.disabled = disabled).

Users can edit the redaction.json file directly to add custom patterns, literal
strings to strip, or to turn on username hashing and entropy-based detection.`,
}

var redactionEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable redaction",
	Long:  `Enable redaction by activating the redaction configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running redaction enable command")

		// Check if disabled config exists
		if _, err := os.Stat(redactor.GetDisabledConfigPath()); os.IsNotExist(err) {
			// No disabled config - need to initialize
			fmt.Println("No redaction config found. Initializing defaults...")
			if err := redactor.InitializeDefaultConfig(); err != nil {
				logger.Error("Failed to initialize redaction config: %v", err)
				return fmt.Errorf("failed to initialize redaction config: %w", err)
			}
			fmt.Println("✓ Created default redaction config at:", redactor.GetDisabledConfigPath())
			fmt.Println()
		}

		// Enable redaction
		if err := redactor.Enable(); err != nil {
			logger.Error("Failed to enable redaction: %v", err)
			return fmt.Errorf("failed to enable redaction: %w", err)
		}

		fmt.Println("✓ Redaction enabled")
		fmt.Println()
		fmt.Println("Sensitive data will now be redacted from transcripts.")
		fmt.Println("Config file:", redactor.GetConfigPath())
		fmt.Println()
		fmt.Println("To customize patterns, edit the config file directly:")
		fmt.Printf("  vim %s\n", redactor.GetConfigPath())
		fmt.Println()

		return nil
	},
}

var redactionDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable redaction",
	Long:  `Disable redaction by deactivating the redaction configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running redaction disable command")

		if err := redactor.Disable(); err != nil {
			logger.Error("Failed to disable redaction: %v", err)
			return fmt.Errorf("failed to disable redaction: %w", err)
		}

		fmt.Println("✓ Redaction disabled")
		fmt.Println()
		fmt.Println("Transcripts will pass through without redaction.")
		fmt.Println("To re-enable, run: scrublish redaction enable")
		fmt.Println()

		return nil
	},
}

var redactionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show redaction status",
	Long:  `Display current redaction configuration and status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running redaction status command")

		fmt.Println("=== Redaction Status ===")
		fmt.Println()

		enabled := redactor.IsEnabled()
		if enabled {
			fmt.Println("Status: ✓ Enabled")
			fmt.Println("Config: ", redactor.GetConfigPath())
			fmt.Println()

			// Load and display config
			opts, err := redactor.LoadOptions()
			if err != nil {
				logger.Error("Failed to load redaction config: %v", err)
				fmt.Println("Error: Failed to load configuration")
				fmt.Printf("  %v\n", err)
				return nil
			}

			fmt.Printf("Built-in patterns:  %d\n", len(redactor.DefaultPatterns()))
			fmt.Printf("Custom patterns:    %d\n", len(opts.CustomPatterns))
			fmt.Printf("Literal strings:    %d\n", len(opts.RedactStrings))
			fmt.Printf("Extra usernames:    %d\n", len(opts.RedactUsernames))
			fmt.Printf("Entropy detection:  %s\n", onOff(opts.RedactHighEntropy))
			fmt.Println()

			fmt.Println("To customize patterns:")
			fmt.Printf("  vim %s\n", redactor.GetConfigPath())
			fmt.Println()
			fmt.Println("To disable redaction:")
			fmt.Println("  scrublish redaction disable")

		} else {
			fmt.Println("Status: ✗ Disabled")
			fmt.Println()

			// Check if disabled config exists
			if _, err := os.Stat(redactor.GetDisabledConfigPath()); err == nil {
				fmt.Println("Config: ", redactor.GetDisabledConfigPath())
				fmt.Println()
				fmt.Println("To enable redaction:")
				fmt.Println("  scrublish redaction enable")
			} else {
				fmt.Println("No redaction config found.")
				fmt.Println()
				fmt.Println("To initialize and enable redaction:")
				fmt.Println("  scrublish redaction enable")
			}
		}

		fmt.Println()

		return nil
	},
}

var redactionAddStringCmd = &cobra.Command{
	Use:   "add-string <literal>",
	Short: "Add a literal string to always redact",
	Long:  `Add an exact string (a codename, hostname, account name) to the redact_strings list.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running redaction add-string command")

		opts, err := redactor.LoadOptions()
		if err != nil {
			return fmt.Errorf("failed to load redaction config: %w", err)
		}

		literal := args[0]
		for _, existing := range opts.RedactStrings {
			if existing == literal {
				fmt.Printf("%q is already in the redact list\n", literal)
				return nil
			}
		}

		opts.RedactStrings = append(opts.RedactStrings, literal)
		if err := redactor.SaveConfig(opts); err != nil {
			logger.Error("Failed to save redaction config: %v", err)
			return fmt.Errorf("failed to save redaction config: %w", err)
		}

		fmt.Printf("✓ Added %q (%d literal string(s) configured)\n", literal, len(opts.RedactStrings))
		return nil
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(redactionCmd)
	redactionCmd.AddCommand(redactionEnableCmd)
	redactionCmd.AddCommand(redactionDisableCmd)
	redactionCmd.AddCommand(redactionStatusCmd)
	redactionCmd.AddCommand(redactionAddStringCmd)
}
