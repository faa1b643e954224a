package redactor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configFileName         = "redaction.json"
	disabledConfigFileName = "redaction.json.disabled"
)

// configFile is the on-disk shape of the redaction settings. The enabled
// state lives in the filename (redaction.json vs redaction.json.disabled),
// not in the file body, so users can toggle it without editing JSON.
type configFile struct {
	CustomPatterns    []string `json:"custom_patterns,omitempty"`
	RedactUsernames   []string `json:"redact_usernames,omitempty"`
	RedactStrings     []string `json:"redact_strings,omitempty"`
	RedactHighEntropy bool     `json:"redact_high_entropy,omitempty"`
}

// GetConfigPath returns the path to the enabled config file
func GetConfigPath() string {
	return getConfigPathInDir(getScrublishDir())
}

// GetDisabledConfigPath returns the path to the disabled config file
func GetDisabledConfigPath() string {
	return getDisabledConfigPathInDir(getScrublishDir())
}

// LoadOptions builds the redaction options for this invocation: the persisted
// settings plus the enabled state derived from which config file exists.
// A missing config file yields disabled defaults.
func LoadOptions() (Options, error) {
	return loadOptionsFromDir(getScrublishDir())
}

// SaveConfig persists the given options' settings to the standard location.
// The settings land in whichever config file is active so saving never flips
// the enabled state.
func SaveConfig(opts Options) error {
	path := GetConfigPath()
	if !IsEnabled() {
		path = GetDisabledConfigPath()
	}
	return saveConfigToPath(path, configFile{
		CustomPatterns:    opts.CustomPatterns,
		RedactUsernames:   opts.RedactUsernames,
		RedactStrings:     opts.RedactStrings,
		RedactHighEntropy: opts.RedactHighEntropy,
	})
}

// IsEnabled returns true if redaction is currently enabled
func IsEnabled() bool {
	return isEnabledInDir(getScrublishDir())
}

// Enable enables redaction by renaming the config file
func Enable() error {
	return enableInDir(getScrublishDir())
}

// Disable disables redaction by renaming the config file
func Disable() error {
	return disableInDir(getScrublishDir())
}

// InitializeDefaultConfig creates a new config file with empty user settings.
// The file is created as disabled by default.
func InitializeDefaultConfig() error {
	return saveConfigToPath(GetDisabledConfigPath(), configFile{})
}

// --- Internal functions for testability ---

func getScrublishDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scrublish")
}

func getConfigPathInDir(dir string) string {
	return filepath.Join(dir, configFileName)
}

func getDisabledConfigPathInDir(dir string) string {
	return filepath.Join(dir, disabledConfigFileName)
}

func loadOptionsFromDir(dir string) (Options, error) {
	enabled := isEnabledInDir(dir)

	path := getConfigPathInDir(dir)
	if !enabled {
		path = getDisabledConfigPathInDir(dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Options{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return Options{
		Enabled:           enabled,
		CustomPatterns:    cfg.CustomPatterns,
		RedactUsernames:   cfg.RedactUsernames,
		RedactStrings:     cfg.RedactStrings,
		RedactHighEntropy: cfg.RedactHighEntropy,
	}, nil
}

func saveConfigToPath(path string, cfg configFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isEnabledInDir(dir string) bool {
	_, err := os.Stat(getConfigPathInDir(dir))
	return err == nil
}

func enableInDir(dir string) error {
	disabledPath := getDisabledConfigPathInDir(dir)
	enabledPath := getConfigPathInDir(dir)

	if _, err := os.Stat(disabledPath); os.IsNotExist(err) {
		return fmt.Errorf("no disabled config file found at %s", disabledPath)
	}

	if err := os.Rename(disabledPath, enabledPath); err != nil {
		return fmt.Errorf("failed to enable redaction: %w", err)
	}

	return nil
}

func disableInDir(dir string) error {
	enabledPath := getConfigPathInDir(dir)
	disabledPath := getDisabledConfigPathInDir(dir)

	if _, err := os.Stat(enabledPath); os.IsNotExist(err) {
		return fmt.Errorf("no enabled config file found at %s", enabledPath)
	}

	if err := os.Rename(enabledPath, disabledPath); err != nil {
		return fmt.Errorf("failed to disable redaction: %w", err)
	}

	return nil
}
