package redactor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoadOptionsEnabled(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, getConfigPathInDir(dir), `{
		"custom_patterns": ["ACME-\\d+"],
		"redact_usernames": ["agillis"],
		"redact_strings": ["Project Phoenix"],
		"redact_high_entropy": true
	}`)

	opts, err := loadOptionsFromDir(dir)
	if err != nil {
		t.Fatalf("loadOptionsFromDir() failed: %v", err)
	}

	if !opts.Enabled {
		t.Error("Expected enabled options")
	}
	if len(opts.CustomPatterns) != 1 || opts.CustomPatterns[0] != `ACME-\d+` {
		t.Errorf("Unexpected custom patterns: %v", opts.CustomPatterns)
	}
	if len(opts.RedactUsernames) != 1 || opts.RedactUsernames[0] != "agillis" {
		t.Errorf("Unexpected usernames: %v", opts.RedactUsernames)
	}
	if len(opts.RedactStrings) != 1 || opts.RedactStrings[0] != "Project Phoenix" {
		t.Errorf("Unexpected strings: %v", opts.RedactStrings)
	}
	if !opts.RedactHighEntropy {
		t.Error("Expected entropy detection enabled")
	}
}

func TestLoadOptionsDisabledFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, getDisabledConfigPathInDir(dir), `{"redact_strings": ["secret-project"]}`)

	opts, err := loadOptionsFromDir(dir)
	if err != nil {
		t.Fatalf("loadOptionsFromDir() failed: %v", err)
	}

	if opts.Enabled {
		t.Error("Expected disabled options when only the disabled file exists")
	}
	// Settings are still readable so enabling preserves them.
	if len(opts.RedactStrings) != 1 {
		t.Errorf("Expected settings loaded from disabled file, got %v", opts.RedactStrings)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := loadOptionsFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("loadOptionsFromDir() failed: %v", err)
	}
	if opts.Enabled {
		t.Error("Expected disabled defaults when no config exists")
	}
}

func TestLoadOptionsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, getConfigPathInDir(dir), "{not json")

	if _, err := loadOptionsFromDir(dir); err == nil {
		t.Error("Expected an error for invalid JSON")
	}
}

func TestEnableDisableRename(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, getDisabledConfigPathInDir(dir), "{}")

	if isEnabledInDir(dir) {
		t.Error("Expected disabled before enable")
	}

	if err := enableInDir(dir); err != nil {
		t.Fatalf("enableInDir() failed: %v", err)
	}
	if !isEnabledInDir(dir) {
		t.Error("Expected enabled after enable")
	}
	if _, err := os.Stat(getDisabledConfigPathInDir(dir)); !os.IsNotExist(err) {
		t.Error("Expected disabled file gone after enable")
	}

	if err := disableInDir(dir); err != nil {
		t.Fatalf("disableInDir() failed: %v", err)
	}
	if isEnabledInDir(dir) {
		t.Error("Expected disabled after disable")
	}
	if _, err := os.Stat(getConfigPathInDir(dir)); !os.IsNotExist(err) {
		t.Error("Expected enabled file gone after disable")
	}
}

func TestEnableWithoutConfig(t *testing.T) {
	if err := enableInDir(t.TempDir()); err == nil {
		t.Error("Expected an error enabling with no config file")
	}
}

func TestDisableWithoutConfig(t *testing.T) {
	if err := disableInDir(t.TempDir()); err == nil {
		t.Error("Expected an error disabling with no config file")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := getConfigPathInDir(dir)

	err := saveConfigToPath(path, configFile{
		CustomPatterns: []string{`internal-[a-z]+`},
		RedactStrings:  []string{"codename"},
	})
	if err != nil {
		t.Fatalf("saveConfigToPath() failed: %v", err)
	}

	opts, err := loadOptionsFromDir(dir)
	if err != nil {
		t.Fatalf("loadOptionsFromDir() failed: %v", err)
	}
	if !opts.Enabled {
		t.Error("Expected saving to the enabled path to yield enabled options")
	}
	if len(opts.CustomPatterns) != 1 || len(opts.RedactStrings) != 1 {
		t.Errorf("Expected settings to round-trip, got %+v", opts)
	}
}

func TestConfigPaths(t *testing.T) {
	if base := filepath.Base(getConfigPathInDir("x")); base != "redaction.json" {
		t.Errorf("Unexpected config file name: %s", base)
	}
	if base := filepath.Base(getDisabledConfigPathInDir("x")); base != "redaction.json.disabled" {
		t.Errorf("Unexpected disabled file name: %s", base)
	}
	if !strings.HasSuffix(GetConfigPath(), filepath.Join(".scrublish", "redaction.json")) {
		t.Errorf("Unexpected config path: %s", GetConfigPath())
	}
}
