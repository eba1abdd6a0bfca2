package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg, err := Load("", nil)
		assert.NoError(t, err)
		assert.Equal(t, Config{
			Remittance: Remittance{Quotes: true, FileClass: "standard", FX: "none"},
			Report:     Report{Format: FormatText},
			Log:        Log{Level: "warn"},
		}, *cfg)
	})

	t.Run("DefaultFile", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, dir, DefaultFile, "remittance:\n  fx: standard\nreport:\n  verbose: true\n")

		cfg, err := Load("", nil)
		assert.NoError(t, err)
		assert.Equal(t, DefaultFile, cfg.File)
		assert.Equal(t, "standard", cfg.Remittance.FX)
		assert.True(t, cfg.Report.Verbose)
		assert.True(t, cfg.Remittance.Quotes)
	})

	t.Run("ExplicitFileMustExist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing.yaml")
	})

	t.Run("Precedence", func(t *testing.T) {
		t.Chdir(t.TempDir())
		path := writeFile(t, t.TempDir(), "custom.yaml", "remittance:\n  file_class: dlocal\n  fx: standard\n  quotes: false\n")
		t.Setenv("PAYMENTSFILES_REMITTANCE__FX", "records")
		t.Setenv("PAYMENTSFILES_LOG__LEVEL", "debug")

		cfg, err := Load(path, map[string]any{"log.level": "error"})
		assert.NoError(t, err)
		assert.Equal(t, "dlocal", cfg.Remittance.FileClass)
		assert.Equal(t, "records", cfg.Remittance.FX)
		assert.False(t, cfg.Remittance.Quotes)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := Load("", map[string]any{
			"remittance.fx":         "sometimes",
			"remittance.file_class": "premium",
			"report.format":         "xml",
			"log.level":             "loud",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `remittance.file_class: unknown file class "premium"`)
		assert.Contains(t, err.Error(), `remittance.fx: unknown fx policy "sometimes"`)
		assert.Contains(t, err.Error(), `report.format: unknown format "xml"`)
		assert.Contains(t, err.Error(), `log.level: unknown level "loud"`)
	})

	t.Run("BrokenYAML", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "broken.yaml", "remittance: [\n")
		_, err := Load(path, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})
}

func TestRemittanceOptions(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("", map[string]any{"remittance.fx": "onlyRecords"})
	assert.NoError(t, err)
	assert.Equal(t, 3, len(cfg.RemittanceOptions()))
}

func TestSlogLevel(t *testing.T) {
	level, err := Log{Level: "info"}.SlogLevel()
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}
