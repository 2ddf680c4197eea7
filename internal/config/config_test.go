package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// restoring the original on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  file: logs/tool-rental.log
  level: debug
output:
  format: json
  locale: en-GB
tools:
  - code: dril
    type: Drill
    brand: Makita
    daily_charge: 0.99
    weekend_charge: true
    holiday_charge: true
  - code: LADW
    type: Ladder
    brand: Werner
    daily_charge: "2.49"
    weekend_charge: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source())
	assert.Equal(t, "logs/tool-rental.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "en-GB", cfg.Output.GetLocale().String())

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"CHNS", "DRIL", "JAKD", "JAKR", "LADW"}, catalog.Codes())

	drill, ok := catalog.Lookup("DRIL")
	require.True(t, ok)
	assert.Equal(t, "0.99", drill.DailyCharge.StringFixed(2))
	assert.True(t, drill.HolidayCharge)

	ladder, _ := catalog.Lookup("LADW")
	assert.Equal(t, "2.49", ladder.DailyCharge.StringFixed(2))
	assert.False(t, ladder.HolidayCharge)
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Source())
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "en-US", cfg.Output.GetLocale().String())

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Len(t, catalog.Tools(), 4)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "output:\n  format: text\n")
	t.Setenv("TOOL_RENTAL_OUTPUT_FORMAT", "json")
	t.Setenv("TOOL_RENTAL_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOOL_RENTAL_LOG_LEVEL=error\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TOOL_RENTAL_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown format",
			content: "output:\n  format: xml\n",
			wantErr: "output.format must be 'text' or 'json'",
		},
		{
			name:    "bad locale",
			content: "output:\n  locale: \"not a locale!\"\n",
			wantErr: "output.locale",
		},
		{
			name:    "blank tool code",
			content: "tools:\n  - code: \"\"\n    daily_charge: 1\n",
			wantErr: "tools[0].code is required",
		},
		{
			name:    "negative charge",
			content: "tools:\n  - code: DRIL\n    daily_charge: -1\n",
			wantErr: "tools[0].daily_charge must not be negative",
		},
		{
			name:    "unparsable charge",
			content: "tools:\n  - code: DRIL\n    daily_charge: cheap\n",
			wantErr: "is not a number",
		},
		{
			name:    "duplicate code",
			content: "tools:\n  - code: DRIL\n    daily_charge: 1\n  - code: dril\n    daily_charge: 2\n",
			wantErr: "tools[1].code DRIL is duplicated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
