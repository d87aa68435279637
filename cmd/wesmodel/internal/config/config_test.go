package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/speakeasy-api/wes/yml"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FormatKey, "", "")
	flags.Int(IndentKey, 0, "")
	flags.Bool(StrictKey, false, "")
	flags.Int(ConcurrencyKey, 4, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfig_Defaults_Success(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("", t.TempDir(), nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Format)
	assert.Zero(t, cfg.Indent)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, language.English, cfg.LanguageTag())
	assert.Empty(t, cfg.ConfigFileUsed())
}

func TestLoadConfig_ProjectConfig_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wesmodel.yaml"), []byte("format: yaml\nstrict: true\nconcurrency: 2\n"), 0o644))

	cfg, err := LoadConfig("", dir, newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, filepath.Join(dir, "wesmodel.yaml"), cfg.ConfigFileUsed())
}

func TestLoadConfig_FlagsOverrideFile_Success(t *testing.T) {
	t.Parallel()

	cfgFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("format: yaml\nindent: 4\n"), 0o644))

	cfg, err := LoadConfig(cfgFile, "", newFlags(t, "--format", "json"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 4, cfg.Indent)
}

func TestLoadConfig_Environment_Success(t *testing.T) {
	t.Setenv("WESMODEL_STRICT", "true")
	t.Setenv("WESMODEL_LANGUAGE", "de")

	cfg, err := LoadConfig("", t.TempDir(), newFlags(t))
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, language.German, cfg.LanguageTag())
}

func TestLoadConfig_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		args []string
	}{
		{name: "unknown format", args: []string{"--format", "xml"}},
		{name: "zero concurrency", args: []string{"--concurrency", "0"}},
		{name: "negative indent", args: []string{"--indent", "-1"}},
		{name: "bad language", file: "language: \"not a tag!\"\n"},
		{name: "missing config file", file: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfgFile := ""
			switch tt.file {
			case "":
			case "-":
				cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
			default:
				cfgFile = filepath.Join(t.TempDir(), "wesmodel.yaml")
				require.NoError(t, os.WriteFile(cfgFile, []byte(tt.file), 0o644))
			}

			_, err := LoadConfig(cfgFile, t.TempDir(), newFlags(t, tt.args...))
			require.Error(t, err)
		})
	}
}

func TestConfig_OutputConfig_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         Config
		data        string
		format      yml.OutputFormat
		indentation int
	}{
		{name: "keeps input layout", data: "{\n    \"run_id\": \"r-1\"\n}\n", format: yml.OutputFormatJSON, indentation: 4},
		{name: "keeps yaml", data: "run_id: r-1\n", format: yml.OutputFormatYAML, indentation: 2},
		{name: "format override", cfg: Config{Format: "yaml"}, data: "{\n    \"run_id\": \"r-1\"\n}\n", format: yml.OutputFormatYAML, indentation: 2},
		{name: "indent override", cfg: Config{Indent: 3}, data: "{\n  \"run_id\": \"r-1\"\n}\n", format: yml.OutputFormatJSON, indentation: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := tt.cfg.OutputConfig([]byte(tt.data))
			assert.Equal(t, tt.format, out.OutputFormat)
			assert.Equal(t, tt.indentation, out.Indentation)
			assert.True(t, out.TrailingNewline)
		})
	}

	out := (&Config{}).OutputConfig(nil)
	assert.Equal(t, yml.OutputFormatJSON, out.OutputFormat)
	assert.Equal(t, 2, out.Indentation)
}
