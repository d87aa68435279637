// Package config loads the wesmodel CLI settings from flags, the environment
// and an optional wesmodel.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/speakeasy-api/wes/yml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	// Format forces the output format. Empty keeps the input's format.
	Format      string `mapstructure:"format"`
	Indent      int    `mapstructure:"indent"`
	Strict      bool   `mapstructure:"strict"`
	Language    string `mapstructure:"language"`
	Concurrency int    `mapstructure:"concurrency"`
	Legacy      bool   `mapstructure:"legacy"`

	v *viper.Viper
}

const (
	EnvPrefix  = "WESMODEL"
	ConfigName = "wesmodel"

	FormatKey      = "format"
	IndentKey      = "indent"
	StrictKey      = "strict"
	LanguageKey    = "language"
	ConcurrencyKey = "concurrency"
	LegacyKey      = "legacy"
)

// LoadConfig resolves the settings of a single invocation. Precedence from
// high to low: changed flags, WESMODEL_* environment variables, the config
// file, defaults. Without cfgFile a wesmodel.yaml in dir is used if present.
func LoadConfig(cfgFile, dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		for _, name := range []string{ConfigName + ".yaml", ConfigName + ".yml", "." + ConfigName + ".yaml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
			break
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.v = v

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(FormatKey, "")
	v.SetDefault(IndentKey, 0)
	v.SetDefault(StrictKey, false)
	v.SetDefault(LanguageKey, "en")
	v.SetDefault(ConcurrencyKey, 4)
	v.SetDefault(LegacyKey, false)
}

func (c *Config) validate() error {
	if c.Format != "" {
		if _, err := yml.ParseOutputFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("invalid language %q: %w", c.Language, err)
	}
	return nil
}

// LanguageTag returns the parsed message language.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// OutputConfig returns the yml.Config used to write a document read as data.
// The input's own layout is kept unless the format or indent is overridden.
func (c *Config) OutputConfig(data []byte) *yml.Config {
	var out *yml.Config
	if data != nil {
		out = yml.GetConfigFromDoc(data)
	} else {
		out = yml.GetDefaultConfig()
	}
	out.TrailingNewline = true

	if c.Format != "" {
		format, _ := yml.ParseOutputFormat(c.Format)
		if format != out.OutputFormat {
			out.OutputFormat = format
			out.Indentation = 2
			out.IndentationStyle = yml.IndentationStyleSpace
		}
	}
	if c.Indent > 0 {
		out.Indentation = c.Indent
		out.IndentationStyle = yml.IndentationStyleSpace
	}
	return out
}

// ConfigFileUsed returns the config file that was used (if any)
func (c *Config) ConfigFileUsed() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}
