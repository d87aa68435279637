package yml

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

type contextKey string

func (c contextKey) String() string {
	return "yml-context-key-" + string(c)
}

const configContextKey = contextKey("config")

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat accepts the user facing names of the supported formats.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return OutputFormatJSON, nil
	case "yaml", "yml":
		return OutputFormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", s)
	}
}

type IndentationStyle string

const (
	IndentationStyleSpace IndentationStyle = "space"
	IndentationStyleTab   IndentationStyle = "tab"
)

func (i IndentationStyle) ToIndent() string {
	switch i {
	case IndentationStyleSpace:
		return " "
	case IndentationStyleTab:
		return "\t"
	default:
		return ""
	}
}

// Config controls how wire documents are written back out.
type Config struct {
	Indentation      int              // Indentation width of nested levels
	IndentationStyle IndentationStyle // Indentation character, JSON output only
	OutputFormat     OutputFormat     // Format used when marshalling
	OriginalFormat   OutputFormat     // Format the input was read in, empty when built in memory
	TrailingNewline  bool             // Whether output ends with a newline
}

// Indent renders the configured indentation for a single nesting level.
func (c *Config) Indent() string {
	return strings.Repeat(c.IndentationStyle.ToIndent(), c.Indentation)
}

var defaultConfig = Config{
	Indentation:      2,
	IndentationStyle: IndentationStyleSpace,
	OutputFormat:     OutputFormatJSON,
	TrailingNewline:  true,
}

// GetDefaultConfig returns a copy of the default output configuration.
func GetDefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

func ContextWithConfig(ctx context.Context, config *Config) context.Context {
	if config == nil {
		return ctx
	}

	return context.WithValue(ctx, configContextKey, config)
}

func GetConfigFromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok || cfg == nil {
		return GetDefaultConfig()
	}

	return cfg
}

// GetConfigFromDoc derives an output configuration that reproduces the layout of data.
func GetConfigFromDoc(data []byte) *Config {
	cfg := GetDefaultConfig()

	cfg.OutputFormat, cfg.Indentation, cfg.IndentationStyle = inspectData(data)
	cfg.OriginalFormat = cfg.OutputFormat
	cfg.TrailingNewline = len(data) > 0 && data[len(data)-1] == '\n'

	return cfg
}

func inspectData(data []byte) (OutputFormat, int, IndentationStyle) {
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))

	foundIndentation := false
	foundDocFormat := false

	indentation := defaultConfig.Indentation
	indentationStyle := IndentationStyleSpace
	docFormat := OutputFormatYAML

	baseline := -1

	for i, line := range lines {
		trimLine := bytes.TrimSpace(line)
		if len(trimLine) == 0 || trimLine[0] == '#' {
			continue
		}

		if !foundDocFormat && (trimLine[0] == '{' || trimLine[0] == '[') {
			docFormat = OutputFormatJSON
		}
		foundDocFormat = true

		leading := 0
		for leading < len(line) && (line[leading] == ' ' || line[leading] == '\t') {
			leading++
		}

		if baseline == -1 || leading < baseline {
			baseline = leading
			continue
		}

		if leading > baseline && !foundIndentation {
			ws := line[baseline:leading]
			if ws[0] == '\t' {
				indentationStyle = IndentationStyleTab
			}
			indentation = countLeading(ws, ws[0])
			foundIndentation = true
		}

		if foundIndentation || i > 10 {
			break
		}
	}

	return docFormat, indentation, indentationStyle
}

func countLeading(ws []byte, ch byte) int {
	n := 0
	for n < len(ws) && ws[n] == ch {
		n++
	}
	return n
}
