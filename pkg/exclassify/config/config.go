// Package config loads classification runs from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/exclassify-go/pkg/exclassify"
	"github.com/ukaji3/exclassify-go/pkg/exclassify/classifier"
	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "config.yaml"

// ErrConfigNotFound indicates the config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig indicates the config file is malformed or incomplete.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes one classification run.
type Config struct {
	InputPath      string        `yaml:"input_path"`
	SheetNames     StringList    `yaml:"sheet_names"`
	ColumnsToCheck models.Policy `yaml:"columns_to_check_map"`
	OutputPath     string        `yaml:"output_path"`
	NewColumnName  string        `yaml:"new_column_name"`

	DefaultLabel       string `yaml:"default_label"`
	NullText           string `yaml:"null_text"`
	KeepUnlistedSheets bool   `yaml:"keep_unlisted_sheets"`
	Validation         *bool  `yaml:"validation"`
}

// StringList decodes from either a YAML sequence or a comma-separated string.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = splitList(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a list or comma-separated string", node.Line)
	}
}

// DefaultConfig returns a config holding default settings.
func DefaultConfig() *Config {
	return &Config{
		NewColumnName: exclassify.DefaultColumnName,
		DefaultLabel:  classifier.DefaultLabel,
		NullText:      classifier.DefaultNullText,
	}
}

// Load reads .env (if present), then the YAML file at path, then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML config data on top of DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("EXCLASSIFY_INPUT_PATH")); v != "" {
		c.InputPath = v
	}
	if v := strings.TrimSpace(os.Getenv("EXCLASSIFY_OUTPUT_PATH")); v != "" {
		c.OutputPath = v
	}
	if v := strings.TrimSpace(os.Getenv("EXCLASSIFY_COLUMN")); v != "" {
		c.NewColumnName = v
	}
}

// Validate checks that the config describes a runnable job.
func (c *Config) Validate() error {
	var problems []string
	if c.InputPath == "" {
		problems = append(problems, "input_path is required")
	}
	if c.OutputPath == "" {
		problems = append(problems, "output_path is required")
	}
	if len(c.SheetNames) == 0 {
		problems = append(problems, "sheet_names is required")
	}
	if len(c.ColumnsToCheck) == 0 {
		problems = append(problems, "columns_to_check_map is required")
	}
	for _, rule := range c.ColumnsToCheck {
		for _, kw := range rule.Keywords {
			if kw.Keyword == "" {
				problems = append(problems, fmt.Sprintf("column %q has an empty keyword", rule.Column))
			}
			if kw.Label == "" {
				problems = append(problems, fmt.Sprintf("column %q keyword %q has an empty label", rule.Column, kw.Keyword))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Options converts the config into run options.
func (c *Config) Options(logger *zap.Logger) exclassify.Options {
	return exclassify.Options{
		Sheets:       c.SheetNames,
		Policy:       c.ColumnsToCheck,
		ColumnName:   c.NewColumnName,
		DefaultLabel: c.DefaultLabel,
		NullText:     c.NullText,
		KeepUnlisted: c.KeepUnlistedSheets,
		Validation:   c.Validation,
		Logger:       logger,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
