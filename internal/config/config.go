// Package config loads user-supplied disambiguation rule files. A rule
// file extends the built-in bank: it may declare extra languages and extra
// rules, which register after the built-ins and so take lower precedence.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root of a rule file.
type Config struct {
	Languages []Language `yaml:"languages,omitempty" mapstructure:"languages"`
	Rules     []Rule     `yaml:"rules,omitempty" mapstructure:"rules"`
}

// Language declares a language identity beyond the built-in catalog.
type Language struct {
	Name    string   `yaml:"name" mapstructure:"name"`
	Aliases []string `yaml:"aliases,omitempty" mapstructure:"aliases"`
}

// Rule declares one disambiguation rule: the candidate-language set it
// applies to and its ordered clauses.
type Rule struct {
	Languages []string `yaml:"languages" mapstructure:"languages"`
	Clauses   []Clause `yaml:"clauses" mapstructure:"clauses"`
}

// Clause is one ordered condition: resolve to Language when Pattern
// matches. An empty pattern is an unconditional fallback and is only valid
// as the final clause.
type Clause struct {
	Language string `yaml:"language" mapstructure:"language"`
	Pattern  string `yaml:"pattern,omitempty" mapstructure:"pattern"`
}

// Load reads and validates a rule file.
func Load(path string) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigFile(path)

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(viperInstance)
}

// LoadFromYAML loads a rule file from YAML bytes - helper for tests.
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(viperInstance)
}

func unmarshal(viperInstance *viper.Viper) (*Config, error) {
	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs comprehensive config validation.
func (c *Config) Validate() error {
	if len(c.Rules) == 0 && len(c.Languages) == 0 {
		return errors.New("config must declare at least one rule or language")
	}

	for i, lang := range c.Languages {
		if lang.Name == "" {
			return fmt.Errorf("language %d validation failed: name is required", i+1)
		}
	}

	for i, rule := range c.Rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("rule %d validation failed: %w", i+1, err)
		}
	}

	return nil
}

// Validate performs rule-level validation. Language-name resolution is
// deferred to registration, where the full registry is known.
func (r *Rule) Validate() error {
	if len(r.Languages) == 0 {
		return errors.New("languages field is required and cannot be empty")
	}
	if len(r.Clauses) == 0 {
		return errors.New("clauses field is required and cannot be empty")
	}

	for i, clause := range r.Clauses {
		if clause.Language == "" {
			return fmt.Errorf("clause %d: language is required", i+1)
		}
		if clause.Pattern == "" {
			if i != len(r.Clauses)-1 {
				return fmt.Errorf("clause %d: only the final clause may omit a pattern", i+1)
			}
			continue
		}
		if _, err := regexp.Compile(clause.Pattern); err != nil {
			return fmt.Errorf("clause %d: invalid regex pattern '%s': %w", i+1, clause.Pattern, err)
		}
	}

	return nil
}
