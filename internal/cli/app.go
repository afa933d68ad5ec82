// Package cli assembles the engine, language catalog, and optional user
// rule file into the operations the commands expose.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/lexiconlabs/tiebreak/internal/config"
	"github.com/lexiconlabs/tiebreak/internal/heuristics"
	"github.com/lexiconlabs/tiebreak/internal/language"
	"github.com/lexiconlabs/tiebreak/internal/logging"
)

// ErrUnknownCandidate reports a candidate name the language registry does
// not know.
var ErrUnknownCandidate = errors.New("unknown candidate language")

// App wires the frozen rule registry and language registry behind the
// commands. Construct with NewApp; the registries are built once and then
// only read.
type App struct {
	fs         afero.Fs
	languages  *language.Registry
	rules      *heuristics.Registry
	configPath string
}

// NewApp builds an App. configPath may be empty or point to a missing
// file, in which case only the built-in rule bank is registered. fs backs
// all content reads, so tests can run entirely in memory.
func NewApp(fs afero.Fs, configPath string) (*App, error) {
	languages, rules, err := buildRegistries(fs, configPath)
	if err != nil {
		return nil, err
	}
	return &App{fs: fs, languages: languages, rules: rules, configPath: configPath}, nil
}

func buildRegistries(fs afero.Fs, configPath string) (*language.Registry, *heuristics.Registry, error) {
	cfg, err := loadOptionalConfig(fs, configPath)
	if err != nil {
		return nil, nil, err
	}

	catalog := language.Catalog()
	if cfg != nil {
		for _, lang := range cfg.Languages {
			catalog = append(catalog, language.Language{Name: lang.Name, Aliases: lang.Aliases})
		}
	}
	languages, err := language.NewRegistry(catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build language registry: %w", err)
	}

	builder := heuristics.NewBuilder(languages)
	if err := heuristics.RegisterDefaults(builder); err != nil {
		return nil, nil, fmt.Errorf("failed to register built-in rules: %w", err)
	}
	if cfg != nil {
		if err := registerConfigRules(builder, cfg); err != nil {
			return nil, nil, err
		}
	}

	return languages, builder.Build(), nil
}

func loadOptionalConfig(fs afero.Fs, configPath string) (*config.Config, error) {
	if configPath == "" {
		return nil, nil
	}
	if _, err := fs.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := config.LoadFromYAML(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func registerConfigRules(builder *heuristics.Builder, cfg *config.Config) error {
	for i, rule := range cfg.Rules {
		clauses := make([]heuristics.Clause, 0, len(rule.Clauses))
		for _, clause := range rule.Clauses {
			clauses = append(clauses, heuristics.Clause{Language: clause.Language, Pattern: clause.Pattern})
		}
		if err := builder.Rule(rule.Languages, clauses...); err != nil {
			return fmt.Errorf("config rule %d: %w", i+1, err)
		}
	}
	return nil
}

// Candidates resolves a comma-separated candidate list against the
// language registry.
func (a *App) Candidates(spec string) ([]language.Language, error) {
	var candidates []language.Language
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		lang, ok := a.languages.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCandidate, name)
		}
		candidates = append(candidates, lang)
	}
	return candidates, nil
}

// ResolveContent runs the dispatcher over in-memory content. The returned
// name is empty when disambiguation failed, which is not an error.
func (a *App) ResolveContent(ctx context.Context, content []byte, candidates []language.Language) string {
	result := a.rules.Resolve(ctx, content, candidates)
	if !result.Has() {
		return ""
	}
	return result.Value().Name
}

// ResolveFile reads path through the app's filesystem and resolves it.
func (a *App) ResolveFile(ctx context.Context, path, candidateSpec string) (string, error) {
	candidates, err := a.Candidates(candidateSpec)
	if err != nil {
		return "", err
	}

	content, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := a.ResolveContent(ctx, content, candidates)
	logging.Get(ctx).Info().
		Str("path", path).
		Str("language", name).
		Msg("resolved file")
	return name, nil
}

// Languages returns the canonical names the app can resolve to.
func (a *App) Languages() []string {
	return a.languages.Names()
}

// Rules returns the registered rules in precedence order.
func (a *App) Rules() []*heuristics.Rule {
	return a.rules.Rules()
}

// ValidateConfig checks the app's rule file and returns a human-readable
// verdict. A missing file is a valid state: only built-ins apply then.
func (a *App) ValidateConfig() (string, error) {
	if a.configPath == "" {
		return "No rule file configured - using built-in rules only\n", nil
	}
	if _, err := a.fs.Stat(a.configPath); os.IsNotExist(err) {
		return fmt.Sprintf("%s does not exist - using built-in rules only\n", a.configPath), nil
	}

	// NewApp already registered the file's rules; reaching here means both
	// validation and registration succeeded.
	return fmt.Sprintf("%s is valid\n", a.configPath), nil
}
