package rules

import (
	"embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed config/rules.yaml
var configFiles embed.FS

// CompiledCheck is an AnalysisCheck with its pattern compiled
type CompiledCheck struct {
	Pattern    *regexp.Regexp
	Points     int
	Suggestion string
}

// Registry holds the heuristic rule set for the enhancer and analyzer.
// Loaded once from the embedded YAML at startup; read-only afterwards.
type Registry struct {
	EnhanceSteps []EnhanceStep
	LengthBonus  LengthBonus
	Checks       []CompiledCheck
	Vague        CompiledCheck
	ShortPrompt  ShortPrompt
}

// NewRegistry loads and compiles the embedded rule file
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/rules.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read rules.yaml: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules.yaml: %w", err)
	}

	r := &Registry{
		EnhanceSteps: file.Enhance,
		LengthBonus:  file.Analysis.LengthBonus,
		ShortPrompt:  file.Analysis.ShortPrompt,
	}

	for _, check := range file.Analysis.Checks {
		compiled, err := compileInsensitive(check.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile check %q: %w", check.Pattern, err)
		}
		r.Checks = append(r.Checks, CompiledCheck{
			Pattern:    compiled,
			Points:     check.Points,
			Suggestion: check.Suggestion,
		})
	}

	vague, err := compileInsensitive(file.Analysis.Vague.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compile vague pattern: %w", err)
	}
	r.Vague = CompiledCheck{Pattern: vague, Suggestion: file.Analysis.Vague.Suggestion}

	return r, nil
}

// compileInsensitive compiles a pattern with case-insensitive matching.
// All analyzer keyword checks are case-insensitive.
func compileInsensitive(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}
