package rules

// EnhanceStep is one ordered rewrite of the enhancement pipeline. Each step
// tests the accumulating text for a substring and, when absent, prepends
// and/or appends its text.
type EnhanceStep struct {
	Contains      string `yaml:"contains"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Prepend       string `yaml:"prepend"`
	Append        string `yaml:"append"`
}

// AnalysisCheck is one scored keyword check of the analyzer. Patterns are
// compiled case-insensitively at load. A prompt matching the pattern earns
// the points; one that does not earns the suggestion instead.
type AnalysisCheck struct {
	Pattern    string `yaml:"pattern"`
	Points     int    `yaml:"points"`
	Suggestion string `yaml:"suggestion"`
}

// LengthBonus rewards longer prompts: one point per PerChars characters of
// trimmed length, capped at MaxPoints.
type LengthBonus struct {
	PerChars  int `yaml:"per_chars"`
	MaxPoints int `yaml:"max_points"`
}

// WordHint attaches a suggestion to a pattern without affecting the score
// (used for the vague-word check).
type WordHint struct {
	Pattern    string `yaml:"pattern"`
	Suggestion string `yaml:"suggestion"`
}

// ShortPrompt flags prompts whose trimmed length is below MaxLength.
type ShortPrompt struct {
	MaxLength  int    `yaml:"max_length"`
	Suggestion string `yaml:"suggestion"`
}

// ruleFile mirrors the embedded rules.yaml layout
type ruleFile struct {
	Enhance  []EnhanceStep `yaml:"enhance"`
	Analysis struct {
		LengthBonus LengthBonus     `yaml:"length_bonus"`
		Checks      []AnalysisCheck `yaml:"checks"`
		Vague       WordHint        `yaml:"vague"`
		ShortPrompt ShortPrompt     `yaml:"short_prompt"`
	} `yaml:"analysis"`
}
