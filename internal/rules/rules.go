package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the rule tables live unless RULES_CONFIG_PATH
// points elsewhere.
const DefaultPath = "configs/rules.yaml"

// RewriteRule is one compiled entry of the ordered normalization table.
type RewriteRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// RuleSet holds every compiled rule table the validators and the normalizer
// consume. It is constructed once at startup and never mutated afterwards,
// so a single instance is shared across requests without locking.
type RuleSet struct {
	RewriteRules    []RewriteRule
	TopicalKeywords []string
	BlockedPatterns []*regexp.Regexp
	BlockedMessage  string
	Input           InputConstraints
	Output          OutputConstraints
}

// Load reads and compiles the rule tables from a YAML file. A malformed
// pattern is a startup defect: the error propagates to main, which refuses
// to start rather than fail per request.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rules config: %w", err)
	}

	return cfg.Compile()
}

// Compile validates the configuration and compiles every pattern.
func (c Config) Compile() (*RuleSet, error) {
	applyDefaults(&c)

	if err := c.validate(); err != nil {
		return nil, err
	}

	rs := &RuleSet{
		TopicalKeywords: c.TopicalKeywords,
		BlockedMessage:  c.BlockedMessage,
		Input:           c.Input,
		Output:          c.Output,
	}

	for _, rule := range c.RewriteRules {
		expr := rule.Pattern
		if rule.CaseInsensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid rewrite pattern %q: %w", rule.Pattern, err)
		}
		rs.RewriteRules = append(rs.RewriteRules, RewriteRule{
			Pattern:     re,
			Replacement: rule.Replacement,
		})
	}

	// Blocked patterns always match case-insensitively.
	for _, pattern := range c.BlockedPatterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid blocked pattern %q: %w", pattern, err)
		}
		rs.BlockedPatterns = append(rs.BlockedPatterns, re)
	}

	return rs, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Input.MinLength == 0 {
		cfg.Input.MinLength = 3
	}
	if cfg.Input.MaxLength == 0 {
		cfg.Input.MaxLength = 2000
	}
	if cfg.Input.MaxImageBytes == 0 {
		cfg.Input.MaxImageBytes = 10 * 1024 * 1024
	}
	if cfg.Output.MinConfidence == 0 {
		cfg.Output.MinConfidence = 0.7
	}
	if len(cfg.Output.RequiredFields) == 0 {
		cfg.Output.RequiredFields = []string{"answer", "steps", "formulas"}
	}
	if cfg.BlockedMessage == "" {
		cfg.BlockedMessage = "부적절한 내용이 포함되어 있습니다."
	}
}

func (c Config) validate() error {
	if c.Input.MaxLength < c.Input.MinLength {
		return fmt.Errorf("max_length %d is smaller than min_length %d", c.Input.MaxLength, c.Input.MinLength)
	}
	if c.Output.MinConfidence < 0 || c.Output.MinConfidence > 1 {
		return fmt.Errorf("min_confidence %v is outside [0, 1]", c.Output.MinConfidence)
	}
	return nil
}
