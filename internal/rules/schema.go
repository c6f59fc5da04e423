package rules

// Config is the YAML schema for the validation rule tables.
type Config struct {
	RewriteRules    []RewriteRuleConfig `yaml:"rewrite_rules"`
	TopicalKeywords []string            `yaml:"topical_keywords"`
	BlockedPatterns []string            `yaml:"blocked_patterns"`
	BlockedMessage  string              `yaml:"blocked_message"`
	Input           InputConstraints    `yaml:"input"`
	Output          OutputConstraints   `yaml:"output"`
}

// RewriteRuleConfig is one (pattern, replacement) entry of the ordered
// normalization table. Replacement may reference capture groups with $1.
type RewriteRuleConfig struct {
	Pattern         string `yaml:"pattern"`
	Replacement     string `yaml:"replacement"`
	CaseInsensitive bool   `yaml:"case_insensitive"`
}

// InputConstraints bound user-submitted questions.
type InputConstraints struct {
	MinLength         int      `yaml:"min_length"`
	MaxLength         int      `yaml:"max_length"`
	MaxImageBytes     int      `yaml:"max_image_bytes"`
	AllowedImageTypes []string `yaml:"allowed_image_types"`
}

// OutputConstraints describe the expected shape of AI-generated answers.
type OutputConstraints struct {
	RequiredFields  []string `yaml:"required_fields"`
	RecognizedUnits []string `yaml:"recognized_units"`
	MinConfidence   float64  `yaml:"min_confidence"`
}
