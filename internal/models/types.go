package models

// Input message

type InputValidationRequest struct {
	Text        string `json:"text,omitempty"`
	ImageBase64 string `json:"imageBase64,omitempty"`
}

type InputValidationResponse struct {
	Valid          bool     `json:"valid"`
	Errors         []string `json:"errors"`
	NormalizedText *string  `json:"normalizedText,omitempty"`
}

// Output message

// SolutionStep is one step of the AI's worked solution. Extra fields the
// agent attaches are ignored; only title and content are validated.
type SolutionStep struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type OutputValidationRequest struct {
	Answer     string         `json:"answer,omitempty"`
	Steps      []SolutionStep `json:"steps,omitempty"`
	Formulas   []string       `json:"formulas,omitempty"`
	Confidence *float64       `json:"confidence,omitempty"`
	RelatedKEC []string       `json:"relatedKEC,omitempty"`
}

// Warnings are advisory and never invalidate the result. Corrections would,
// but no current rule emits one; the field is an extension point.
type OutputValidationResponse struct {
	Valid       bool     `json:"valid"`
	Warnings    []string `json:"warnings"`
	Corrections []string `json:"corrections"`
}
