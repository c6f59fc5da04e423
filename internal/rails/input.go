package rails

import (
	"fmt"
	"unicode/utf8"

	"github.com/jeonsilai/guardrails-server/internal/models"
	"github.com/jeonsilai/guardrails-server/internal/normalizer"
	"github.com/jeonsilai/guardrails-server/internal/rules"
	"github.com/rs/zerolog"
)

const (
	msgTooShort = "질문이 너무 짧습니다. 좀 더 구체적으로 입력해주세요."
	msgNoInput  = "문제 텍스트 또는 이미지를 입력해주세요."
)

// InputRail validates user-submitted questions before they reach the agent.
// Every applicable check runs and appends to the error list; there is no
// short-circuit, so callers always get the complete set of violations.
type InputRail struct {
	rules      *rules.RuleSet
	normalizer *normalizer.Normalizer
	logger     *zerolog.Logger
}

func NewInputRail(rs *rules.RuleSet, logger *zerolog.Logger) *InputRail {
	return &InputRail{
		rules:      rs,
		normalizer: normalizer.New(rs),
		logger:     logger,
	}
}

// Validate normalizes the text and checks length bounds, blocked content and
// image size. The normalized text is returned even when validation fails, so
// the caller can show the user what was actually evaluated.
func (r *InputRail) Validate(req models.InputValidationRequest) models.InputValidationResponse {
	errors := []string{}
	var normalizedText *string

	if req.Text != "" {
		normalized := r.normalizer.Normalize(req.Text)
		normalizedText = &normalized

		// Length bounds count runes, not bytes: Korean text is measured
		// the way users perceive it.
		length := utf8.RuneCountInString(normalized)
		if length < r.rules.Input.MinLength {
			errors = append(errors, msgTooShort)
		}
		if length > r.rules.Input.MaxLength {
			errors = append(errors, fmt.Sprintf("질문이 너무 깁니다. %d자 이하로 입력해주세요.", r.rules.Input.MaxLength))
		}

		if r.containsBlockedContent(normalized) {
			errors = append(errors, r.rules.BlockedMessage)
		}

		// Relevance is tracked for observability only, never enforced.
		relevant := IsRelevant(normalized, r.rules.TopicalKeywords)
		r.logger.Info().Bool("is_relevant", relevant).Msg("input relevance check")
	}

	if req.ImageBase64 != "" {
		estimated := estimateBase64Size(req.ImageBase64)
		if estimated > r.rules.Input.MaxImageBytes {
			errors = append(errors, fmt.Sprintf("이미지 크기가 %dMB를 초과합니다.", r.rules.Input.MaxImageBytes/(1024*1024)))
		}
	}

	if req.Text == "" && req.ImageBase64 == "" {
		errors = append(errors, msgNoInput)
	}

	return models.InputValidationResponse{
		Valid:          len(errors) == 0,
		Errors:         errors,
		NormalizedText: normalizedText,
	}
}

// containsBlockedContent scans the blocked patterns in order; the first
// match wins. All violations map to the same fixed message so the response
// never echoes which pattern fired.
func (r *InputRail) containsBlockedContent(text string) bool {
	for _, pattern := range r.rules.BlockedPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// estimateBase64Size derives the decoded byte count from the base64 length
// alone. The payload is never decoded here; a malformed string yields a
// best-effort estimate, not an error.
func estimateBase64Size(encoded string) int {
	return len(encoded) * 3 / 4
}
