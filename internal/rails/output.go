package rails

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jeonsilai/guardrails-server/internal/models"
	"github.com/jeonsilai/guardrails-server/internal/rules"
	"github.com/rs/zerolog"
)

var digitPattern = regexp.MustCompile(`\d`)

// OutputRail checks AI-generated answers before they reach the user. All of
// its findings are advisory warnings; validity is derived from corrections,
// which no current rule populates, so a warned answer still flows through.
type OutputRail struct {
	rules  *rules.RuleSet
	logger *zerolog.Logger
}

func NewOutputRail(rs *rules.RuleSet, logger *zerolog.Logger) *OutputRail {
	return &OutputRail{
		rules:  rs,
		logger: logger,
	}
}

func (r *OutputRail) Validate(req models.OutputValidationRequest) models.OutputValidationResponse {
	warnings := []string{}
	corrections := []string{}

	for _, field := range r.rules.Output.RequiredFields {
		if !hasField(req, field) {
			warnings = append(warnings, fmt.Sprintf("%s 필드가 누락되었습니다.", field))
		}
	}

	// A numeric answer without any recognized unit is suspicious.
	if req.Answer != "" {
		if digitPattern.MatchString(req.Answer) && !r.containsUnit(req.Answer) {
			warnings = append(warnings, "답에 단위가 누락된 것 같습니다.")
		}
	}

	for i, step := range req.Steps {
		if step.Title == "" || step.Content == "" {
			warnings = append(warnings, fmt.Sprintf("풀이 단계 %d의 제목 또는 내용이 누락되었습니다.", i+1))
		}
	}

	if req.Confidence != nil && *req.Confidence < r.rules.Output.MinConfidence {
		warnings = append(warnings, fmt.Sprintf("신뢰도가 %.0f%% 미만입니다.", r.rules.Output.MinConfidence*100))
	}

	// KEC references are trusted as-is and only logged.
	if len(req.RelatedKEC) > 0 {
		r.logger.Info().Strs("codes", req.RelatedKEC).Msg("kec references")
	}

	return models.OutputValidationResponse{
		Valid:       len(corrections) == 0,
		Warnings:    warnings,
		Corrections: corrections,
	}
}

func (r *OutputRail) containsUnit(answer string) bool {
	for _, unit := range r.rules.Output.RecognizedUnits {
		if strings.Contains(answer, unit) {
			return true
		}
	}
	return false
}

func hasField(req models.OutputValidationRequest, name string) bool {
	switch name {
	case "answer":
		return req.Answer != ""
	case "steps":
		return len(req.Steps) > 0
	case "formulas":
		return len(req.Formulas) > 0
	default:
		return false
	}
}
