package rails

import (
	"strings"
	"testing"

	"github.com/jeonsilai/guardrails-server/internal/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestOutputRail_Validate(t *testing.T) {
	rail := NewOutputRail(loadRules(t), newTestLogger())

	completeSteps := []models.SolutionStep{
		{Title: "부하 전류 계산", Content: "I = P / (√3 × V × cosθ)"},
	}

	tests := []struct {
		name         string
		req          models.OutputValidationRequest
		wantWarnings []string
		warningCount int
	}{
		{
			name: "complete answer produces no warnings",
			req: models.OutputValidationRequest{
				Answer:     "250kVA",
				Steps:      completeSteps,
				Formulas:   []string{"P = √3 × V × I × cosθ"},
				Confidence: floatPtr(0.92),
			},
			warningCount: 0,
		},
		{
			name:         "all required fields missing",
			req:          models.OutputValidationRequest{},
			wantWarnings: []string{"answer 필드", "steps 필드", "formulas 필드"},
			warningCount: 3,
		},
		{
			name: "numeric answer without unit and low confidence",
			req: models.OutputValidationRequest{
				Answer:     "250",
				Steps:      completeSteps,
				Formulas:   []string{"Q = P(tanθ1 - tanθ2)"},
				Confidence: floatPtr(0.5),
			},
			wantWarnings: []string{"단위가 누락", "신뢰도가 70% 미만"},
			warningCount: 2,
		},
		{
			name: "non-numeric answer needs no unit",
			req: models.OutputValidationRequest{
				Answer:   "과전류 보호가 필요합니다",
				Steps:    completeSteps,
				Formulas: []string{"-"},
			},
			warningCount: 0,
		},
		{
			name: "incomplete step cited by 1-based position",
			req: models.OutputValidationRequest{
				Answer:   "10Ω",
				Formulas: []string{"R = V / I"},
				Steps: []models.SolutionStep{
					{Title: "전류 계산", Content: "I = 10A"},
					{Title: "", Content: "R = 100V / 10A"},
				},
			},
			wantWarnings: []string{"풀이 단계 2의 제목 또는 내용이 누락되었습니다."},
			warningCount: 1,
		},
		{
			name: "confidence at the threshold passes",
			req: models.OutputValidationRequest{
				Answer:     "380V",
				Steps:      completeSteps,
				Formulas:   []string{"V = √3 × 220"},
				Confidence: floatPtr(0.7),
			},
			warningCount: 0,
		},
		{
			name: "absent confidence is not checked",
			req: models.OutputValidationRequest{
				Answer:   "380V",
				Steps:    completeSteps,
				Formulas: []string{"V = √3 × 220"},
			},
			warningCount: 0,
		},
		{
			name: "related KEC codes never affect the verdict",
			req: models.OutputValidationRequest{
				Answer:     "접지 저항 10Ω 이하",
				Steps:      completeSteps,
				Formulas:   []string{"-"},
				RelatedKEC: []string{"KEC 142.2", "KEC 211.5"},
			},
			warningCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rail.Validate(tt.req)

			// No rule populates corrections, so output stays valid.
			if !got.Valid {
				t.Errorf("Valid: false, want true (corrections: %v)", got.Corrections)
			}
			if len(got.Corrections) != 0 {
				t.Errorf("Corrections: %v, want empty", got.Corrections)
			}
			if len(got.Warnings) != tt.warningCount {
				t.Errorf("warning count: %d, want %d (warnings: %v)", len(got.Warnings), tt.warningCount, got.Warnings)
			}
			for _, want := range tt.wantWarnings {
				found := false
				for _, w := range got.Warnings {
					if strings.Contains(w, want) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("missing warning containing %q in %v", want, got.Warnings)
				}
			}
		})
	}
}

func TestOutputRail_StepWithEmptyTitleAndContent(t *testing.T) {
	rail := NewOutputRail(loadRules(t), newTestLogger())

	got := rail.Validate(models.OutputValidationRequest{
		Steps: []models.SolutionStep{{Title: "", Content: "x"}},
	})

	found := false
	for _, w := range got.Warnings {
		if strings.Contains(w, "풀이 단계 1의") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected step 1 warning, got %v", got.Warnings)
	}
}
