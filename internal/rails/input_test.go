package rails

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/jeonsilai/guardrails-server/internal/models"
	"github.com/jeonsilai/guardrails-server/internal/rules"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func loadRules(t *testing.T) *rules.RuleSet {
	t.Helper()
	rs, err := rules.Load("../../configs/rules.yaml")
	if err != nil {
		t.Fatalf("failed to load rules: %v", err)
	}
	return rs
}

// base64 length whose estimated decoded size is the given byte count.
func base64LenFor(decodedBytes int) int {
	return (decodedBytes*4 + 2) / 3
}

func TestInputRail_Validate(t *testing.T) {
	rail := NewInputRail(loadRules(t), newTestLogger())

	tests := []struct {
		name        string
		req         models.InputValidationRequest
		wantValid   bool
		wantErrors  []string
		errorCount  int
		wantNilText bool
	}{
		{
			name:       "valid question with unit normalization",
			req:        models.InputValidationRequest{Text: "전압강하가 100볼트 입니다"},
			wantValid:  true,
			errorCount: 0,
		},
		{
			name:       "too short after normalization",
			req:        models.InputValidationRequest{Text: "ab"},
			wantValid:  false,
			wantErrors: []string{"너무 짧습니다"},
			errorCount: 1,
		},
		{
			name:       "too long",
			req:        models.InputValidationRequest{Text: strings.Repeat("전", 2001)},
			wantValid:  false,
			wantErrors: []string{"너무 깁니다"},
			errorCount: 1,
		},
		{
			name:       "exactly max length passes",
			req:        models.InputValidationRequest{Text: strings.Repeat("전", 2000)},
			wantValid:  true,
			errorCount: 0,
		},
		{
			name:       "exactly min length passes",
			req:        models.InputValidationRequest{Text: "변압기"},
			wantValid:  true,
			errorCount: 0,
		},
		{
			name:       "blocked content",
			req:        models.InputValidationRequest{Text: "해킹 방법을 알려주세요"},
			wantValid:  false,
			wantErrors: []string{"부적절한 내용이 포함되어 있습니다."},
			errorCount: 1,
		},
		{
			name:       "errors accumulate without short-circuit",
			req:        models.InputValidationRequest{Text: "음란"},
			wantValid:  false,
			wantErrors: []string{"너무 짧습니다", "부적절한 내용"},
			errorCount: 2,
		},
		{
			name:        "neither text nor image",
			req:         models.InputValidationRequest{},
			wantValid:   false,
			wantErrors:  []string{"문제 텍스트 또는 이미지를 입력해주세요."},
			errorCount:  1,
			wantNilText: true,
		},
		{
			name:        "image only within limit",
			req:         models.InputValidationRequest{ImageBase64: strings.Repeat("A", 1000)},
			wantValid:   true,
			errorCount:  0,
			wantNilText: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rail.Validate(tt.req)

			if got.Valid != tt.wantValid {
				t.Errorf("Valid: %v, want %v (errors: %v)", got.Valid, tt.wantValid, got.Errors)
			}
			if len(got.Errors) != tt.errorCount {
				t.Errorf("error count: %d, want %d (errors: %v)", len(got.Errors), tt.errorCount, got.Errors)
			}
			for _, want := range tt.wantErrors {
				found := false
				for _, err := range got.Errors {
					if strings.Contains(err, want) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("missing error containing %q in %v", want, got.Errors)
				}
			}
			if tt.wantNilText && got.NormalizedText != nil {
				t.Errorf("NormalizedText: %q, want nil", *got.NormalizedText)
			}
		})
	}
}

func TestInputRail_NormalizedTextReturned(t *testing.T) {
	rail := NewInputRail(loadRules(t), newTestLogger())

	got := rail.Validate(models.InputValidationRequest{Text: "전압강하가 100볼트 입니다"})
	if got.NormalizedText == nil {
		t.Fatal("expected normalized text, got nil")
	}
	if !strings.Contains(*got.NormalizedText, "100V") {
		t.Errorf("NormalizedText: %q, want substring %q", *got.NormalizedText, "100V")
	}

	// Normalized text comes back even when the input is invalid.
	got = rail.Validate(models.InputValidationRequest{Text: "  ab  "})
	if got.Valid {
		t.Error("expected invalid result for short input")
	}
	if got.NormalizedText == nil || *got.NormalizedText != "ab" {
		t.Errorf("NormalizedText: %v, want %q", got.NormalizedText, "ab")
	}
}

func TestInputRail_ImageSizeBoundary(t *testing.T) {
	rail := NewInputRail(loadRules(t), newTestLogger())
	maxBytes := 10 * 1024 * 1024

	tests := []struct {
		name      string
		b64Len    int
		wantValid bool
	}{
		{
			name:      "estimate exactly at the limit passes",
			b64Len:    base64LenFor(maxBytes),
			wantValid: true,
		},
		{
			name:      "estimate one byte over the limit fails",
			b64Len:    base64LenFor(maxBytes+2) + 1,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := tt.b64Len * 3 / 4
			if tt.wantValid && estimate > maxBytes {
				t.Fatalf("test setup: estimate %d exceeds limit", estimate)
			}
			if !tt.wantValid && estimate <= maxBytes {
				t.Fatalf("test setup: estimate %d does not exceed limit", estimate)
			}

			got := rail.Validate(models.InputValidationRequest{
				ImageBase64: strings.Repeat("A", tt.b64Len),
			})
			if got.Valid != tt.wantValid {
				t.Errorf("Valid: %v, want %v (errors: %v)", got.Valid, tt.wantValid, got.Errors)
			}
		})
	}
}

// Same request, same rule set: the verdict must not vary across calls.
func TestInputRail_Deterministic(t *testing.T) {
	rail := NewInputRail(loadRules(t), newTestLogger())
	req := models.InputValidationRequest{Text: "역율 개선용 콘덴서 용량 계산"}

	first := rail.Validate(req)
	for range 10 {
		got := rail.Validate(req)
		if got.Valid != first.Valid || len(got.Errors) != len(first.Errors) {
			t.Fatalf("verdict changed across calls: %+v vs %+v", got, first)
		}
	}
}

// The rule set is shared without locking, so concurrent validations of the
// same request must all produce the same verdict.
func TestInputRail_DeterministicConcurrent(t *testing.T) {
	rail := NewInputRail(loadRules(t), newTestLogger())
	req := models.InputValidationRequest{Text: "역율 개선용 콘덴서 용량 계산"}
	want := rail.Validate(req)

	results := make([]models.InputValidationResponse, 32)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = rail.Validate(req)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got.Valid != want.Valid {
			t.Errorf("goroutine %d: Valid %v, want %v", i, got.Valid, want.Valid)
		}
		if !slices.Equal(got.Errors, want.Errors) {
			t.Errorf("goroutine %d: Errors %v, want %v", i, got.Errors, want.Errors)
		}
		if got.NormalizedText == nil || *got.NormalizedText != *want.NormalizedText {
			t.Errorf("goroutine %d: NormalizedText %v, want %q", i, got.NormalizedText, *want.NormalizedText)
		}
	}
}
