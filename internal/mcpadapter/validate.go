package mcpadapter

import (
	"context"

	"github.com/jeonsilai/guardrails-server/internal/models"
	"github.com/jeonsilai/guardrails-server/internal/rails"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ValidateInputArgs is the MCP tool input schema (matches HTTP API field names).
type ValidateInputArgs struct {
	Text        string `json:"text,omitempty" jsonschema:"question text from the user"`
	ImageBase64 string `json:"imageBase64,omitempty" jsonschema:"base64 encoded problem image"`
}

// ValidateOutputArgs is the MCP tool input schema for output validation.
type ValidateOutputArgs struct {
	Answer     string                `json:"answer,omitempty" jsonschema:"final answer"`
	Steps      []models.SolutionStep `json:"steps,omitempty" jsonschema:"solution steps"`
	Formulas   []string              `json:"formulas,omitempty" jsonschema:"formulas used"`
	Confidence *float64              `json:"confidence,omitempty" jsonschema:"confidence score between 0 and 1"`
	RelatedKEC []string              `json:"relatedKEC,omitempty" jsonschema:"related KEC codes"`
}

// NewValidateInputHandler returns a tool handler backed by the input rail.
// Pass the returned function to mcp.AddTool.
func NewValidateInputHandler(rail *rails.InputRail) func(context.Context, *mcp.CallToolRequest, ValidateInputArgs) (*mcp.CallToolResult, models.InputValidationResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ValidateInputArgs) (*mcp.CallToolResult, models.InputValidationResponse, error) {
		result := rail.Validate(models.InputValidationRequest{
			Text:        args.Text,
			ImageBase64: args.ImageBase64,
		})
		return nil, result, nil
	}
}

// NewValidateOutputHandler returns a tool handler backed by the output rail.
func NewValidateOutputHandler(rail *rails.OutputRail) func(context.Context, *mcp.CallToolRequest, ValidateOutputArgs) (*mcp.CallToolResult, models.OutputValidationResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ValidateOutputArgs) (*mcp.CallToolResult, models.OutputValidationResponse, error) {
		result := rail.Validate(models.OutputValidationRequest{
			Answer:     args.Answer,
			Steps:      args.Steps,
			Formulas:   args.Formulas,
			Confidence: args.Confidence,
			RelatedKEC: args.RelatedKEC,
		})
		return nil, result, nil
	}
}
