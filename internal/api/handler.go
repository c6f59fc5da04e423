package api

import (
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/jeonsilai/guardrails-server/internal/api/middleware"
	"github.com/jeonsilai/guardrails-server/internal/audit"
	"github.com/jeonsilai/guardrails-server/internal/models"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

// InputValidator validates user questions before they reach the agent.
type InputValidator interface {
	Validate(req models.InputValidationRequest) models.InputValidationResponse
}

// OutputValidator validates AI answers before they reach the user.
type OutputValidator interface {
	Validate(req models.OutputValidationRequest) models.OutputValidationResponse
}

type Handler struct {
	inputRail  InputValidator
	outputRail OutputValidator
	publisher  audit.Publisher
	logger     *zerolog.Logger
}

func NewHandler(inputRail InputValidator, outputRail OutputValidator, publisher audit.Publisher, logger *zerolog.Logger) *Handler {
	return &Handler{
		inputRail:  inputRail,
		outputRail: outputRail,
		publisher:  publisher,
		logger:     logger,
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type ServiceInfo struct {
	Service     string            `json:"service"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Endpoints   map[string]string `json:"endpoints"`
}

// POST /validate/input
func (h *Handler) ValidateInput(req *restful.Request, resp *restful.Response) {
	var request models.InputValidationRequest
	if err := req.ReadEntity(&request); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Bool("has_text", request.Text != "").
		Bool("has_image", request.ImageBase64 != "").
		Msg("Validating input")

	result := h.inputRail.Validate(request)

	h.logger.Info().
		Bool("valid", result.Valid).
		Int("error_count", len(result.Errors)).
		Msg("Input validation complete")

	h.publish(req, audit.Record{
		Rail:        "input",
		Valid:       result.Valid,
		Diagnostics: result.Errors,
		Timestamp:   time.Now().UTC(),
	})

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /validate/output
func (h *Handler) ValidateOutput(req *restful.Request, resp *restful.Response) {
	var request models.OutputValidationRequest
	if err := req.ReadEntity(&request); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Bool("has_answer", request.Answer != "").
		Bool("has_steps", len(request.Steps) > 0).
		Bool("has_formulas", len(request.Formulas) > 0).
		Msg("Validating output")

	result := h.outputRail.Validate(request)

	h.logger.Info().
		Bool("valid", result.Valid).
		Int("warning_count", len(result.Warnings)).
		Int("correction_count", len(result.Corrections)).
		Msg("Output validation complete")

	// Corrections ride along so the record stays complete once a rule
	// starts emitting them.
	diagnostics := make([]string, 0, len(result.Warnings)+len(result.Corrections))
	diagnostics = append(diagnostics, result.Warnings...)
	diagnostics = append(diagnostics, result.Corrections...)

	h.publish(req, audit.Record{
		Rail:        "output",
		Valid:       result.Valid,
		Diagnostics: diagnostics,
		Timestamp:   time.Now().UTC(),
	})

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
	})
}

// GET /
func (h *Handler) Info(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, ServiceInfo{
		Service:     "Jeonsilai Guardrails Server",
		Description: "전기기사 AI 풀이 서비스 입력/출력 검증 서버",
		Version:     Version,
		Endpoints: map[string]string{
			"health":          "/health",
			"validate_input":  "/validate/input",
			"validate_output": "/validate/output",
		},
	})
}

// publish ships the verdict to the audit stream. Failures are logged and
// never surfaced to the caller.
func (h *Handler) publish(req *restful.Request, rec audit.Record) {
	if err := h.publisher.Publish(req.Request.Context(), rec); err != nil {
		h.logger.Warn().Err(err).Str("rail", rec.Rail).Msg("Failed to publish audit record")
	}
}
