package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/jeonsilai/guardrails-server/internal/api/middleware"
	"github.com/jeonsilai/guardrails-server/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Root endpoint with API information
	ws.
		Route(ws.GET("/").
			To(handler.Info).
			Doc("Service info").
			Metadata(restfulspec.KeyOpenAPITags, []string{"root"}).
			Writes(ServiceInfo{}).
			Returns(200, "OK", ServiceInfo{}))

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("validate/input").
			To(handler.ValidateInput).
			Doc("Validate user input before processing").
			Metadata(restfulspec.KeyOpenAPITags, []string{"validation"}).
			Reads(models.InputValidationRequest{}).
			Writes(models.InputValidationResponse{}).
			Returns(200, "OK", models.InputValidationResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("validate/output").
			To(handler.ValidateOutput).
			Doc("Validate AI output before returning to user").
			Metadata(restfulspec.KeyOpenAPITags, []string{"validation"}).
			Reads(models.OutputValidationRequest{}).
			Writes(models.OutputValidationResponse{}).
			Returns(200, "OK", models.OutputValidationResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
