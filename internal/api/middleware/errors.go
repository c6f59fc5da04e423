package middleware

import (
	"github.com/emicklei/go-restful/v3"
)

// ErrorResponse is the JSON envelope for 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{Error: err.Error()})
}
