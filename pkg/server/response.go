package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *APIError              `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// APIError describes a failed request
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeValidation = "VALIDATION_ERROR"
	codeInternal   = "INTERNAL_ERROR"
	codeNotFound   = "NOT_FOUND"
)

func respond(c *gin.Context, status int, data interface{}, meta map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, Envelope{Data: data, Meta: meta})
}

func respondError(c *gin.Context, status int, code string, err error) {
	c.Header("Cache-Control", "no-store")
	c.AbortWithStatusJSON(status, Envelope{Error: &APIError{Code: code, Message: err.Error()}})
}

func badRequest(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, codeValidation, err)
}

func internalError(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, codeInternal, err)
}
