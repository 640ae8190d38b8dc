package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope wraps all API responses; callers branch on OK.
type Envelope struct {
	OK    bool        `json:"ok"`
	Item  interface{} `json:"item,omitempty"`
	Items interface{} `json:"items,omitempty"`
	Error string      `json:"error,omitempty"`
}

// OK sends a 200 response with a single item
func OK(c *gin.Context, item interface{}) {
	c.JSON(http.StatusOK, Envelope{OK: true, Item: item})
}

// List sends a 200 response with a collection
func List(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, Envelope{OK: true, Items: items})
}

// Created sends a 201 response for successfully created resources
func Created(c *gin.Context, item interface{}) {
	c.JSON(http.StatusCreated, Envelope{OK: true, Item: item})
}

// JSON sends a success payload that does not fit the item/items shape.
// The payload's own "ok" field is forced to true.
func JSON(c *gin.Context, status int, payload gin.H) {
	payload["ok"] = true
	c.JSON(status, payload)
}

// --- Error Responses ---

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{OK: false, Error: message})
}

// Error aborts the chain with the uniform error envelope
func Error(c *gin.Context, status int, message string) {
	c.Abort()
	errorResponse(c, status, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	errorResponse(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response
// Note: Never expose driver details to clients
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	errorResponse(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *gin.Context, message string) {
	errorResponse(c, http.StatusServiceUnavailable, message)
}
