package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody is the error envelope every failing endpoint returns.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidationIssue is one field-level problem in a rejected request body.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationBody is the envelope for rejected request bodies.
type ValidationBody struct {
	Error  string            `json:"error"`
	Issues []ValidationIssue `json:"issues"`
}

// ── Success ──

// OK writes a 200 with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload as-is.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── Errors ──

// Error writes the standard error envelope.
func Error(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorBody{Error: errType, Message: message})
}

// BadRequest writes a 400.
func BadRequest(c *gin.Context, errType, message string) {
	Error(c, http.StatusBadRequest, errType, message)
}

// NotFound writes a 404 with no detail message.
func NotFound(c *gin.Context, errType string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: errType})
}

// InternalError writes a 500, preserving the underlying message for
// operator visibility.
func InternalError(c *gin.Context, errType string, err error) {
	Error(c, http.StatusInternalServerError, errType, err.Error())
}

// ServiceUnavailable writes a 503 for store connectivity failures.
func ServiceUnavailable(c *gin.Context) {
	Error(c, http.StatusServiceUnavailable, "Service Unavailable",
		"Database connection failed. Please try again later.")
}

// ValidationError writes a 400 with per-field issues extracted from a gin
// binding error.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]ValidationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, ValidationIssue{
				Path:    jsonPath(fe),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, ValidationBody{Error: "Validation Error", Issues: issues})
		return
	}

	c.JSON(http.StatusBadRequest, ValidationBody{
		Error:  "Validation Error",
		Issues: []ValidationIssue{{Path: "body", Message: err.Error()}},
	})
}

// jsonPath derives the request-body path from the validator's namespace,
// e.g. "CreateStudentRequest.PersonalAddress.Pincode" -> "personalAddress.pincode".
func jsonPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the root struct name
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return "Too short"
	case "max":
		return "Too long"
	case "oneof":
		return "Invalid value"
	case "gte", "gt":
		return "Value too small"
	default:
		return "Invalid " + fe.Field()
	}
}
