package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Body is a flat success payload. "success" is added by the writers.
type Body map[string]interface{}

type ErrorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func withSuccess(body Body) Body {
	out := make(Body, len(body)+1)
	for k, v := range body {
		out[k] = v
	}
	out["success"] = true
	return out
}

// Success responses
func Success(w http.ResponseWriter, body Body) {
	writeJSON(w, http.StatusOK, withSuccess(body))
}

func SuccessWithMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, withSuccess(Body{"message": message}))
}

// PDF streams a rendered document as an attachment.
func PDF(w http.ResponseWriter, filename string, content []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		slog.Error("Failed to write pdf", "error", err)
	}
}

// Error responses
func writeError(w http.ResponseWriter, statusCode int, message string, details map[string]string) {
	writeJSON(w, statusCode, ErrorBody{
		Success: false,
		Error:   message,
		Details: details,
	})
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusBadRequest, message, details)
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeError(w, http.StatusUnprocessableEntity, "Validation failed", details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, message, nil)
}
