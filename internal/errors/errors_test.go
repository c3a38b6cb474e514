package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *APIError
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid request", InvalidRequestWithError(fmt.Errorf("bad json")), http.StatusBadRequest, CodeInvalidRequest, "Invalid request format"},
		{"field validation", ErrValidation("period", "period is required"), http.StatusUnprocessableEntity, CodeValidationFailed, "Request validation failed"},
		{"not found", NotFoundError("Metric", nil), http.StatusNotFound, CodeNotFound, "Metric not found"},
		{"unsupported format", UnsupportedFormatError("pdf", []string{"csv"}), http.StatusBadRequest, CodeUnsupportedFormat, "Unsupported export format: pdf"},
		{"calculation", CalculationError(fmt.Errorf("write failed")), http.StatusInternalServerError, CodeCalculation, "Calculation error: write failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
			assert.Equal(t, tt.wantCode, tt.err.ErrorCode)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestNewValidationErrors(t *testing.T) {
	err := NewValidationErrors([]ValidationError{
		{Field: "revenue", Message: "revenue must be greater than 0"},
		{Field: "cash", Message: "cash must be greater than or equal to 0"},
	})

	details, ok := err.Details.(ValidationErrors)
	require.True(t, ok)
	assert.Len(t, details.Errors, 2)
	assert.Equal(t, "revenue", details.Errors[0].Field)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, New(http.StatusUnsupportedMediaType, CodeInvalidRequest, "Unsupported content type"))

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Success bool     `json:"success"`
		Error   APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, CodeInvalidRequest, resp.Error.ErrorCode)
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	problem := NewProblemDetails(http.StatusNotFound, TypeNotFound, "Not Found", "", "/x").
		WithExtension("trace_id", "abc").
		WithExtension("status", 999)

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "abc", decoded["trace_id"])
	assert.Equal(t, float64(http.StatusNotFound), decoded["status"], "standard members win over extensions")
	assert.NotContains(t, decoded, "detail")
	assert.Equal(t, "/x", decoded["instance"])
}
