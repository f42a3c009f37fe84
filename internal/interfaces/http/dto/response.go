package dto

// ErrorResponse is the error payload every failing endpoint returns.
// Successful responses carry the raw row(s) with no envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse wraps an error message in the wire error shape
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
