package dto

// Response is the envelope of every successful API response
type Response struct {
	Message string `json:"message" example:"Customer retrieved successfully"`
	Data    any    `json:"data,omitempty"`
}

// MessageResponse carries only a message, e.g. after a delete
type MessageResponse struct {
	Message string `json:"message" example:"Customer deleted successfully"`
}

// ValidationErrorResponse lists every failing field of a request
type ValidationErrorResponse struct {
	Message string              `json:"message" example:"The given data was invalid."`
	Errors  map[string][]string `json:"errors"`
}

// ErrorResponse describes a failed request. Error holds a diagnostic and
// is left empty in production.
type ErrorResponse struct {
	Message string `json:"message" example:"Error deleting customer"`
	Error   string `json:"error,omitempty"`
}

// NewResponse creates a success response
func NewResponse(message string, data any) Response {
	return Response{Message: message, Data: data}
}

// NewValidationErrorResponse creates a 422 body from field errors
func NewValidationErrorResponse(fields map[string][]string) ValidationErrorResponse {
	if fields == nil {
		fields = map[string][]string{}
	}
	return ValidationErrorResponse{Message: MsgValidationFailed, Errors: fields}
}

// NewErrorResponse creates an error body, including detail only when expose is set
func NewErrorResponse(message string, detail error, expose bool) ErrorResponse {
	resp := ErrorResponse{Message: message}
	if expose && detail != nil {
		resp.Error = detail.Error()
	}
	return resp
}
