package utils

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success envelope.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a failure envelope with a message only.
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// NewInternalErrorResponse creates a failure envelope carrying the raw error
// string, matching the upstream API contract for unhandled errors.
func NewInternalErrorResponse(message string, err error) Response {
	r := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
