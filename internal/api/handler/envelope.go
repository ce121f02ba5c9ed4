package handler

// Error codes carried in ErrorResponse.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeForbidden        = "FORBIDDEN"
	CodeConflict         = "CONFLICT"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeServerError      = "SERVER_ERROR"
)

const statusError = "error"

// ErrorBody is the error part of the envelope.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// ErrorResponse is the envelope every failed request is answered with.
type ErrorResponse struct {
	Status string    `json:"status"`
	Error  ErrorBody `json:"error"`
}

func NewErrorResponse(code, message string, details []FieldError) ErrorResponse {
	return ErrorResponse{
		Status: statusError,
		Error:  ErrorBody{Code: code, Message: message, Details: details},
	}
}

// envelope wraps a successful payload.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func success(data any) envelope {
	return envelope{Status: statusSuccess, Data: data}
}
