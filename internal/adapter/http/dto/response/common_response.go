package response

// MessageResponse is the envelope of writes that return no resource.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FieldError is one failed binding rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Success bool         `json:"success"`
	Errors  []FieldError `json:"errors"`
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

func Message(msg string) MessageResponse {
	return MessageResponse{Success: true, Message: msg}
}
