package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FetchTriggeredResponse acknowledges an ingestion trigger. The body is
// fixed regardless of the provider outcome; failed cycles are logged and
// retried on the next trigger.
type FetchTriggeredResponse struct {
	Status string `json:"status"`
}
