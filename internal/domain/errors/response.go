package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "NOT_AN_ADMIN"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified error response body emitted by the error
// middleware. The top-level "error" string mirrors what the PWA's admin page
// expects from the legacy endpoints.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
