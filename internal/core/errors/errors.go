package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpInvalidQueryError     = "invalid_query"
	HttpDuplicatePostError    = "duplicate_post"
	HttpUnknownStatisticError = "unknown_statistic"
	HttpSnapshotNotFoundError = "snapshot_not_found"
	HttpPayloadTooLargeError  = "payload_too_large"
	HttpPostValidationError   = "post_validation_failed"
)

// ErrorResponse is the error response body shared by every HTTP handler.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
