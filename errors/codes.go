package errors

// ErrorCode identifies the class of an AppError in responses and logs.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Upload
	ErrorCode_INVALID_FILE_TYPE ErrorCode = 2000
	ErrorCode_FILE_TOO_LARGE    ErrorCode = 2001

	// Inference provider
	ErrorCode_PROVIDER_FAILED         ErrorCode = 3000
	ErrorCode_MALFORMED_ANALYSIS      ErrorCode = 3001
	ErrorCode_ENRICHMENT_FAILED       ErrorCode = 3002
	ErrorCode_MEETING_NOT_TRANSCRIBED ErrorCode = 3003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000

	// Database
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 5000
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 5001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_INVALID_FILE_TYPE:          "INVALID_FILE_TYPE",
	ErrorCode_FILE_TOO_LARGE:             "FILE_TOO_LARGE",
	ErrorCode_PROVIDER_FAILED:            "PROVIDER_FAILED",
	ErrorCode_MALFORMED_ANALYSIS:         "MALFORMED_ANALYSIS",
	ErrorCode_ENRICHMENT_FAILED:          "ENRICHMENT_FAILED",
	ErrorCode_MEETING_NOT_TRANSCRIBED:    "MEETING_NOT_TRANSCRIBED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:      "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
