package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Dataset error codes (DATASET_*)
const (
	DatasetFileNotFound   ErrorCode = "DATASET_001"
	DatasetSchemaMismatch ErrorCode = "DATASET_002"
	DatasetUnreadable     ErrorCode = "DATASET_003"
	DatasetNotLoaded      ErrorCode = "DATASET_004"
)

// Filter error codes (FILTER_*)
const (
	FilterEmptySelection    ErrorCode = "FILTER_001"
	FilterEmptyCrossProduct ErrorCode = "FILTER_002"
	FilterEmptyView         ErrorCode = "FILTER_003"
	FilterUnknownValue      ErrorCode = "FILTER_004"
)

// Word-cloud error codes (WORDCLOUD_*)
const (
	WordCloudNoWords      ErrorCode = "WORDCLOUD_001"
	WordCloudRenderFailed ErrorCode = "WORDCLOUD_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages.
// Dashboard-facing codes carry the Indonesian copy shown to users.
var errorMessages = map[ErrorCode]string{
	// Dataset errors
	DatasetFileNotFound:   "File dataset tidak ditemukan. Pastikan file ada di direktori yang benar.",
	DatasetSchemaMismatch: "Dataset tidak memiliki kolom yang diperlukan.",
	DatasetUnreadable:     "Dataset tidak dapat dibaca.",
	DatasetNotLoaded:      "Dataset belum dimuat.",

	// Filter notices
	FilterEmptySelection:    "Pilih setidaknya satu filter untuk Treatment Place atau Group Provider.",
	FilterEmptyCrossProduct: "Tidak ada kombinasi filter yang valid untuk ditampilkan.",
	FilterEmptyView:         "Tidak ada data untuk filter ini.",
	FilterUnknownValue:      "Nilai filter tidak tersedia di dataset.",

	// Word-cloud errors
	WordCloudNoWords:      "Tidak ada item untuk membuat WordCloud.",
	WordCloudRenderFailed: "WordCloud gagal dibuat.",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
