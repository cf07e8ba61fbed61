package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		DatasetFileNotFound, DatasetSchemaMismatch, DatasetUnreadable, DatasetNotLoaded,
		FilterEmptySelection, FilterEmptyCrossProduct, FilterEmptyView, FilterUnknownValue,
		WordCloudNoWords, WordCloudRenderFailed,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemConfigurationError,
		SystemUnexpectedError, SystemRateLimitExceeded, SystemNotFound,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_DashboardCopy() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "empty selection",
			code:     FilterEmptySelection,
			expected: "Pilih setidaknya satu filter untuk Treatment Place atau Group Provider.",
		},
		{
			name:     "empty cross product",
			code:     FilterEmptyCrossProduct,
			expected: "Tidak ada kombinasi filter yang valid untuk ditampilkan.",
		},
		{
			name:     "empty view",
			code:     FilterEmptyView,
			expected: "Tidak ada data untuk filter ini.",
		},
		{
			name:     "dataset missing",
			code:     DatasetFileNotFound,
			expected: "File dataset tidak ditemukan. Pastikan file ada di direktori yang benar.",
		},
		{
			name:     "rate limit",
			code:     SystemRateLimitExceeded,
			expected: "Rate limit exceeded. Please try again later",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), "code %s should be registered", code)
	}
	s.False(IsValidErrorCode("AUTH_001"))
	s.False(IsValidErrorCode(""))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
	s.Len(errorMessages, len(seen))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	pattern := regexp.MustCompile(`^(DATASET|FILTER|WORDCLOUD|VALIDATION|SYSTEM)_\d{3}$`)
	for _, code := range allCodes() {
		s.Regexp(pattern, string(code))
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes() {
		s.NotEmpty(errorMessages[code], "code %s has no message", code)
	}
}
