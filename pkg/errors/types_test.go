package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayErrorHTTPCodes(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		code    ErrorCode
		status  int
		message string
	}{
		{"missing parameter", MissingParameter("url"), ErrCodeMissingParameter, http.StatusBadRequest, MsgMissingParameter},
		{"forbidden domain", ForbiddenDomain("https://evil.example"), ErrCodeForbiddenDomain, http.StatusForbidden, MsgForbiddenDomain},
		{"upstream 404", UpstreamStatus(http.StatusNotFound), ErrCodeUpstreamStatus, http.StatusNotFound, MsgUpstreamStatus},
		{"upstream 503", UpstreamStatus(http.StatusServiceUnavailable), ErrCodeUpstreamStatus, http.StatusServiceUnavailable, MsgUpstreamStatus},
		{"unknown failure", UnknownFailure(fmt.Errorf("dial tcp: timeout")), ErrCodeUnknownFailure, http.StatusInternalServerError, MsgUnknownFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.GetHTTPCode())
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestWrappedAppErrorIsFound(t *testing.T) {
	cause := stderrors.New("connection reset by peer")
	wrapped := fmt.Errorf("relaying cover: %w", UnknownFailure(cause))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeUnknownFailure, appErr.Code)
	assert.True(t, Is(wrapped, ErrCodeUnknownFailure))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(wrapped))
}

func TestPlainErrorDefaults(t *testing.T) {
	err := stderrors.New("boom")

	assert.Equal(t, ErrCodeInternal, GetCode(err))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(err))
	assert.False(t, Is(err, ErrCodeNotFound))
}

func TestLibraryErrors(t *testing.T) {
	notFound := NotFound("mylist item", "41000102")
	assert.Equal(t, http.StatusNotFound, notFound.GetHTTPCode())
	assert.Equal(t, "41000102", notFound.Details["id"])

	invalid := ValidationError("progress", "must be between 0 and 100")
	assert.Equal(t, http.StatusBadRequest, invalid.GetHTTPCode())
	assert.Contains(t, invalid.Error(), "progress")

	dbErr := DatabaseError("insert", stderrors.New("disk full"))
	assert.Equal(t, http.StatusInternalServerError, dbErr.GetHTTPCode())
	assert.Contains(t, dbErr.Error(), "disk full")
}
