package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestAs_UnwrapsAppError(t *testing.T) {
	notFound := errors.NewNotFoundError("player", 42)
	wrapped := fmt.Errorf("loading page: %w", notFound)

	got := errors.As(wrapped)
	assert.Same(t, notFound, got)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "NOT_FOUND: player not found: 42", got.Error())
}

func TestAs_WrapsUnknownAsInternal(t *testing.T) {
	cause := stderrors.New("disk on fire")

	got := errors.As(cause)
	assert.Equal(t, errors.ErrCodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.ErrorIs(t, got, cause)
}

func TestUpstreamError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.NewUpstreamError("fetch leaderboard", cause)

	assert.True(t, errors.HasCode(err, errors.ErrCodeUpstream))
	assert.False(t, errors.HasCode(err, errors.ErrCodeNotFound))
	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.ErrorIs(t, err, cause)
}
