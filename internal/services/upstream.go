package services

import (
	stderrors "errors"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/shion"
)

// upstreamError maps a stats API failure onto the application error taxonomy.
func upstreamError(operation, resource string, id any, err error) error {
	switch {
	case stderrors.Is(err, shion.ErrNotFound):
		return errors.NewNotFoundError(resource, id)
	case stderrors.Is(err, shion.ErrInvalidArgument):
		return errors.NewValidationError(resource, err.Error())
	default:
		return errors.NewUpstreamError(operation, err)
	}
}
