package graphql

import (
	"errors"

	"go.uber.org/zap"

	"github.com/anonto42/inkwell/backend/internal/repositories"
)

var (
	errUnavailable = errors.New("database unavailable")
	errInternal    = errors.New("internal error")
)

// fieldError turns a repository failure into the message returned to the
// client. Driver errors are logged, never forwarded.
func fieldError(log *zap.Logger, err error) error {
	var dae *repositories.DataAccessError
	switch {
	case errors.As(err, &dae):
		log.Error("data access failed", zap.String("op", dae.Op), zap.Error(dae.Err))
		return errors.New(dae.Op)
	case errors.Is(err, repositories.ErrFollowSelf):
		return err
	case errors.Is(err, repositories.ErrNoConnection):
		log.Error("resolver ran without a request connection")
		return errUnavailable
	default:
		log.Error("unexpected resolver error", zap.Error(err))
		return errInternal
	}
}
