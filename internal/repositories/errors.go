package repositories

import "errors"

// ErrFollowSelf is returned when a user tries to follow themself
var ErrFollowSelf = errors.New("cannot follow yourself")

// ErrNoConnection means the request context carries no checked-out connection
var ErrNoConnection = errors.New("no database connection for request")

// DataAccessError reports a failed statement. Op is a short description of
// the operation that is safe to show to clients; Err is the driver error and
// must stay inside the process.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DataAccessError) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Op: op, Err: err}
}
