package scanner

import "errors"

// ErrUpstreamFailure is returned when the UI driver reports it could not
// navigate to the target screen; the whole run aborts.
var ErrUpstreamFailure = errors.New("upstream driver failure")

// ErrTooManyFailures is returned when more than the allowed number of
// consecutive per-item failures occur, which points at a timing or
// configuration problem upstream rather than bad data.
var ErrTooManyFailures = errors.New("too many consecutive scan failures")
