package sentinel

import "errors"

// Sentinel errors for lookup and capacity facts. Catalogs and services return
// these wrapped in a coded error so callers can match on them with errors.Is
// without depending on the message text.
//
// Refinement failures are not sentinels here; they match domain.ErrNotRefined.
var (
	ErrNotFound      = errors.New("not found")
	ErrLimitExceeded = errors.New("limit exceeded")
)
