package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, caches and the loader
// return these (optionally wrapped) so services can translate them into
// domain errors.
//
//   - ErrUnavailable: backing store unreachable or its circuit is open
//   - ErrCacheMiss: no cached entry for the key
//   - ErrInvalidSource: load source is not a JSON array of objects
//   - ErrEmptySource: load source decoded to an empty array
var (
	ErrUnavailable   = errors.New("unavailable")
	ErrCacheMiss     = errors.New("cache miss")
	ErrInvalidSource = errors.New("invalid source")
	ErrEmptySource   = errors.New("empty source")
)
