package domain

import "errors"

var (
	// ErrIngestion signals that the primary movie source was missing, unreadable,
	// or produced zero usable rows. Fatal to catalog construction; callers must be
	// able to tell this apart from a legitimately empty recommendation result.
	ErrIngestion = errors.New("catalog ingestion failed")
	// ErrInvalidRequest signals a malformed recommendation request.
	ErrInvalidRequest = errors.New("invalid request")
)
