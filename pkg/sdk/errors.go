package dinemenu

import "github.com/kailas-cloud/dinemenu/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrItemNotFound      = domain.ErrItemNotFound
	ErrSourceUnavailable = domain.ErrSourceUnavailable
	ErrInvalidRequest    = domain.ErrInvalidRequest
)

// SourceError carries the upstream HTTP status of a failed fetch.
// Use errors.As() to extract it.
type SourceError = domain.SourceError
