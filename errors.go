package colmap

import "github.com/kailas-cloud/colmap/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidMapping  = domain.ErrInvalidMapping
	ErrUnknownDataType = domain.ErrUnknownDataType
	ErrSchemaMissing   = domain.ErrSchemaMissing
	ErrRPCStatus       = domain.ErrRPCStatus
)

// StatusError carries a non-success status returned by the service.
type StatusError = domain.StatusError
