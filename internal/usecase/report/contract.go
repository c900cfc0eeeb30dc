package report

import (
	"context"

	domreport "github.com/kailas-cloud/dinemenu/internal/domain/report"
)

// Repository defines the storage contract for summary rows.
type Repository interface {
	Rows(ctx context.Context, kind domreport.Kind) ([]domreport.Row, error)
}
