package report

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/dinemenu/internal/domain"
	domreport "github.com/kailas-cloud/dinemenu/internal/domain/report"
)

// Service serves sales summaries.
type Service struct {
	repo Repository
}

// New creates a summary service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get loads the summary of the named kind and computes its totals.
func (s *Service) Get(ctx context.Context, kind string) (domreport.Summary, error) {
	k, err := domreport.ParseKind(kind)
	if err != nil {
		return domreport.Summary{}, fmt.Errorf("%w: %w", domain.ErrUnknownSummary, err)
	}

	rows, err := s.repo.Rows(ctx, k)
	if err != nil {
		return domreport.Summary{}, fmt.Errorf("get %s summary: %w", k, err)
	}
	return domreport.New(k, rows), nil
}

// Kinds lists the available summaries in selector order.
func (s *Service) Kinds() []domreport.Kind {
	return domreport.Kinds()
}
