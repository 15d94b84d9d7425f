// Package advocate implements the advocate directory use cases: request
// validation, query sanitizing, search predicate construction and paging.
package advocate

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

type advocateRepo interface {
	Find(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]domain.Advocate, error)
	Count(ctx context.Context, filter domain.SearchFilter) (int, error)
}

// Service provides read access to the advocate directory.
type Service struct {
	advocates advocateRepo
	log       *slog.Logger
}

// NewService creates a new advocate service.
func NewService(log *slog.Logger, advocates advocateRepo) *Service {
	return &Service{
		advocates: advocates,
		log:       log.With("service", "advocate"),
	}
}

// List returns one page of all advocates.
func (s *Service) List(ctx context.Context, input ListInput) (*PageResult, error) {
	nq, err := input.Validate()
	if err != nil {
		return nil, err
	}

	page, err := s.fetchPage(ctx, domain.SearchFilter{}, nq.Page, nq.Limit)
	if err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}
	return page, nil
}

// Search returns one page of advocates matching every term of the query.
func (s *Service) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	nq, err := input.Validate()
	if err != nil {
		return nil, err
	}

	filter := BuildFilter(nq.Query)
	page, err := s.fetchPage(ctx, filter, nq.Page, nq.Limit)
	if err != nil {
		return nil, fmt.Errorf("search advocates: %w", err)
	}

	s.log.DebugContext(ctx, "advocate search",
		slog.Int("terms", len(filter.Terms)),
		slog.Int("total", page.Pagination.Total),
	)

	return &SearchResult{PageResult: *page, Query: nq.Query}, nil
}

// fetchPage loads the requested slice and the total count concurrently.
func (s *Service) fetchPage(ctx context.Context, filter domain.SearchFilter, page, limit int) (*PageResult, error) {
	var (
		rows  []domain.Advocate
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.advocates.Find(gctx, filter, limit, domain.Offset(page, limit))
		if err != nil {
			return fmt.Errorf("find: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.advocates.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []domain.Advocate{}
	}

	return &PageResult{
		Advocates:  rows,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}
