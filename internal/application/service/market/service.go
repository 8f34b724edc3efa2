package market

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	market "marketboard/internal/domain/entity/market"
	interfaces "marketboard/internal/domain/interfaces"
	"marketboard/internal/domain/search"
)

var (
	ErrDataUnavailable = errors.New("market data unavailable")
	ErrCompanyNotFound = errors.New("company not found")
	ErrNilBatch        = errors.New("batch is nil")
	ErrStaleBatch      = errors.New("batch is older than the current one")
	ErrInvalidBounds   = errors.New("min price must not exceed max price")
)

// Service holds the current batch and answers list, search and detail
// queries against it.
type Service struct {
	generator   interfaces.CompanyGenerator
	targetCount int
	now         func() time.Time

	mu      sync.RWMutex
	current *market.Batch
}

func NewService(generator interfaces.CompanyGenerator, targetCount int) *Service {
	return &Service{
		generator:   generator,
		targetCount: targetCount,
		now:         time.Now,
	}
}

// Refresh generates a new batch and makes it current.
func (s *Service) Refresh(ctx context.Context) (*market.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	batch, err := s.Generate()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = batch
	s.mu.Unlock()
	return batch, nil
}

// Generate builds a batch without installing it.
func (s *Service) Generate() (*market.Batch, error) {
	companies, err := s.generator.Generate(s.targetCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return market.NewBatch(companies, s.now()), nil
}

// Replace installs a batch produced elsewhere. Batches older than the
// current one are rejected.
func (s *Service) Replace(batch *market.Batch) error {
	if batch == nil {
		return ErrNilBatch
	}
	if batch.Companies == nil {
		batch.Companies = []market.Company{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && batch.GeneratedAt.Before(s.current.GeneratedAt) {
		return ErrStaleBatch
	}
	s.current = batch
	return nil
}

// Current returns the installed batch, or nil before the first refresh.
func (s *Service) Current() *market.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Snapshot returns the current batch, generating one if none exists yet.
func (s *Service) Snapshot(ctx context.Context) (*market.Batch, error) {
	if batch := s.Current(); batch != nil {
		return batch, nil
	}
	return s.Refresh(ctx)
}

func (s *Service) Search(ctx context.Context, criteria market.Criteria) (*market.SearchResult, error) {
	if criteria.MinPrice != nil && criteria.MaxPrice != nil && *criteria.MinPrice > *criteria.MaxPrice {
		return nil, ErrInvalidBounds
	}
	batch, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &market.SearchResult{
		BatchID:   batch.ID,
		Query:     criteria.Query,
		Total:     batch.Len(),
		Companies: search.Apply(batch.Companies, criteria),
	}, nil
}

// Company looks a company up by symbol, ignoring case.
func (s *Service) Company(ctx context.Context, symbol string) (market.Company, error) {
	batch, err := s.Snapshot(ctx)
	if err != nil {
		return market.Company{}, err
	}
	symbol = strings.TrimSpace(symbol)
	for _, company := range batch.Companies {
		if strings.EqualFold(company.Symbol, symbol) {
			return company, nil
		}
	}
	return market.Company{}, fmt.Errorf("%w: %s", ErrCompanyNotFound, symbol)
}

// Sectors lists the distinct sectors of the current batch in order.
func (s *Service) Sectors(ctx context.Context) ([]string, error) {
	batch, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sectors := make([]string, 0)
	for _, company := range batch.Companies {
		sectors = append(sectors, company.Sector)
	}
	slices.Sort(sectors)
	return slices.Compact(sectors), nil
}
