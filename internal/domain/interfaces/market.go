package interfaces

import (
	"context"

	market "marketboard/internal/domain/entity/market"
)

type CompanyGenerator interface {
	Generate(targetCount int) ([]market.Company, error)
}

type BatchPublisher interface {
	Publish(ctx context.Context, batch *market.Batch) error
	Close() error
}
