package market

import (
	"time"

	"github.com/google/uuid"
)

// Batch is the full ordered collection produced by one generation call.
// A batch is never modified after creation; a newer batch replaces it.
type Batch struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Companies   []Company `json:"companies"`
}

// NewBatch wraps companies generated at the given time into a batch.
func NewBatch(companies []Company, generatedAt time.Time) *Batch {
	if companies == nil {
		companies = []Company{}
	}
	return &Batch{
		ID:          uuid.New(),
		GeneratedAt: generatedAt.UTC(),
		Companies:   companies,
	}
}

// Len returns the number of companies in the batch.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Companies)
}

// Criteria narrows a batch down to the companies a viewer asked for.
type Criteria struct {
	Query    string
	Sector   string
	MinPrice *float64
	MaxPrice *float64
}

// SearchResult is a filtered view over a batch.
type SearchResult struct {
	BatchID   uuid.UUID `json:"batch_id"`
	Query     string    `json:"query,omitempty"`
	Total     int       `json:"total"`
	Companies []Company `json:"companies"`
}
