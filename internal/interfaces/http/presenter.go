package http

import (
	"math"
	"time"

	market "marketboard/internal/domain/entity/market"
	"marketboard/internal/format"

	"github.com/google/uuid"
)

// displayFields carries the pre-formatted values shown by the dashboard.
type displayFields struct {
	Price            string `json:"price"`
	OpeningPrice     string `json:"opening_price"`
	Change           string `json:"change"`
	ChangePercentage string `json:"change_percentage"`
	Volume           string `json:"volume"`
	MarketCap        string `json:"market_cap"`
	LastUpdate       string `json:"last_update"`
	Trend            string `json:"trend"`
}

type companyResponse struct {
	market.Company
	Display displayFields `json:"display"`
}

type listResponse struct {
	BatchID   uuid.UUID         `json:"batch_id"`
	Query     string            `json:"query,omitempty"`
	Total     int               `json:"total"`
	Count     int               `json:"count"`
	Summary   string            `json:"summary"`
	Companies []companyResponse `json:"companies"`
}

type batchResponse struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
}

func newCompanyResponse(c market.Company) companyResponse {
	return companyResponse{
		Company: c,
		Display: displayFields{
			Price:            format.Currency(c.CurrentPrice),
			OpeningPrice:     format.Currency(c.OpeningPrice()),
			Change:           format.Currency(math.Abs(c.Change.Value)),
			ChangePercentage: format.Percentage(c.Change.Percentage),
			Volume:           format.Volume(c.Volume),
			MarketCap:        format.Currency(float64(c.MarketCap)),
			LastUpdate:       format.Timestamp(c.LastUpdate),
			Trend:            c.Trend(),
		},
	}
}

func newListResponse(result *market.SearchResult) listResponse {
	companies := make([]companyResponse, 0, len(result.Companies))
	for _, c := range result.Companies {
		companies = append(companies, newCompanyResponse(c))
	}
	return listResponse{
		BatchID:   result.BatchID,
		Query:     result.Query,
		Total:     result.Total,
		Count:     len(companies),
		Summary:   format.Summary(len(companies), result.Total, result.Query),
		Companies: companies,
	}
}

func newBatchResponse(batch *market.Batch) batchResponse {
	return batchResponse{
		ID:          batch.ID,
		GeneratedAt: batch.GeneratedAt,
		Count:       batch.Len(),
	}
}
