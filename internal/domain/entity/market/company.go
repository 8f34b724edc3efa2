package market

import "time"

// PriceChange is the variation of a price against its opening value.
type PriceChange struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// Company is a single simulated market snapshot of one listed company.
type Company struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Symbol       string      `json:"symbol"`
	Sector       string      `json:"sector"`
	CurrentPrice float64     `json:"current_price"`
	Change       PriceChange `json:"change"`
	Volume       int64       `json:"volume"`
	MarketCap    int64       `json:"market_cap"`
	LastUpdate   time.Time   `json:"last_update"`
}

// OpeningPrice is the price the change is measured against.
func (c Company) OpeningPrice() float64 {
	return c.CurrentPrice - c.Change.Value
}

// Listing is a name/symbol/sector tuple a company record is built from.
type Listing struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Sector string `json:"sector"`
}

// Trend classifies the direction of the price change.
func (c Company) Trend() string {
	switch {
	case c.Change.Percentage > 0:
		return "up"
	case c.Change.Percentage < 0:
		return "down"
	default:
		return "flat"
	}
}
