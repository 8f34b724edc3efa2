// Package search narrows company batches down to what a viewer typed.
package search

import (
	"strings"

	market "marketboard/internal/domain/entity/market"
)

// Filter returns the companies whose name, symbol or sector contain query,
// ignoring case. Input order is kept. A blank query returns records as is.
func Filter(records []market.Company, query string) []market.Company {
	if strings.TrimSpace(query) == "" {
		return records
	}

	needle := strings.ToLower(query)
	matched := make([]market.Company, 0)
	for _, company := range records {
		if strings.Contains(searchableText(company), needle) {
			matched = append(matched, company)
		}
	}
	return matched
}

// Apply runs Filter and then the sector and price bounds of criteria.
func Apply(records []market.Company, criteria market.Criteria) []market.Company {
	result := Filter(records, criteria.Query)
	if criteria.Sector == "" && criteria.MinPrice == nil && criteria.MaxPrice == nil {
		return result
	}

	narrowed := make([]market.Company, 0, len(result))
	for _, company := range result {
		if criteria.Sector != "" && !strings.EqualFold(company.Sector, criteria.Sector) {
			continue
		}
		if criteria.MinPrice != nil && company.CurrentPrice < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && company.CurrentPrice > *criteria.MaxPrice {
			continue
		}
		narrowed = append(narrowed, company)
	}
	return narrowed
}

func searchableText(c market.Company) string {
	return strings.ToLower(c.Name + " " + c.Symbol + " " + c.Sector)
}
