package dto

import "encoding/json"

// Pagination is the page envelope of every list response. The total is keyed
// by entity, e.g. "totalRatings" or "totalStores".
type Pagination struct {
	CurrentPage int
	TotalPages  int
	Total       int64
	Limit       int
	entity      string
}

func NewPagination(entity string, total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		Limit:       limit,
		entity:      entity,
	}
}

func (p Pagination) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"currentPage":      p.CurrentPage,
		"totalPages":       p.TotalPages,
		"total" + p.entity: p.Total,
		"limit":            p.Limit,
	})
}
