package repository

import (
	"strings"

	"gorm.io/gorm"
)

// ListParams carries the filtering, sorting and paging options of a list query.
// Page is 1-based; Limit must already be clamped by the caller.
type ListParams struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

func (p ListParams) offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

func paginate(p ListParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(p.Limit).Offset(p.offset())
	}
}

// sortColumns maps a public sort key to the SQL expression it orders by.
type sortColumns map[string]string

var (
	ratingSortColumns = sortColumns{
		"created_at":    "r.created_at",
		"updated_at":    "r.updated_at",
		"rating":        "r.rating",
		"store_name":    "s.name",
		"store_address": "s.address",
	}
	storeSortColumns = sortColumns{
		"name":           "s.name",
		"address":        "s.address",
		"created_at":     "s.created_at",
		"updated_at":     "s.updated_at",
		"average_rating": "average_rating",
		"total_ratings":  "total_ratings",
	}
	userSortColumns = sortColumns{
		"name":       "u.name",
		"email":      "u.email",
		"role":       "u.role",
		"created_at": "u.created_at",
		"updated_at": "u.updated_at",
	}
)

// orderBy builds an ORDER BY expression from untrusted input. Unknown keys fall
// back to created_at and anything but "asc" (any case) sorts descending, so the
// result only ever contains allow-listed text.
func (c sortColumns) orderBy(sortBy, sortOrder string) string {
	column, ok := c[sortBy]
	if !ok {
		column = c["created_at"]
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

// likePattern lowercases term and wraps it for a substring LIKE match.
func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
