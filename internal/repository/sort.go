package repository

import "strings"

// Sort carries caller-supplied sort parameters. The field and order are
// untrusted input; they are only ever mapped through an allowlist before
// reaching a query, never interpolated directly.
type Sort struct {
	Field string
	Order string
}

// Allowlisted sortable columns per listing. An unknown field falls back to
// name, an order other than DESC falls back to ASC.
var (
	userSortColumns = map[string]string{
		"name":    "name",
		"email":   "email",
		"address": "address",
		"role":    "role",
	}
	storeSortColumns = map[string]string{
		"name":       "name",
		"email":      "email",
		"address":    "address",
		"avg_rating": "avg_rating",
	}
)

func orderClause(allowed map[string]string, s Sort) string {
	column, ok := allowed[strings.ToLower(s.Field)]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if strings.EqualFold(s.Order, "DESC") {
		direction = "DESC"
	}
	return column + " " + direction
}

// UserOrderClause returns a safe ORDER BY fragment for user listings.
func UserOrderClause(s Sort) string {
	return orderClause(userSortColumns, s)
}

// StoreOrderClause returns a safe ORDER BY fragment for store listings.
func StoreOrderClause(s Sort) string {
	return orderClause(storeSortColumns, s)
}

// like wraps a substring filter for ILIKE matching. An empty filter becomes
// "%%", which matches every row.
func like(s string) string {
	return "%" + s + "%"
}
