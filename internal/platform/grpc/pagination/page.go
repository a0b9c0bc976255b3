// Package pagination normalizes list request paging parameters.
package pagination

import (
	"strings"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	return max(pageSize, 1)
}

// Order is a normalized sort direction.
type Order struct {
	Field      string
	Descending bool
}

// ParseOrderBy validates an AIP-132 order_by such as "seq desc" against the
// sortable fields. An empty value sorts ascending by the first field.
func ParseOrderBy(orderBy string, fields ...string) (Order, error) {
	if len(fields) == 0 {
		return Order{}, apperrors.New(apperrors.CodeInvalidArgument, "no sortable fields")
	}
	parts := strings.Fields(strings.ToLower(orderBy))
	if len(parts) == 0 {
		return Order{Field: fields[0]}, nil
	}
	if len(parts) > 2 {
		return Order{}, apperrors.New(apperrors.CodeInvalidArgument, "order_by supports one field")
	}
	known := false
	for _, f := range fields {
		if parts[0] == f {
			known = true
			break
		}
	}
	if !known {
		return Order{}, apperrors.New(apperrors.CodeInvalidArgument, "invalid order_by field: "+parts[0])
	}
	order := Order{Field: parts[0]}
	if len(parts) == 2 {
		switch parts[1] {
		case "asc":
		case "desc":
			order.Descending = true
		default:
			return Order{}, apperrors.New(apperrors.CodeInvalidArgument, "invalid order_by direction: "+parts[1])
		}
	}
	return order, nil
}
