package queries

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var (
	ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
		"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
	)
)

// GetDashboardSummaryQuery counts completed deliveries by region.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}
