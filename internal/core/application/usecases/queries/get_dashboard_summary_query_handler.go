package queries

import (
	"context"

	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/core/ports"
)

// GetDashboardSummaryQueryHandler aggregates Complete deliveries of every
// user by destination region.
//
// Example:
//
//	handler := NewGetDashboardSummaryQueryHandler(repo, services.NewDashboardAggregator())
//	summary, err := handler.Handle(ctx, NewGetDashboardSummaryQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(summary.CentralTotal, summary.East, summary.West)
type GetDashboardSummaryQueryHandler struct {
	repo       ports.CatalogRepository
	aggregator services.DashboardAggregator
}

func NewGetDashboardSummaryQueryHandler(
	repo ports.CatalogRepository,
	aggregator services.DashboardAggregator,
) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{repo: repo, aggregator: aggregator}
}

func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (services.DashboardSummary, error) {
	if err := query.Validate(); err != nil {
		return services.DashboardSummary{}, err
	}

	view, err := loadCatalogView(ctx, h.repo)
	if err != nil {
		return services.DashboardSummary{}, err
	}

	return h.aggregator.Summarize(view.orders, view.ledger, view.directory), nil
}
