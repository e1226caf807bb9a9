package queries

import (
	"context"

	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/core/ports"
)

// QueryOrdersQueryHandler filters, projects, searches, sorts and pages the
// order catalog.
type QueryOrdersQueryHandler struct {
	repo   ports.CatalogRepository
	engine services.OrderQuery
}

func NewQueryOrdersQueryHandler(repo ports.CatalogRepository, engine services.OrderQuery) QueryOrdersQueryHandler {
	return QueryOrdersQueryHandler{repo: repo, engine: engine}
}

func (h QueryOrdersQueryHandler) Handle(ctx context.Context, query QueryOrdersQuery) (QueryOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QueryOrdersQueryResponse{}, err
	}

	view, err := loadCatalogView(ctx, h.repo)
	if err != nil {
		return QueryOrdersQueryResponse{}, err
	}

	result := h.engine.Query(services.OrderQueryInput{
		Orders:    view.orders,
		Ledger:    view.ledger,
		Directory: view.directory,
		Filter:    query.Filter(),
		Search:    query.Search(),
		SortKey:   query.SortKey(),
		SortDir:   query.SortDir(),
		Page:      query.Page(),
		PerPage:   query.PerPage(),
	})

	return QueryOrdersQueryResponse{
		Total:   result.Total,
		Page:    max(query.Page(), 1),
		PerPage: query.PerPage(),
		Items:   result.Items,
	}, nil
}
