package http

import (
	"errors"

	"deliverydesk/internal/core/application/usecases/queries"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// parseOrdersQuery reads the list parameters of GET /api/v1/orders:
//
//	district_id, client_id, destination_id, delivery_category_id
//	delivery_status  in_progress|stored|complete|failed|lost|any|none
//	completed        true|false
//	search, sort (number|name|weight|max_likes), dir (asc|desc)
//	page (default 1), per_page (default 25, at most 100)
func parseOrdersQuery(c echo.Context) (queries.QueryOrdersQuery, error) {
	var (
		filter  services.OrdersFilter
		search  string
		sortRaw string
		dirRaw  string
		status  string
		page    = queries.DefaultPage
		perPage = queries.DefaultPerPage
	)

	b := echo.QueryParamsBinder(c)
	bindOptionalID(c, b, "district_id", &filter.DistrictID)
	bindOptionalID(c, b, "client_id", &filter.ClientID)
	bindOptionalID(c, b, "destination_id", &filter.DestinationID)
	bindOptionalID(c, b, "delivery_category_id", &filter.DeliveryCategoryID)
	if c.QueryParam("completed") != "" {
		var completed bool
		b.Bool("completed", &completed)
		filter.Completion = &completed
	}
	b.String("delivery_status", &status).
		String("search", &search).
		String("sort", &sortRaw).
		String("dir", &dirRaw).
		Int("page", &page).
		Int("per_page", &perPage)

	if err := b.BindError(); err != nil {
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) && len(bindErr.Field) > 0 {
			return queries.QueryOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(bindErr.Field, err)
		}
		return queries.QueryOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("query", err)
	}

	if status != "" {
		parsed, err := services.ParseDeliveryStatusFilter(status)
		if err != nil {
			return queries.QueryOrdersQuery{}, err
		}
		filter.DeliveryStatus = &parsed
	}

	sortKey, err := services.ParseSortKey(sortRaw)
	if err != nil {
		return queries.QueryOrdersQuery{}, err
	}
	sortDir, err := services.ParseSortDirection(dirRaw)
	if err != nil {
		return queries.QueryOrdersQuery{}, err
	}

	return queries.NewQueryOrdersQuery(filter, search, sortKey, sortDir, page, perPage)
}

func bindOptionalID(c echo.Context, b *echo.ValueBinder, name string, dest **kernel.ID) {
	if c.QueryParam(name) == "" {
		return
	}
	var raw uint64
	b.Uint64(name, &raw)
	id := kernel.ID(raw)
	*dest = &id
}
