package queries

import (
	"errors"

	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

// Paging limits applied at the boundary.
const (
	DefaultPage    = 1
	DefaultPerPage = 25
	MaxPerPage     = 100
)

var (
	ErrQueryOrdersQueryIsNotConstructed = errors.New(
		"QueryOrdersQuery must be created via NewQueryOrdersQuery constructor",
	)
)

// QueryOrdersQuery lists orders for the current user.
//
// Example:
//
//	query, err := NewQueryOrdersQuery(services.OrdersFilter{}, "", services.SortByName, services.Descending, 1, 25)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d orders\n", len(resp.Items), resp.Total)
type QueryOrdersQuery struct {
	filter  services.OrdersFilter
	search  string
	sortKey services.SortKey
	sortDir services.SortDirection
	page    int
	perPage int

	guard guard.ConstructorGuard
}

// NewQueryOrdersQuery rejects perPage outside [0, MaxPerPage]. Pages below 1
// are read as page 1.
func NewQueryOrdersQuery(
	filter services.OrdersFilter,
	search string,
	sortKey services.SortKey,
	sortDir services.SortDirection,
	page, perPage int,
) (QueryOrdersQuery, error) {
	if perPage < 0 || perPage > MaxPerPage {
		return QueryOrdersQuery{}, errs.NewValueIsOutOfRangeError("per page", perPage, 0, MaxPerPage)
	}

	return QueryOrdersQuery{
		filter:  filter,
		search:  search,
		sortKey: sortKey,
		sortDir: sortDir,
		page:    page,
		perPage: perPage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q QueryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrQueryOrdersQueryIsNotConstructed)
}

func (q QueryOrdersQuery) Filter() services.OrdersFilter {
	return q.filter
}

func (q QueryOrdersQuery) Search() string {
	return q.search
}

func (q QueryOrdersQuery) SortKey() services.SortKey {
	return q.sortKey
}

func (q QueryOrdersQuery) SortDir() services.SortDirection {
	return q.sortDir
}

func (q QueryOrdersQuery) Page() int {
	return q.page
}

func (q QueryOrdersQuery) PerPage() int {
	return q.perPage
}

// QueryOrdersQueryResponse is one page of list items and the number of
// matches before paging.
type QueryOrdersQueryResponse struct {
	Total   int
	Page    int
	PerPage int
	Items   []services.OrderListItem
}
