package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/pkg/errs"
)

// DeliveryStatusFilter narrows orders by the statuses of their delivery
// records. It looks at every user's records.
type DeliveryStatusFilter int

const (
	StatusFilterUnknown DeliveryStatusFilter = iota
	StatusFilterInProgress
	StatusFilterStored
	StatusFilterComplete
	StatusFilterFailed
	StatusFilterLost
	// StatusFilterAny keeps orders with at least one record.
	StatusFilterAny
	// StatusFilterNone keeps orders without any record.
	StatusFilterNone
)

var statusFilterNames = map[DeliveryStatusFilter]string{
	StatusFilterInProgress: "in_progress",
	StatusFilterStored:     "stored",
	StatusFilterComplete:   "complete",
	StatusFilterFailed:     "failed",
	StatusFilterLost:       "lost",
	StatusFilterAny:        "any",
	StatusFilterNone:       "none",
}

func (f DeliveryStatusFilter) String() string {
	if name, ok := statusFilterNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseDeliveryStatusFilter reads the snake_case filter names.
func ParseDeliveryStatusFilter(raw string) (DeliveryStatusFilter, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for f, name := range statusFilterNames {
		if name == needle {
			return f, nil
		}
	}
	return StatusFilterUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status filter",
		fmt.Errorf("%q is not one of in_progress, stored, complete, failed, lost, any, none", raw),
	)
}

func (f DeliveryStatusFilter) status() (delivery.Status, bool) {
	switch f {
	case StatusFilterInProgress:
		return delivery.InProgress, true
	case StatusFilterStored:
		return delivery.Stored, true
	case StatusFilterComplete:
		return delivery.Complete, true
	case StatusFilterFailed:
		return delivery.Failed, true
	case StatusFilterLost:
		return delivery.Lost, true
	case StatusFilterUnknown, StatusFilterAny, StatusFilterNone:
	}
	return delivery.Unknown, false
}

// OrdersFilter is a conjunction of optional predicates. A nil field is not applied.
type OrdersFilter struct {
	// DistrictID keeps orders whose client or destination lies in the district.
	DistrictID         *kernel.ID
	ClientID           *kernel.ID
	DestinationID      *kernel.ID
	DeliveryCategoryID *kernel.ID
	DeliveryStatus     *DeliveryStatusFilter
	// Completion true keeps orders with a Complete record; false keeps the rest,
	// including orders without records.
	Completion *bool
}

// SortKey selects the attribute used for ordering list items.
type SortKey int

const (
	SortByNumber SortKey = iota
	SortByName
	SortByWeight
	SortByMaxLikes
)

// ParseSortKey reads number, name, weight and max_likes.
func ParseSortKey(raw string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "number":
		return SortByNumber, nil
	case "name":
		return SortByName, nil
	case "weight":
		return SortByWeight, nil
	case "max_likes", "maxlikes":
		return SortByMaxLikes, nil
	}
	return SortByNumber, errs.NewValueIsInvalidErrorWithCause(
		"sort key",
		fmt.Errorf("%q is not one of number, name, weight, max_likes", raw),
	)
}

// SortDirection is ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// ParseSortDirection reads asc and desc.
func ParseSortDirection(raw string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return Ascending, errs.NewValueIsInvalidErrorWithCause(
		"sort direction",
		fmt.Errorf("%q is not one of asc, desc", raw),
	)
}

// OrderListItem is an order annotated with the current user's delivery status.
type OrderListItem struct {
	Number             kernel.ID
	Name               string
	ClientID           kernel.ID
	DestinationID      kernel.ID
	DeliveryCategoryID kernel.ID
	MaxLikes           float64
	Weight             float64
	DeliveryStatus     *delivery.Status
	IsCompleted        bool
}

// OrderQueryInput bundles the collections and parameters of one query.
type OrderQueryInput struct {
	Orders    []*order.Order
	Ledger    *delivery.Ledger
	Directory network.Directory
	Filter    OrdersFilter
	Search    string
	SortKey   SortKey
	SortDir   SortDirection
	Page      int
	PerPage   int
}

// QueryResult carries the total number of matches and one page of them.
type QueryResult struct {
	Total int
	Items []OrderListItem
}

// OrderQuery answers list queries for one user.
type OrderQuery struct {
	userID kernel.ID
}

func NewOrderQuery(userID kernel.ID) (OrderQuery, error) {
	if err := userID.ValidateAs("user id"); err != nil {
		return OrderQuery{}, err
	}
	return OrderQuery{userID: userID}, nil
}

// Query runs filter, projection, search, sort and pagination in that order.
// Total counts the matches before pagination.
func (q OrderQuery) Query(in OrderQueryInput) QueryResult {
	filtered := FilterOrders(in.Orders, in.Ledger, in.Directory, in.Filter)
	items := q.Project(filtered, in.Ledger)
	items = SearchOrders(items, in.Search)
	SortOrders(items, in.SortKey, in.SortDir)
	total, page := Paginate(items, in.Page, in.PerPage)
	return QueryResult{Total: total, Items: page}
}

// FilterOrders applies every set predicate. Predicates are independent, so
// the order of application does not change the result.
func FilterOrders(
	orders []*order.Order,
	ledger *delivery.Ledger,
	dir network.Directory,
	f OrdersFilter,
) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if matchesFilter(o, ledger, dir, f) {
			out = append(out, o)
		}
	}
	return out
}

func matchesFilter(o *order.Order, ledger *delivery.Ledger, dir network.Directory, f OrdersFilter) bool {
	if f.DistrictID != nil &&
		!dir.InDistrict(o.ClientID(), *f.DistrictID) &&
		!dir.InDistrict(o.DestinationID(), *f.DistrictID) {
		return false
	}
	if f.ClientID != nil && o.ClientID() != *f.ClientID {
		return false
	}
	if f.DestinationID != nil && o.DestinationID() != *f.DestinationID {
		return false
	}
	if f.DeliveryCategoryID != nil && o.DeliveryCategoryID() != *f.DeliveryCategoryID {
		return false
	}
	if f.DeliveryStatus != nil && !matchesStatusFilter(o.Number(), ledger, *f.DeliveryStatus) {
		return false
	}
	if f.Completion != nil && ledger.HasStatus(o.Number(), delivery.Complete) != *f.Completion {
		return false
	}
	return true
}

func matchesStatusFilter(orderNumber kernel.ID, ledger *delivery.Ledger, f DeliveryStatusFilter) bool {
	switch f {
	case StatusFilterAny:
		return ledger.HasAny(orderNumber)
	case StatusFilterNone:
		return !ledger.HasAny(orderNumber)
	case StatusFilterUnknown, StatusFilterInProgress, StatusFilterStored,
		StatusFilterComplete, StatusFilterFailed, StatusFilterLost:
	}
	status, ok := f.status()
	return ok && ledger.HasStatus(orderNumber, status)
}

// Project maps orders to list items with the user's delivery status.
func (q OrderQuery) Project(orders []*order.Order, ledger *delivery.Ledger) []OrderListItem {
	items := make([]OrderListItem, 0, len(orders))
	for _, o := range orders {
		status, completed := q.CurrentStatus(ledger, o.Number())
		items = append(items, OrderListItem{
			Number:             o.Number(),
			Name:               o.Name(),
			ClientID:           o.ClientID(),
			DestinationID:      o.DestinationID(),
			DeliveryCategoryID: o.DeliveryCategoryID(),
			MaxLikes:           o.MaxLikes(),
			Weight:             o.Weight(),
			DeliveryStatus:     status,
			IsCompleted:        completed,
		})
	}
	return items
}

// CurrentStatus picks the status shown to the user for an order: the latest
// active record if any, otherwise Complete, Failed, then Lost. The flag
// reports whether the user has a Complete record.
func (q OrderQuery) CurrentStatus(ledger *delivery.Ledger, orderNumber kernel.ID) (*delivery.Status, bool) {
	var active *delivery.Status
	seen := make(map[delivery.Status]bool)

	for _, d := range ledger.ForOrder(orderNumber) {
		if !d.BelongsTo(q.userID) {
			continue
		}
		status := d.Status()
		if status.IsActive() {
			active = &status
			continue
		}
		seen[status] = true
	}

	if active != nil {
		return active, seen[delivery.Complete]
	}
	for _, status := range []delivery.Status{delivery.Complete, delivery.Failed, delivery.Lost} {
		if seen[status] {
			s := status
			return &s, status == delivery.Complete
		}
	}
	return nil, false
}

// SortOrders sorts in place. Ascending order is stable; descending reverses
// the ascending result, so ties come out in reverse.
func SortOrders(items []OrderListItem, key SortKey, dir SortDirection) {
	slices.SortStableFunc(items, func(a, b OrderListItem) int {
		switch key {
		case SortByName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortByWeight:
			return compareFloat(a.Weight, b.Weight)
		case SortByMaxLikes:
			return compareFloat(a.MaxLikes, b.MaxLikes)
		case SortByNumber:
		}
		return compareID(a.Number, b.Number)
	})

	if dir == Descending {
		slices.Reverse(items)
	}
}

// compareFloat treats incomparable values (NaN) as equal.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareID(a, b kernel.ID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SearchOrders keeps items whose name or decimal number contains the query,
// ignoring case. A blank query returns the input unchanged.
func SearchOrders(items []OrderListItem, query string) []OrderListItem {
	if strings.TrimSpace(query) == "" {
		return items
	}

	needle := strings.ToLower(query)
	out := make([]OrderListItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strconv.FormatUint(uint64(item.Number), 10), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Paginate returns the total and the requested 1-based page. Pages below 1
// behave like page 1; perPage 0 and pages past the end yield an empty page.
func Paginate[T any](items []T, page, perPage int) (int, []T) {
	total := len(items)
	if perPage <= 0 {
		return total, []T{}
	}
	if page < 1 {
		page = 1
	}

	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	if page-1 >= pages {
		return total, []T{}
	}

	start := (page - 1) * perPage

	end := min(start+perPage, total)
	return total, slices.Clone(items[start:end])
}
