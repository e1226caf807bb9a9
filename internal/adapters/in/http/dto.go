package http

import (
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/services"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the body of a successful command.
type Message struct {
	Message string `json:"message"`
}

type commentRequest struct {
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

type storeDeliveryRequest struct {
	LocationID uint64  `json:"location_id" validate:"required,gt=0"`
	Comment    *string `json:"comment" validate:"omitempty,max=500"`
}

type bulkRequest struct {
	OrderNumbers []uint64 `json:"order_numbers" validate:"dive,gt=0"`
}

// OrderListItem is one row of GET /api/v1/orders.
type OrderListItem struct {
	Number             uint64  `json:"number"`
	Name               string  `json:"name"`
	ClientID           uint64  `json:"client_id"`
	DestinationID      uint64  `json:"destination_id"`
	DeliveryCategoryID uint64  `json:"delivery_category_id"`
	MaxLikes           float64 `json:"max_likes"`
	Weight             float64 `json:"weight"`
	DeliveryStatus     *string `json:"delivery_status"`
	IsCompleted        bool    `json:"is_completed"`
}

type OrderPage struct {
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	Items   []OrderListItem `json:"items"`
}

type DashboardSummary struct {
	CentralTotal int `json:"central_total"`
	CentralAE    int `json:"central_a_e"`
	CentralFM    int `json:"central_f_m"`
	CentralNW    int `json:"central_n_w"`
	East         int `json:"east"`
	West         int `json:"west"`
}

type SchemaVersion struct {
	Version string `json:"version"`
}

var statusNames = map[delivery.Status]string{
	delivery.InProgress: "in_progress",
	delivery.Stored:     "stored",
	delivery.Complete:   "complete",
	delivery.Failed:     "failed",
	delivery.Lost:       "lost",
}

func orderPageFromResult(total, page, perPage int, items []services.OrderListItem) OrderPage {
	out := OrderPage{Total: total, Page: page, PerPage: perPage, Items: make([]OrderListItem, 0, len(items))}
	for _, item := range items {
		row := OrderListItem{
			Number:             uint64(item.Number),
			Name:               item.Name,
			ClientID:           uint64(item.ClientID),
			DestinationID:      uint64(item.DestinationID),
			DeliveryCategoryID: uint64(item.DeliveryCategoryID),
			MaxLikes:           item.MaxLikes,
			Weight:             item.Weight,
			IsCompleted:        item.IsCompleted,
		}
		if item.DeliveryStatus != nil {
			name := statusNames[*item.DeliveryStatus]
			row.DeliveryStatus = &name
		}
		out.Items = append(out.Items, row)
	}
	return out
}

func dashboardFromSummary(s services.DashboardSummary) DashboardSummary {
	return DashboardSummary{
		CentralTotal: s.CentralTotal,
		CentralAE:    s.CentralAE,
		CentralFM:    s.CentralFM,
		CentralNW:    s.CentralNW,
		East:         s.East,
		West:         s.West,
	}
}
