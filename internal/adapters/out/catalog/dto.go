package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/pkg/errs"
)

// DistrictDTO is the stored shape of a district.
type DistrictDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

func districtFromDomain(d *network.District) DistrictDTO {
	return DistrictDTO{ID: uint64(d.ID()), Name: d.Name(), Region: d.Region().String()}
}

func (dto DistrictDTO) toDomain() (*network.District, error) {
	region, err := network.ParseRegion(dto.Region)
	if err != nil {
		return nil, err
	}
	return network.NewDistrict(kernel.ID(dto.ID), dto.Name, region)
}

// LocationDTO is the stored shape of a location. On input is_physical may be
// a boolean, a number or a yes/no string.
type LocationDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	DistrictID uint64 `json:"district_id"`
	IsPhysical bool   `json:"is_physical"`
}

func (dto *LocationDTO) UnmarshalJSON(data []byte) error {
	type plain LocationDTO
	var aux struct {
		plain
		IsPhysical json.RawMessage `json:"is_physical"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	isPhysical, err := kernel.ParseFlag(aux.IsPhysical)
	if err != nil {
		return fmt.Errorf("is_physical: %w", err)
	}

	*dto = LocationDTO(aux.plain)
	dto.IsPhysical = isPhysical
	return nil
}

func locationFromDomain(l *network.Location) LocationDTO {
	return LocationDTO{
		ID:         uint64(l.ID()),
		Name:       l.Name(),
		DistrictID: uint64(l.DistrictID()),
		IsPhysical: l.IsPhysical(),
	}
}

func (dto LocationDTO) toDomain() (*network.Location, error) {
	return network.NewLocation(kernel.ID(dto.ID), dto.Name, kernel.ID(dto.DistrictID), dto.IsPhysical)
}

// DeliveryCategoryDTO is the stored shape of a delivery category.
type DeliveryCategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func deliveryCategoryFromDomain(c *network.DeliveryCategory) DeliveryCategoryDTO {
	return DeliveryCategoryDTO{ID: uint64(c.ID()), Name: c.Name()}
}

func (dto DeliveryCategoryDTO) toDomain() (*network.DeliveryCategory, error) {
	return network.NewDeliveryCategory(kernel.ID(dto.ID), dto.Name)
}

// OrderDTO is the stored shape of an order.
type OrderDTO struct {
	Number             uint64  `json:"number"`
	Name               string  `json:"name"`
	ClientID           uint64  `json:"client_id"`
	DestinationID      uint64  `json:"destination_id"`
	DeliveryCategoryID uint64  `json:"delivery_category_id"`
	MaxLikes           float64 `json:"max_likes"`
	Weight             float64 `json:"weight"`
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		Number:             uint64(o.Number()),
		Name:               o.Name(),
		ClientID:           uint64(o.ClientID()),
		DestinationID:      uint64(o.DestinationID()),
		DeliveryCategoryID: uint64(o.DeliveryCategoryID()),
		MaxLikes:           o.MaxLikes(),
		Weight:             o.Weight(),
	}
}

func (dto OrderDTO) toDomain() (*order.Order, error) {
	return order.NewOrder(kernel.ID(dto.Number), order.Attributes{
		Name:               dto.Name,
		ClientID:           kernel.ID(dto.ClientID),
		DestinationID:      kernel.ID(dto.DestinationID),
		DeliveryCategoryID: kernel.ID(dto.DeliveryCategoryID),
		MaxLikes:           dto.MaxLikes,
		Weight:             dto.Weight,
	})
}

// DeliveryDTO is the stored shape of a delivery record.
//
// Decoding accepts order_id, orderNumber and order-number for order_number,
// any status spelling understood by delivery.ParseStatus, and several
// timestamp layouts. Encoding always writes order_number, the legacy status
// names (InProgress, STORED, COMPLETE, FAILED, LOST) and RFC 3339 times.
type DeliveryDTO struct {
	ID          uint64  `json:"id"`
	OrderNumber uint64  `json:"order_number"`
	Status      string  `json:"status"`
	LocationID  *uint64 `json:"location_id"`
	StartedAt   *string `json:"started_at"`
	EndedAt     *string `json:"ended_at"`
	Comment     *string `json:"comment"`
	UserID      *uint64 `json:"user_id"`
}

func (dto *DeliveryDTO) UnmarshalJSON(data []byte) error {
	type plain DeliveryDTO
	var aux struct {
		plain
		OrderID         *uint64 `json:"order_id"`
		OrderNumberCC   *uint64 `json:"orderNumber"`
		OrderNumberDash *uint64 `json:"order-number"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*dto = DeliveryDTO(aux.plain)
	if dto.OrderNumber == 0 {
		for _, alias := range []*uint64{aux.OrderID, aux.OrderNumberCC, aux.OrderNumberDash} {
			if alias != nil {
				dto.OrderNumber = *alias
				break
			}
		}
	}
	return nil
}

var legacyStatusNames = map[delivery.Status]string{
	delivery.InProgress: "InProgress",
	delivery.Stored:     "STORED",
	delivery.Complete:   "COMPLETE",
	delivery.Failed:     "FAILED",
	delivery.Lost:       "LOST",
}

func deliveryFromDomain(d *delivery.Delivery) DeliveryDTO {
	s := d.Snapshot()
	return DeliveryDTO{
		ID:          uint64(s.ID),
		OrderNumber: uint64(s.OrderNumber),
		Status:      legacyStatusNames[s.Status],
		LocationID:  rawID(s.LocationID),
		StartedAt:   formatTime(s.StartedAt),
		EndedAt:     formatTime(s.EndedAt),
		Comment:     s.Comment,
		UserID:      rawID(s.UserID),
	}
}

func (dto DeliveryDTO) toDomain() (*delivery.Delivery, error) {
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	startedAt, err := parseTime("started_at", dto.StartedAt)
	if err != nil {
		return nil, err
	}
	endedAt, err := parseTime("ended_at", dto.EndedAt)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.Snapshot{
		ID:          kernel.ID(dto.ID),
		OrderNumber: kernel.ID(dto.OrderNumber),
		Status:      status,
		LocationID:  kernel.OptionalID(dto.LocationID),
		StartedAt:   startedAt,
		EndedAt:     endedAt,
		Comment:     dto.Comment,
		UserID:      kernel.OptionalID(dto.UserID),
	})
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime reads a timestamp; layouts without a zone are taken as UTC.
// Unix seconds are accepted bare or with an "s" suffix ("1700000000s").
func parseTime(paramName string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	if seconds, err := strconv.ParseInt(strings.TrimSuffix(value, "s"), 10, 64); err == nil {
		t := time.Unix(seconds, 0).UTC()
		return &t, nil
	}
	return nil, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not a timestamp", value))
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func rawID(id *kernel.ID) *uint64 {
	if id == nil {
		return nil
	}
	raw := uint64(*id)
	return &raw
}
