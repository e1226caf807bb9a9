package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/core/ports"
	"deliverydesk/internal/pkg/errs"
)

// Repository implements ports.CatalogRepository on top of a key-value store.
// Each collection is one JSON array under its own key.
type Repository struct {
	store ports.KeyValueStore
}

var _ ports.CatalogRepository = (*Repository)(nil)

// NewRepository creates a repository over the store.
func NewRepository(store ports.KeyValueStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Districts(ctx context.Context) ([]*network.District, error) {
	return load(ctx, r, ports.Districts, DistrictDTO.toDomain)
}

func (r *Repository) Locations(ctx context.Context) ([]*network.Location, error) {
	return load(ctx, r, ports.Locations, LocationDTO.toDomain)
}

func (r *Repository) DeliveryCategories(ctx context.Context) ([]*network.DeliveryCategory, error) {
	return load(ctx, r, ports.DeliveryCategories, DeliveryCategoryDTO.toDomain)
}

func (r *Repository) Orders(ctx context.Context) ([]*order.Order, error) {
	return load(ctx, r, ports.Orders, OrderDTO.toDomain)
}

func (r *Repository) Deliveries(ctx context.Context) (*delivery.Ledger, error) {
	records, err := load(ctx, r, ports.Deliveries, DeliveryDTO.toDomain)
	if err != nil {
		return nil, err
	}
	return delivery.NewLedger(records)
}

// SaveDeliveries replaces the stored delivery collection.
func (r *Repository) SaveDeliveries(ctx context.Context, ledger *delivery.Ledger) error {
	if ledger == nil {
		return errs.NewValueIsRequiredError("ledger")
	}

	records := ledger.All()
	dtos := make([]DeliveryDTO, 0, len(records))
	for _, d := range records {
		dtos = append(dtos, deliveryFromDomain(d))
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(ports.Deliveries), string(data))
}

// Import decodes raw leniently, validates every entry and stores the
// canonical encoding in place of the old collection. Reference collections
// also stamp CurrentSchemaVersion in the same write.
func (r *Repository) Import(ctx context.Context, collection ports.Collection, raw []byte) (int, error) {
	if err := collection.Validate(); err != nil {
		return 0, err
	}

	var (
		canonical []byte
		count     int
		err       error
	)
	switch collection {
	case ports.Districts:
		canonical, count, err = reencode(raw, DistrictDTO.toDomain, districtFromDomain, nil)
	case ports.Locations:
		canonical, count, err = reencode(raw, LocationDTO.toDomain, locationFromDomain, nil)
	case ports.DeliveryCategories:
		canonical, count, err = reencode(raw, DeliveryCategoryDTO.toDomain, deliveryCategoryFromDomain, nil)
	case ports.Orders:
		canonical, count, err = reencode(raw, OrderDTO.toDomain, orderFromDomain, order.ValidateCatalog)
	case ports.Deliveries:
		canonical, count, err = reencode(raw, DeliveryDTO.toDomain, deliveryFromDomain, validateLedger)
	}
	if err != nil {
		return 0, err
	}

	entries := map[string]string{Key(collection): string(canonical)}
	if collection.IsReference() {
		entries[SchemaVersionKey] = CurrentSchemaVersion
	}
	if err = r.store.SetMany(ctx, entries); err != nil {
		return 0, err
	}
	return count, nil
}

// Export returns the stored array verbatim, or "[]" when the key is absent.
func (r *Repository) Export(ctx context.Context, collection ports.Collection) (string, error) {
	if err := collection.Validate(); err != nil {
		return "", err
	}

	value, ok, err := r.store.Get(ctx, Key(collection))
	if err != nil {
		return "", err
	}
	if !ok {
		return emptyArray, nil
	}
	return value, nil
}

func (r *Repository) SchemaVersion(ctx context.Context) (string, error) {
	value, _, err := r.store.Get(ctx, SchemaVersionKey)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *Repository) SetSchemaVersion(ctx context.Context, version string) error {
	if strings.TrimSpace(version) == "" {
		return errs.NewValueIsRequiredError("schema version")
	}
	return r.store.Set(ctx, SchemaVersionKey, version)
}

func (r *Repository) checkVersion(ctx context.Context) error {
	version, err := r.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if version != "" && version != CurrentSchemaVersion {
		return errs.NewVersionIsInvalidErrorWithCause(
			"schema version",
			fmt.Errorf("stored version %q, supported %q", version, CurrentSchemaVersion),
		)
	}
	return nil
}

func load[D any, T any](
	ctx context.Context,
	r *Repository,
	collection ports.Collection,
	toDomain func(D) (T, error),
) ([]T, error) {
	if err := r.checkVersion(ctx); err != nil {
		return nil, err
	}

	value, ok, err := r.store.Get(ctx, Key(collection))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	items, err := decode([]byte(value), toDomain)
	if err != nil {
		return nil, fmt.Errorf("stored %s: %w", collection, err)
	}
	return items, nil
}

// decode parses a JSON array and converts every entry. Entry errors are
// joined so a bad import reports all offending positions at once.
func decode[D any, T any](raw []byte, toDomain func(D) (T, error)) ([]T, error) {
	var dtos []D
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("json array", err)
	}

	items := make([]T, 0, len(dtos))
	var entryErrs []error
	for i, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			entryErrs = append(entryErrs, fmt.Errorf("[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if len(entryErrs) > 0 {
		return nil, errors.Join(entryErrs...)
	}
	return items, nil
}

func reencode[D any, T any](
	raw []byte,
	toDomain func(D) (T, error),
	fromDomain func(T) D,
	validate func([]T) error,
) ([]byte, int, error) {
	items, err := decode(raw, toDomain)
	if err != nil {
		return nil, 0, err
	}
	if validate != nil {
		if err = validate(items); err != nil {
			return nil, 0, err
		}
	}

	dtos := make([]D, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, fromDomain(item))
	}
	data, err := json.Marshal(dtos)
	if err != nil {
		return nil, 0, err
	}
	return data, len(items), nil
}

func validateLedger(records []*delivery.Delivery) error {
	_, err := delivery.NewLedger(records)
	return err
}
