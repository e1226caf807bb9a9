// Package queries contains read-only operations over the stored collections.
// Handlers never write; every query reads straight from a CatalogRepository.
package queries

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/core/ports"
	"deliverydesk/internal/pkg/errs"
)

// catalogView is everything the order list and the dashboard read.
type catalogView struct {
	orders    []*order.Order
	ledger    *delivery.Ledger
	directory network.Directory
}

func loadCatalogView(ctx context.Context, repo ports.CatalogRepository) (catalogView, error) {
	orders, err := repo.Orders(ctx)
	if err != nil {
		return catalogView{}, readError("load orders", err)
	}
	ledger, err := repo.Deliveries(ctx)
	if err != nil {
		return catalogView{}, readError("load deliveries", err)
	}
	districts, err := repo.Districts(ctx)
	if err != nil {
		return catalogView{}, readError("load districts", err)
	}
	locations, err := repo.Locations(ctx)
	if err != nil {
		return catalogView{}, readError("load locations", err)
	}

	return catalogView{
		orders:    orders,
		ledger:    ledger,
		directory: network.NewDirectory(districts, locations),
	}, nil
}

func readError(operation string, err error) error {
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	return errs.NewPersistenceError(operation, err)
}
