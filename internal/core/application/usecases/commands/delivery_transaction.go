package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/logger"
	"deliverydesk/internal/pkg/metrics"
)

// LifecycleDeps bundles what every delivery lifecycle handler needs.
// Logger and Metrics may be nil.
type LifecycleDeps struct {
	UoWFactory CatalogUoWFactory
	Lifecycle  services.DeliveryLifecycle
	Logger     *logger.Logger
	Metrics    *metrics.DeliveryMetrics
}

type transition func(orders []*order.Order, ledger *delivery.Ledger) (string, error)

// runTransition loads orders and deliveries, applies fn and saves the ledger
// in one unit of work. Nothing is written when fn fails.
func (d LifecycleDeps) runTransition(ctx context.Context, operation string, fields map[string]any, fn transition) (string, error) {
	log := d.Logger
	if log == nil {
		log = logger.Nop()
	}
	ctx = log.WithField(ctx, "operation", operation)
	if len(fields) > 0 {
		ctx = log.WithFields(ctx, fields)
	}

	msg, err := d.apply(ctx, fn)
	if err != nil {
		switch errs.KindOf(err) {
		case errs.KindPersistence, errs.KindInternal:
			d.Metrics.Observe(operation, metrics.OutcomeFailed)
			log.Error(ctx, "delivery command failed", err)
		case errs.KindValidation, errs.KindNotFound, errs.KindConflict:
			d.Metrics.Observe(operation, metrics.OutcomeRejected)
			log.Warn(ctx, "delivery command rejected", err)
		}
		return "", err
	}

	d.Metrics.Observe(operation, metrics.OutcomeOK)
	log.Info(log.WithField(ctx, "result", msg), "delivery command applied")
	return msg, nil
}

func (d LifecycleDeps) apply(ctx context.Context, fn transition) (string, error) {
	uow := d.UoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", storageError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	orders, err := repo.Orders(ctx)
	if err != nil {
		return "", storageError("load orders", err)
	}
	ledger, err := repo.Deliveries(ctx)
	if err != nil {
		return "", storageError("load deliveries", err)
	}

	msg, err := fn(orders, ledger)
	if err != nil {
		return "", err
	}

	if err = repo.SaveDeliveries(ctx, ledger); err != nil {
		return "", storageError("save deliveries", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return "", storageError("commit", err)
	}

	return msg, nil
}

// storageError wraps unclassified adapter errors as persistence failures and
// passes domain errors through.
func storageError(operation string, err error) error {
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	return errs.NewPersistenceError(operation, err)
}
