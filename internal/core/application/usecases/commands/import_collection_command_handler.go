package commands

import (
	"context"
	"fmt"

	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/logger"
)

// ImportCollectionCommandHandler validates and stores a whole collection.
// Reference collections also stamp the schema version.
type ImportCollectionCommandHandler struct {
	uowFactory CatalogUoWFactory
	log        *logger.Logger
}

// NewImportCollectionCommandHandler falls back to a no-op logger when log is nil.
func NewImportCollectionCommandHandler(uowFactory CatalogUoWFactory, log *logger.Logger) ImportCollectionCommandHandler {
	if log == nil {
		log = logger.Nop()
	}

	return ImportCollectionCommandHandler{uowFactory: uowFactory, log: log}
}

// Handle returns "imported N <collection>".
func (h *ImportCollectionCommandHandler) Handle(ctx context.Context, cmd ImportCollectionCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	ctx = h.log.WithFields(ctx, map[string]any{
		"operation":  "import_collection",
		"collection": string(cmd.Collection()),
	})

	count, err := h.importRaw(ctx, cmd)
	if err != nil {
		if errs.KindOf(err) == errs.KindPersistence {
			h.log.Error(ctx, "collection import failed", err)
		} else {
			h.log.Warn(ctx, "collection import rejected", err)
		}
		return "", err
	}

	h.log.Info(h.log.WithField(ctx, "count", count), "collection imported")
	return fmt.Sprintf("imported %d %s", count, cmd.Collection()), nil
}

func (h *ImportCollectionCommandHandler) importRaw(ctx context.Context, cmd ImportCollectionCommand) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, storageError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.CatalogRepository().Import(ctx, cmd.Collection(), cmd.Raw())
	if err != nil {
		return 0, storageError("import "+string(cmd.Collection()), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, storageError("commit", err)
	}

	return count, nil
}
