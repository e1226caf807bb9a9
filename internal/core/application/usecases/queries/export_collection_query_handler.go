package queries

import (
	"context"

	"deliverydesk/internal/core/ports"
)

// ExportCollectionQueryHandler returns the stored JSON array, "[]" when the
// collection was never imported.
type ExportCollectionQueryHandler struct {
	repo ports.CatalogRepository
}

func NewExportCollectionQueryHandler(repo ports.CatalogRepository) ExportCollectionQueryHandler {
	return ExportCollectionQueryHandler{repo: repo}
}

func (h ExportCollectionQueryHandler) Handle(ctx context.Context, query ExportCollectionQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	raw, err := h.repo.Export(ctx, query.Collection())
	if err != nil {
		return "", readError("export "+string(query.Collection()), err)
	}

	return raw, nil
}
