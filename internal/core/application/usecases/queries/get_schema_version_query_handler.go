package queries

import (
	"context"

	"deliverydesk/internal/core/ports"
)

// GetSchemaVersionQueryHandler reports the stored schema version, "" when
// nothing was imported yet.
type GetSchemaVersionQueryHandler struct {
	repo ports.CatalogRepository
}

func NewGetSchemaVersionQueryHandler(repo ports.CatalogRepository) GetSchemaVersionQueryHandler {
	return GetSchemaVersionQueryHandler{repo: repo}
}

func (h GetSchemaVersionQueryHandler) Handle(ctx context.Context, query GetSchemaVersionQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	version, err := h.repo.SchemaVersion(ctx)
	if err != nil {
		return "", readError("schema version", err)
	}

	return version, nil
}
