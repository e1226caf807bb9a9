package queries

import (
	"errors"

	"deliverydesk/internal/core/ports"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrExportCollectionQueryIsNotConstructed = errors.New(
		"ExportCollectionQuery must be created via NewExportCollectionQuery constructor",
	)
)

// ExportCollectionQuery reads one stored collection as a raw JSON array.
type ExportCollectionQuery struct {
	collection ports.Collection

	guard guard.ConstructorGuard
}

func NewExportCollectionQuery(collection ports.Collection) (ExportCollectionQuery, error) {
	if err := collection.Validate(); err != nil {
		return ExportCollectionQuery{}, err
	}

	return ExportCollectionQuery{collection: collection, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportCollectionQuery) Validate() error {
	return q.guard.Validate(ErrExportCollectionQueryIsNotConstructed)
}

func (q ExportCollectionQuery) Collection() ports.Collection {
	return q.collection
}
