package queries

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var (
	ErrGetSchemaVersionQueryIsNotConstructed = errors.New(
		"GetSchemaVersionQuery must be created via NewGetSchemaVersionQuery constructor",
	)
)

type GetSchemaVersionQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSchemaVersionQuery() GetSchemaVersionQuery {
	return GetSchemaVersionQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSchemaVersionQuery) Validate() error {
	return q.guard.Validate(ErrGetSchemaVersionQueryIsNotConstructed)
}
