package commands

import (
	"errors"

	"deliverydesk/internal/core/ports"
	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrImportCollectionCommandIsNotConstructed = errors.New(
		"ImportCollectionCommand must be created via NewImportCollectionCommand constructor",
	)
)

// ImportCollectionCommand replaces one stored collection with a raw JSON array.
type ImportCollectionCommand struct { //nolint:recvcheck //using for validation
	collection ports.Collection
	raw        []byte

	guard guard.ConstructorGuard
}

func NewImportCollectionCommand(collection ports.Collection, raw []byte) (ImportCollectionCommand, error) {
	cmd := ImportCollectionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCollection(collection),
		cmd.setRaw(raw),
	); err != nil {
		return ImportCollectionCommand{}, err
	}

	return cmd, nil
}

func (c ImportCollectionCommand) Validate() error {
	return c.guard.Validate(ErrImportCollectionCommandIsNotConstructed)
}

func (c ImportCollectionCommand) Collection() ports.Collection {
	return c.collection
}

func (c ImportCollectionCommand) Raw() []byte {
	return append([]byte(nil), c.raw...)
}

func (c *ImportCollectionCommand) setCollection(collection ports.Collection) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	c.collection = collection
	return nil
}

func (c *ImportCollectionCommand) setRaw(raw []byte) error {
	if len(raw) == 0 {
		return errs.NewValueIsRequiredError("json array")
	}

	c.raw = append([]byte(nil), raw...)
	return nil
}
