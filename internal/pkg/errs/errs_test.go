package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"deliverydesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "42")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("no active delivery")
		err := errs.NewObjectNotFoundErrorWithCause("delivery", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: delivery, ID is: 42 (cause: no active delivery)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown alias"))

		assert.Equal(t, "value is invalid: status (cause: unknown alias)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("comment length", 501, 0, 500)

		assert.Equal(t, 501, err.Value)
		assert.Equal(t, "value is invalid: 501 is comment length, min value is 0, max value is 500", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("per page", 500, 0, 100, errors.New("too large"))

		assert.Equal(t,
			"value is invalid: 500 is per page, min value is 0, max value is 100 (cause: too large)",
			err.Error())
	})

	t.Run("should replace newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("comment", "left at\ngate", 0, 10)

		assert.Contains(t, err.Error(), "left at gate")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("order number")
	assert.Equal(t, "value is required: order number", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("location id", errors.New("zero id"))
	assert.Equal(t, "value is required: location id (cause: zero id)", withCause.Error())
	assert.Equal(t, errs.ErrValueIsRequired, withCause.Unwrap())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidErrorWithCause("schema version", errors.New("7 is not supported"))

	assert.Equal(t, "version is invalid: schema version (cause: 7 is not supported)", err.Error())
	assert.Equal(t, "version is invalid: schema version", errs.NewVersionIsInvalidError("schema version").Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestStateConflictError(t *testing.T) {
	err := errs.NewStateConflictError("can only store an in-progress delivery")

	assert.Equal(t, "can only store an in-progress delivery", err.Error())
	require.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewPersistenceError("save deliveries", cause)

	assert.Equal(t, "persistence failure: save deliveries (cause: connection refused)", err.Error())
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected errs.Kind
	}{
		{"nil", nil, errs.KindInternal},
		{"plain", errors.New("boom"), errs.KindInternal},
		{"not found", errs.NewObjectNotFoundError("order", 1), errs.KindNotFound},
		{"conflict", errs.NewStateConflictError("x"), errs.KindConflict},
		{"required", errs.NewValueIsRequiredError("x"), errs.KindValidation},
		{"invalid", errs.NewValueIsInvalidError("x"), errs.KindValidation},
		{"out of range", errs.NewValueIsOutOfRangeError("x", 1, 0, 0), errs.KindValidation},
		{"version", errs.NewVersionIsInvalidError("x"), errs.KindValidation},
		{"persistence", errs.NewPersistenceError("x", nil), errs.KindPersistence},
		{"wrapped", fmt.Errorf("take: %w", errs.NewStateConflictError("x")), errs.KindConflict},
		{"joined", errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsInvalidError("b")), errs.KindValidation},
	}

	for _, tc := range testCases {
		t.Run("should classify "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.KindOf(tc.err))
		})
	}
}
