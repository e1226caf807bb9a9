package http_test

import (
	"testing"

	deskhttp "deliverydesk/internal/adapters/in/http"
	"deliverydesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relabelRequest struct {
	LocationID uint64   `json:"location_id" validate:"required,gt=0"`
	Note       *string  `json:"note" validate:"omitempty,max=5"`
	Numbers    []uint64 `json:"numbers" validate:"dive,gt=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := deskhttp.NewValidator()
	long := "parcel"
	short := "dock"

	t.Run("should accept a valid request", func(t *testing.T) {
		require.NoError(t, v.Validate(&relabelRequest{LocationID: 3, Note: &short, Numbers: []uint64{1, 2}}))
	})

	testCases := []struct {
		name     string
		req      relabelRequest
		contains string
	}{
		{"missing location", relabelRequest{}, "location_id is required"},
		{"long note", relabelRequest{LocationID: 1, Note: &long}, "note must be at most 5 characters"},
		{"zero number", relabelRequest{LocationID: 1, Numbers: []uint64{4, 0}}, "numbers[1] must be greater than 0"},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}
