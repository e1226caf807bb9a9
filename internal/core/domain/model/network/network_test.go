package network_test

import (
	"testing"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	testCases := map[string]network.Region{
		"East":    network.East,
		"central": network.Central,
		" WEST ":  network.West,
		"cEnTrAl": network.Central,
	}

	for raw, expected := range testCases {
		t.Run("should parse "+raw, func(t *testing.T) {
			region, err := network.ParseRegion(raw)

			require.NoError(t, err)
			assert.Equal(t, expected, region)
		})
	}

	t.Run("should reject unknown region", func(t *testing.T) {
		_, err := network.ParseRegion("north")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"north" is not a valid region`)
	})
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "Central", network.Central.String())
	assert.Equal(t, "Unknown", network.Region(42).String())
	require.Error(t, network.UnknownRegion.Validate())
}

func TestNewDistrict(t *testing.T) {
	t.Run("should create district", func(t *testing.T) {
		d, err := network.NewDistrict(1, "Harbor", network.East)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, kernel.ID(1), d.ID())
		assert.Equal(t, "Harbor", d.Name())
		assert.Equal(t, network.East, d.Region())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		d, err := network.NewDistrict(0, " ", network.UnknownRegion)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "district id")
		assert.NotContains(t, err.Error(), "district name")
		assert.Contains(t, err.Error(), "region is invalid")
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var d network.District

		require.ErrorIs(t, d.Validate(), network.ErrDistrictIsNotConstructed)
	})
}

func TestNewLocation(t *testing.T) {
	t.Run("should create location", func(t *testing.T) {
		l, err := network.NewLocation(10, "Dock 4", 1, true)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, kernel.ID(1), l.DistrictID())
		assert.True(t, l.IsPhysical())
	})

	t.Run("should reject missing district", func(t *testing.T) {
		_, err := network.NewLocation(10, "Dock 4", 0, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should find initial after leading digits", func(t *testing.T) {
		l, err := network.NewLocation(10, "42 maple yard", 1, true)
		require.NoError(t, err)

		initial, ok := l.Initial()

		assert.True(t, ok)
		assert.Equal(t, 'M', initial)
	})

	t.Run("should accept blank name", func(t *testing.T) {
		l, err := network.NewLocation(10, "", 1, false)

		require.NoError(t, err)
		assert.Empty(t, l.Name())
	})

	t.Run("should uppercase only ascii initials", func(t *testing.T) {
		testCases := map[string]rune{
			"ſtation": 'ſ',
			"ılgaz":   'ı',
			"élan":    'é',
			"zinc":    'Z',
		}

		for name, expected := range testCases {
			l, err := network.NewLocation(10, name, 1, true)
			require.NoError(t, err)

			initial, ok := l.Initial()

			assert.True(t, ok, name)
			assert.Equal(t, expected, initial, name)
		}
	})

	t.Run("should report missing initial", func(t *testing.T) {
		l, err := network.NewLocation(10, "1234", 1, true)
		require.NoError(t, err)

		_, ok := l.Initial()

		assert.False(t, ok)
	})
}

func TestNewDeliveryCategory(t *testing.T) {
	c, err := network.NewDeliveryCategory(3, "Fragile")
	require.NoError(t, err)
	assert.Equal(t, "Fragile", c.Name())

	_, err = network.NewDeliveryCategory(0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery category id")
	assert.NotContains(t, err.Error(), "delivery category name")

	blank, err := network.NewDeliveryCategory(4, "")
	require.NoError(t, err)
	assert.Empty(t, blank.Name())
}

func TestDirectory(t *testing.T) {
	central, _ := network.NewDistrict(1, "Core", network.Central)
	west, _ := network.NewDistrict(2, "Rim", network.West)
	dock, _ := network.NewLocation(10, "Dock", 1, true)
	barn, _ := network.NewLocation(20, "Barn", 2, true)
	orphan, _ := network.NewLocation(30, "Orphan", 9, true)

	dir := network.NewDirectory(
		[]*network.District{central, west},
		[]*network.Location{dock, barn, orphan},
	)

	assert.True(t, dir.InDistrict(10, 1))
	assert.False(t, dir.InDistrict(20, 1))
	assert.False(t, dir.InDistrict(99, 1))

	region, ok := dir.RegionOf(20)
	assert.True(t, ok)
	assert.Equal(t, network.West, region)

	_, ok = dir.RegionOf(30)
	assert.False(t, ok)
	_, ok = dir.RegionOf(99)
	assert.False(t, ok)
}
