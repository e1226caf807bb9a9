package network

import (
	"fmt"
	"strings"

	"deliverydesk/internal/pkg/errs"
)

// Region groups districts and drives dashboard bucketing.
type Region int

const (
	// UnknownRegion catches uninitialized values.
	UnknownRegion Region = iota
	East
	Central
	West
)

func getRegionStrings() map[Region]string {
	return map[Region]string{
		UnknownRegion: "Unknown",
		East:          "East",
		Central:       "Central",
		West:          "West",
	}
}

// String returns the canonical region name.
func (r Region) String() string {
	if str, ok := getRegionStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate accepts East, Central and West.
func (r Region) Validate() error {
	if r != East && r != Central && r != West {
		return errs.NewValueIsInvalidErrorWithCause("region is invalid", fmt.Errorf("%d is not a valid region", r))
	}
	return nil
}

// ParseRegion matches region names case-insensitively.
func ParseRegion(raw string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "east":
		return East, nil
	case "central":
		return Central, nil
	case "west":
		return West, nil
	}
	return UnknownRegion, errs.NewValueIsInvalidErrorWithCause(
		"region is invalid",
		fmt.Errorf("%q is not a valid region", raw),
	)
}
