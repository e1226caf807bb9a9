package network

import "deliverydesk/internal/core/domain/model/kernel"

// Directory indexes districts and locations by id for lookups during
// filtering and aggregation. Later duplicates overwrite earlier ones.
type Directory struct {
	districts map[kernel.ID]*District
	locations map[kernel.ID]*Location
}

// NewDirectory builds the lookup tables.
func NewDirectory(districts []*District, locations []*Location) Directory {
	dir := Directory{
		districts: make(map[kernel.ID]*District, len(districts)),
		locations: make(map[kernel.ID]*Location, len(locations)),
	}
	for _, d := range districts {
		dir.districts[d.ID()] = d
	}
	for _, l := range locations {
		dir.locations[l.ID()] = l
	}
	return dir
}

func (d Directory) Location(id kernel.ID) (*Location, bool) {
	l, ok := d.locations[id]
	return l, ok
}

func (d Directory) District(id kernel.ID) (*District, bool) {
	dist, ok := d.districts[id]
	return dist, ok
}

// InDistrict reports whether the location exists and belongs to the district.
func (d Directory) InDistrict(locationID, districtID kernel.ID) bool {
	l, ok := d.locations[locationID]
	return ok && l.DistrictID() == districtID
}

// RegionOf resolves location -> district -> region.
func (d Directory) RegionOf(locationID kernel.ID) (Region, bool) {
	l, ok := d.locations[locationID]
	if !ok {
		return UnknownRegion, false
	}
	dist, ok := d.districts[l.DistrictID()]
	if !ok {
		return UnknownRegion, false
	}
	return dist.Region(), true
}
