package services

import (
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
)

// DashboardSummary counts completed deliveries by destination region. Central
// is further split by the first letter of the destination location name.
type DashboardSummary struct {
	CentralTotal int
	CentralAE    int
	CentralFM    int
	CentralNW    int
	East         int
	West         int
}

// DashboardAggregator builds the regional completion summary.
//
// Example usage:
//
//	summary := services.NewDashboardAggregator().Summarize(orders, ledger, directory)
//	fmt.Println(summary.CentralTotal, summary.East, summary.West)
type DashboardAggregator struct{}

func NewDashboardAggregator() DashboardAggregator {
	return DashboardAggregator{}
}

// Summarize scans Complete records of every user. Records whose order,
// destination location or district cannot be resolved are skipped.
// Central names starting with X, Y, Z or without letters count only towards
// CentralTotal.
func (DashboardAggregator) Summarize(
	orders []*order.Order,
	ledger *delivery.Ledger,
	dir network.Directory,
) DashboardSummary {
	byNumber := order.Index(orders)
	var out DashboardSummary

	for _, d := range ledger.WithStatus(delivery.Complete) {
		o, ok := byNumber[d.OrderNumber()]
		if !ok {
			continue
		}
		region, ok := dir.RegionOf(o.DestinationID())
		if !ok {
			continue
		}

		switch region {
		case network.East:
			out.East++
		case network.West:
			out.West++
		case network.Central:
			out.CentralTotal++
			destination, _ := dir.Location(o.DestinationID())
			initial, hasLetter := destination.Initial()
			if !hasLetter {
				continue
			}
			switch {
			case initial >= 'A' && initial <= 'E':
				out.CentralAE++
			case initial >= 'F' && initial <= 'M':
				out.CentralFM++
			case initial >= 'N' && initial <= 'W':
				out.CentralNW++
			}
		case network.UnknownRegion:
		}
	}

	return out
}
