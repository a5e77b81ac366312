package domain

import "time"

// Kind addresses one persisted document.
type Kind string

const (
	KindClients  Kind = "clients"
	KindOrders   Kind = "orders"
	KindMessages Kind = "messages"
	KindSettings Kind = "settings"
)

// Kinds lists every persisted document kind.
var Kinds = []Kind{KindClients, KindOrders, KindMessages, KindSettings}

// Snapshot is one consistent view of the whole store. Collections keep
// insertion order. All derived figures are computed from a snapshot on
// demand; nothing here is cached.
type Snapshot struct {
	Clients  []Client
	Orders   []Order
	Messages []Message
	Settings Settings
}

// TotalRevenue sums order amounts, excluding exactly the canceled ones.
// Orders with a dangling client reference still count.
func (s Snapshot) TotalRevenue() float64 {
	var total float64
	for _, o := range s.Orders {
		if o.Status != OrderStatusCanceled {
			total += o.Amount
		}
	}
	return total
}

// OrdersInWindow counts orders created within the rolling window
// [now - days, now].
func (s Snapshot) OrdersInWindow(now time.Time, days int) int {
	window := time.Duration(days) * 24 * time.Hour
	count := 0
	for _, o := range s.Orders {
		age := now.Sub(o.CreatedAt)
		if age >= 0 && age <= window {
			count++
		}
	}
	return count
}

// SeriesPoint is one calendar-day bucket of the order chart.
type SeriesPoint struct {
	Day   time.Time
	Count int
}

// DailyOrderSeries buckets orders by local calendar day for the last n+1
// days, oldest first. Day boundaries are calendar boundaries in now's
// location, not 24h offsets from now.
func (s Snapshot) DailyOrderSeries(now time.Time, n int) []SeriesPoint {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	series := make([]SeriesPoint, 0, n+1)
	for i := n; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		point := SeriesPoint{Day: day}
		for _, o := range s.Orders {
			y, m, d := o.CreatedAt.In(loc).Date()
			if y == day.Year() && m == day.Month() && d == day.Day() {
				point.Count++
			}
		}
		series = append(series, point)
	}
	return series
}

// KPIStats are the analytics headline figures.
type KPIStats struct {
	ClientCount  int
	OrderCount   int
	TotalRevenue float64
}

func (s Snapshot) KPIs() KPIStats {
	return KPIStats{
		ClientCount:  len(s.Clients),
		OrderCount:   len(s.Orders),
		TotalRevenue: s.TotalRevenue(),
	}
}

// ClientName resolves an order's client reference. The second result is
// false for dangling references; callers render a placeholder instead.
func (s Snapshot) ClientName(id string) (string, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}
