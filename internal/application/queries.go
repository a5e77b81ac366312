package application

import (
	"time"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

const dashboardWindowDays = 7

// DashboardStats are the dashboard counters. OrdersLast7d is the rolling
// 7-day window count, distinct from the all-time count on the analytics
// page.
type DashboardStats struct {
	ClientCount  int
	OrdersLast7d int
	TotalRevenue float64
}

// AnalyticsReport is the analytics page payload: headline KPIs plus the
// 7-day calendar-bucketed order series.
type AnalyticsReport struct {
	KPIs   domain.KPIStats
	Series []domain.SeriesPoint
}

// Visibility maps module name to enabled for every toggleable module.
type Visibility map[string]bool

func dashboardStats(snap domain.Snapshot, now time.Time) DashboardStats {
	return DashboardStats{
		ClientCount:  len(snap.Clients),
		OrdersLast7d: snap.OrdersInWindow(now, dashboardWindowDays),
		TotalRevenue: snap.TotalRevenue(),
	}
}

func analyticsReport(snap domain.Snapshot, now time.Time) AnalyticsReport {
	return AnalyticsReport{
		KPIs:   snap.KPIs(),
		Series: snap.DailyOrderSeries(now, dashboardWindowDays-1),
	}
}

func visibility(settings domain.Settings) Visibility {
	v := make(Visibility, len(domain.ModuleNames))
	for _, name := range domain.ModuleNames {
		v[name] = settings.ModuleEnabled(name)
	}
	return v
}

func clientNames(snap domain.Snapshot) map[string]string {
	names := make(map[string]string, len(snap.Clients))
	for _, c := range snap.Clients {
		names[c.ID] = c.Name
	}
	return names
}
