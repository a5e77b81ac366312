package application

import (
	"time"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
	"github.com/GSMProject-Team/bizzone.kz/internal/ports"
)

// View names one refreshable surface.
type View string

const (
	ViewSettings       View = "settings"
	ViewDashboard      View = "dashboard"
	ViewClients        View = "clients"
	ViewClientSelector View = "client-selector"
	ViewOrders         View = "orders"
	ViewAnalytics      View = "analytics"
	ViewChat           View = "chat"
)

// staleViews is the dependency table: which views each mutation kind makes
// stale, in redraw order. Reset redraws everything, settings first.
var staleViews = map[Mutation][]View{
	MutationClient:   {ViewClients, ViewClientSelector, ViewDashboard, ViewAnalytics},
	MutationOrder:    {ViewOrders, ViewDashboard, ViewAnalytics},
	MutationMessage:  {ViewChat},
	MutationSettings: {ViewSettings},
	MutationReset:    {ViewSettings, ViewDashboard, ViewClients, ViewOrders, ViewAnalytics, ViewChat},
}

// ViewSink consumes fully consistent view projections. Implementations draw;
// they never read the store themselves.
type ViewSink interface {
	RenderSettings(settings domain.Settings, vis Visibility)
	RenderDashboard(stats DashboardStats, vis Visibility)
	RenderClients(clients []domain.Client)
	RenderClientSelector(clients []domain.Client)
	RenderOrders(orders []domain.Order, clientNames map[string]string)
	RenderAnalytics(report AnalyticsReport)
	RenderChat(messages []domain.Message)
}

// Coordinator refreshes exactly the views a mutation could have affected.
// All projections for one mutation come from a single snapshot, so no view
// can observe a partially applied command, and no view is drawn twice.
type Coordinator struct {
	store *Store
	sink  ViewSink
	clock ports.Clock
}

func NewCoordinator(store *Store, sink ViewSink, clock ports.Clock) *Coordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Coordinator{store: store, sink: sink, clock: clock}
}

// StaleViews exposes the dependency table row for a mutation, deduplicated
// and in redraw order.
func StaleViews(m Mutation) []View {
	row := staleViews[m]
	out := make([]View, 0, len(row))
	seen := make(map[View]struct{}, len(row))
	for _, v := range row {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Apply re-derives and redraws every view made stale by the mutation.
func (c *Coordinator) Apply(m Mutation) {
	snap := c.store.Snapshot()
	now := c.clock.Now()

	for _, view := range StaleViews(m) {
		c.render(view, snap, now)
	}
}

// Refresh redraws a single view on demand (read-only commands).
func (c *Coordinator) Refresh(view View) {
	c.render(view, c.store.Snapshot(), c.clock.Now())
}

func (c *Coordinator) render(view View, snap domain.Snapshot, now time.Time) {
	switch view {
	case ViewSettings:
		c.sink.RenderSettings(snap.Settings, visibility(snap.Settings))
	case ViewDashboard:
		c.sink.RenderDashboard(dashboardStats(snap, now), visibility(snap.Settings))
	case ViewClients:
		c.sink.RenderClients(snap.Clients)
	case ViewClientSelector:
		c.sink.RenderClientSelector(snap.Clients)
	case ViewOrders:
		c.sink.RenderOrders(snap.Orders, clientNames(snap))
	case ViewAnalytics:
		c.sink.RenderAnalytics(analyticsReport(snap, now))
	case ViewChat:
		c.sink.RenderChat(snap.Messages)
	}
}
