package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

func render(t *testing.T, draw func(r *Renderer)) string {
	t.Helper()

	var buf bytes.Buffer
	draw(NewRenderer(&buf))
	return buf.String()
}

func allVisible() application.Visibility {
	vis := application.Visibility{}
	for _, name := range domain.ModuleNames {
		vis[name] = true
	}
	return vis
}

func TestRenderSettingsShowsModuleStates(t *testing.T) {
	t.Parallel()

	settings := domain.DefaultSettings()
	settings.ModuleChat = false
	vis := allVisible()
	vis["chat"] = false

	out := render(t, func(r *Renderer) { r.RenderSettings(settings, vis) })

	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "clients")
	assert.Contains(t, out, "on")
	assert.Contains(t, out, "chat")
	assert.Contains(t, out, "off")
}

func TestRenderDashboardGroupsNumbers(t *testing.T) {
	t.Parallel()

	stats := application.DashboardStats{ClientCount: 2, OrdersLast7d: 3, TotalRevenue: 1300}
	out := render(t, func(r *Renderer) { r.RenderDashboard(stats, allVisible()) })

	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "Orders (7d):")
	assert.Contains(t, out, "1,300")
	assert.Contains(t, out, "clients, sales, analytics, chat")
}

func TestRenderDashboardWithEverythingDisabled(t *testing.T) {
	t.Parallel()

	out := render(t, func(r *Renderer) {
		r.RenderDashboard(application.DashboardStats{}, application.Visibility{})
	})

	assert.Contains(t, out, "all modules disabled")
}

func TestRenderClientsEmptyState(t *testing.T) {
	t.Parallel()

	out := render(t, func(r *Renderer) { r.RenderClients(nil) })
	assert.Contains(t, out, "no clients yet")
}

func TestRenderClientsRows(t *testing.T) {
	t.Parallel()

	clients := []domain.Client{
		{ID: "c-1", Name: "Aizere", Phone: "+7 701 000 00 00", Channel: "whatsapp", Notes: "vip"},
		{ID: "c-2", Name: "Bekzat", Channel: "telegram"},
	}
	out := render(t, func(r *Renderer) { r.RenderClients(clients) })

	assert.Contains(t, out, "1. Aizere")
	assert.Contains(t, out, "2. Bekzat")
	assert.Contains(t, out, "whatsapp")
	assert.Contains(t, out, "vip")
}

func TestRenderClientSelectorFallsBackToPlaceholderName(t *testing.T) {
	t.Parallel()

	out := render(t, func(r *Renderer) {
		r.RenderClientSelector([]domain.Client{{ID: "c-9"}})
	})

	assert.Contains(t, out, "Pick a client")
	assert.Contains(t, out, "(no name)")
	assert.Contains(t, out, "c-9")
}

func TestRenderOrdersResolvesClientNames(t *testing.T) {
	t.Parallel()

	orders := []domain.Order{
		{
			ID:        "o-1",
			ClientID:  "c-1",
			Amount:    1250.5,
			Status:    domain.OrderStatusPaid,
			CreatedAt: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
		},
		{ID: "o-2", ClientID: "gone", Amount: 40, Status: domain.OrderStatusNew},
	}
	names := map[string]string{"c-1": "Aizere"}

	out := render(t, func(r *Renderer) { r.RenderOrders(orders, names) })

	assert.Contains(t, out, "Aizere")
	assert.Contains(t, out, "1,250.5")
	assert.Contains(t, out, "paid")
	assert.Contains(t, out, "2024-03-02 09:30")
	assert.Contains(t, out, danglingClient)
}

func TestRenderAnalyticsDrawsBars(t *testing.T) {
	t.Parallel()

	report := application.AnalyticsReport{
		KPIs: domain.KPIStats{ClientCount: 1, OrderCount: 2, TotalRevenue: 290},
		Series: []domain.SeriesPoint{
			{Day: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Count: 0},
			{Day: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Count: 2},
		},
	}
	out := render(t, func(r *Renderer) { r.RenderAnalytics(report) })

	assert.Contains(t, out, "Analytics")
	assert.Contains(t, out, "Mar 01")
	assert.Contains(t, out, "Mar 02")
	assert.Contains(t, out, "██ 2")
}

func TestRenderChatTagsSpeakers(t *testing.T) {
	t.Parallel()

	messages := []domain.Message{
		{ID: "m-1", Who: domain.SpeakerMe, Text: "hello", CreatedAt: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)},
		{ID: "m-2", Who: domain.SpeakerThem, Text: "hi there", CreatedAt: time.Date(2024, 3, 4, 8, 0, 5, 0, time.UTC)},
	}
	out := render(t, func(r *Renderer) { r.RenderChat(messages) })

	assert.Contains(t, out, "me>")
	assert.Contains(t, out, "them>")
	assert.Contains(t, out, "hi there")
}

func TestWarningPrefix(t *testing.T) {
	t.Parallel()

	out := render(t, func(r *Renderer) { r.Warning("changes not persisted") })
	assert.Contains(t, out, "warning: changes not persisted")
}
