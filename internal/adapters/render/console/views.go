package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

// danglingClient stands in for orders whose client no longer exists.
const danglingClient = "—"

const timeLayout = "2006-01-02 15:04"

// Renderer draws view projections as styled text. It implements
// application.ViewSink and never reads the store; every method receives a
// complete, consistent payload.
type Renderer struct {
	out     io.Writer
	styles  styles
	printer *message.Printer
}

var _ application.ViewSink = (*Renderer)(nil)

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		styles:  newStyles(),
		printer: message.NewPrinter(language.English),
	}
}

func (r *Renderer) RenderSettings(settings domain.Settings, vis application.Visibility) {
	lines := []string{r.styles.title.Render("Settings")}
	for _, name := range domain.ModuleNames {
		state := "on"
		style := r.styles.moduleOn
		if !settings.ModuleEnabled(name) || !vis[name] {
			state = "off"
			style = r.styles.moduleOff
		}
		lines = append(lines, fmt.Sprintf("  %-10s %s", name, style.Render(state)))
	}
	r.emit(lines)
}

func (r *Renderer) RenderDashboard(stats application.DashboardStats, vis application.Visibility) {
	lines := []string{
		r.styles.title.Render("Dashboard"),
		fmt.Sprintf("  %s %s", r.styles.label.Render("Clients:"), r.styles.value.Render(r.count(stats.ClientCount))),
		fmt.Sprintf("  %s %s", r.styles.label.Render("Orders (7d):"), r.styles.value.Render(r.count(stats.OrdersLast7d))),
		fmt.Sprintf("  %s %s", r.styles.label.Render("Revenue:"), r.styles.value.Render(r.money(stats.TotalRevenue))),
	}

	enabled := make([]string, 0, len(domain.ModuleNames))
	for _, name := range domain.ModuleNames {
		if vis[name] {
			enabled = append(enabled, name)
		}
	}
	if len(enabled) == 0 {
		lines = append(lines, "  "+r.styles.empty.Render("all modules disabled"))
	} else {
		lines = append(lines, fmt.Sprintf("  %s %s",
			r.styles.label.Render("Modules:"), r.styles.muted.Render(strings.Join(enabled, ", "))))
	}
	r.emit(lines)
}

func (r *Renderer) RenderClients(clients []domain.Client) {
	lines := []string{r.styles.title.Render("Clients")}
	if len(clients) == 0 {
		lines = append(lines, "  "+r.styles.empty.Render("no clients yet"))
	}
	for i, c := range clients {
		lines = append(lines, fmt.Sprintf("  %2d. %-20s %-15s %-10s %s",
			i+1, c.Name, c.Phone, c.Channel, r.styles.muted.Render(c.Notes)))
	}
	r.emit(lines)
}

func (r *Renderer) RenderClientSelector(clients []domain.Client) {
	lines := []string{r.styles.title.Render("Pick a client")}
	for _, c := range clients {
		name := c.Name
		if name == "" {
			name = "(no name)"
		}
		lines = append(lines, fmt.Sprintf("  %s  %s", name, r.styles.muted.Render(c.ID)))
	}
	r.emit(lines)
}

func (r *Renderer) RenderOrders(orders []domain.Order, clientNames map[string]string) {
	lines := []string{r.styles.title.Render("Orders")}
	if len(orders) == 0 {
		lines = append(lines, "  "+r.styles.empty.Render("no orders yet"))
	}
	for i, o := range orders {
		name, ok := clientNames[o.ClientID]
		if !ok {
			name = danglingClient
		}
		lines = append(lines, fmt.Sprintf("  %2d. %-20s %12s  %-8s %s",
			i+1, name, r.money(o.Amount), o.Status,
			r.styles.muted.Render(o.CreatedAt.Format(timeLayout))))
	}
	r.emit(lines)
}

func (r *Renderer) RenderAnalytics(report application.AnalyticsReport) {
	lines := []string{
		r.styles.title.Render("Analytics"),
		fmt.Sprintf("  %s %s", r.styles.label.Render("Clients:"), r.styles.value.Render(r.count(report.KPIs.ClientCount))),
		fmt.Sprintf("  %s %s", r.styles.label.Render("Orders:"), r.styles.value.Render(r.count(report.KPIs.OrderCount))),
		fmt.Sprintf("  %s %s", r.styles.label.Render("Revenue:"), r.styles.value.Render(r.money(report.KPIs.TotalRevenue))),
	}
	for _, point := range report.Series {
		lines = append(lines, fmt.Sprintf("  %s %s %d",
			r.styles.muted.Render(point.Day.Format("Jan 02")),
			r.styles.bar.Render(strings.Repeat("█", point.Count)),
			point.Count))
	}
	r.emit(lines)
}

func (r *Renderer) RenderChat(messages []domain.Message) {
	lines := []string{r.styles.title.Render("Chat")}
	if len(messages) == 0 {
		lines = append(lines, "  "+r.styles.empty.Render("no messages yet"))
	}
	for _, m := range messages {
		style := r.styles.them
		if m.Who == domain.SpeakerMe {
			style = r.styles.me
		}
		lines = append(lines, fmt.Sprintf("  %s %s  %s",
			style.Render(string(m.Who)+">"), m.Text,
			r.styles.muted.Render(m.CreatedAt.Format(timeLayout))))
	}
	r.emit(lines)
}

// Warning surfaces a persist failure without interrupting the view cascade.
func (r *Renderer) Warning(text string) {
	_, _ = fmt.Fprintln(r.out, r.styles.warning.Render("warning: "+text))
}

func (r *Renderer) emit(lines []string) {
	_, _ = fmt.Fprintln(r.out, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (r *Renderer) count(n int) string {
	return r.printer.Sprint(number.Decimal(n))
}

func (r *Renderer) money(v float64) string {
	return r.printer.Sprint(number.Decimal(v))
}
