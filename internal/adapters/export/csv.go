package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

// CSV serializes the three record collections as sectioned comma-separated
// text. The layout is a fixed external contract: three `=== Name ===`
// sections separated by a blank line, a header row per section, stable field
// order, and every field quoted with embedded quotes doubled.
func CSV(snap domain.Snapshot) string {
	lines := []string{
		"=== Clients ===",
		"id,name,phone,channel,notes,created_at",
	}
	for _, c := range snap.Clients {
		lines = append(lines, row(c.ID, c.Name, c.Phone, c.Channel, c.Notes, stamp(c.CreatedAt)))
	}

	lines = append(lines, "", "=== Orders ===", "id,client_id,amount,status,created_at")
	for _, o := range snap.Orders {
		lines = append(lines, row(o.ID, o.ClientID, amount(o.Amount), string(o.Status), stamp(o.CreatedAt)))
	}

	lines = append(lines, "", "=== Messages ===", "id,who,text,created_at")
	for _, m := range snap.Messages {
		lines = append(lines, row(m.ID, string(m.Who), m.Text, stamp(m.CreatedAt)))
	}

	return strings.Join(lines, "\n")
}

func row(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
