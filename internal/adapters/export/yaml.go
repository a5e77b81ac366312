package export

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

// yamlSnapshot mirrors the persisted document layout with yaml field names.
type yamlSnapshot struct {
	Clients  []yamlClient  `yaml:"clients"`
	Orders   []yamlOrder   `yaml:"orders"`
	Messages []yamlMessage `yaml:"messages"`
	Settings yamlSettings  `yaml:"settings"`
}

type yamlClient struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Phone     string `yaml:"phone"`
	Channel   string `yaml:"channel"`
	Notes     string `yaml:"notes"`
	CreatedAt string `yaml:"created_at"`
}

type yamlOrder struct {
	ID        string  `yaml:"id"`
	ClientID  string  `yaml:"client_id"`
	Amount    float64 `yaml:"amount"`
	Status    string  `yaml:"status"`
	CreatedAt string  `yaml:"created_at"`
}

type yamlMessage struct {
	ID        string `yaml:"id"`
	Who       string `yaml:"who"`
	Text      string `yaml:"text"`
	CreatedAt string `yaml:"created_at"`
}

type yamlSettings struct {
	ModuleClients   bool `yaml:"module_clients"`
	ModuleSales     bool `yaml:"module_sales"`
	ModuleAnalytics bool `yaml:"module_analytics"`
	ModuleChat      bool `yaml:"module_chat"`
}

// YAML serializes the full snapshot, settings included, as one YAML
// document.
func YAML(snap domain.Snapshot) (string, error) {
	doc := yamlSnapshot{
		Clients:  make([]yamlClient, 0, len(snap.Clients)),
		Orders:   make([]yamlOrder, 0, len(snap.Orders)),
		Messages: make([]yamlMessage, 0, len(snap.Messages)),
		Settings: yamlSettings{
			ModuleClients:   snap.Settings.ModuleClients,
			ModuleSales:     snap.Settings.ModuleSales,
			ModuleAnalytics: snap.Settings.ModuleAnalytics,
			ModuleChat:      snap.Settings.ModuleChat,
		},
	}

	for _, c := range snap.Clients {
		doc.Clients = append(doc.Clients, yamlClient{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			Channel:   c.Channel,
			Notes:     c.Notes,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, o := range snap.Orders {
		doc.Orders = append(doc.Orders, yamlOrder{
			ID:        o.ID,
			ClientID:  o.ClientID,
			Amount:    o.Amount,
			Status:    string(o.Status),
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, m := range snap.Messages {
		doc.Messages = append(doc.Messages, yamlMessage{
			ID:        m.ID,
			Who:       string(m.Who),
			Text:      m.Text,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}
