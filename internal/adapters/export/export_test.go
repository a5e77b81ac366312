package export

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Clients: []domain.Client{
			{
				ID:        "c-1",
				Name:      `Aizere "Ai"`,
				Phone:     "+7 701 000 00 00",
				Channel:   "whatsapp",
				Notes:     "vip",
				CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		Orders: []domain.Order{
			{
				ID:        "o-1",
				ClientID:  "c-1",
				Amount:    1250.5,
				Status:    domain.OrderStatusPaid,
				CreatedAt: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
			},
			{
				ID:        "o-2",
				ClientID:  "missing",
				Amount:    40,
				Status:    domain.OrderStatusNew,
				CreatedAt: time.Date(2024, 3, 3, 9, 30, 0, 0, time.UTC),
			},
		},
		Messages: []domain.Message{
			{
				ID:        "m-1",
				Who:       domain.SpeakerMe,
				Text:      "hello",
				CreatedAt: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC),
			},
			{
				ID:        "m-2",
				Who:       domain.SpeakerThem,
				Text:      `she said "hi"`,
				CreatedAt: time.Date(2024, 3, 4, 8, 0, 5, 0, time.UTC),
			},
		},
		Settings: domain.DefaultSettings(),
	}
}

func TestCSVMatchesGolden(t *testing.T) {
	t.Parallel()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "snapshot_csv", []byte(CSV(sampleSnapshot())))
}

func TestCSVEmptySnapshotKeepsSectionHeaders(t *testing.T) {
	t.Parallel()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "empty_csv", []byte(CSV(domain.Snapshot{Settings: domain.DefaultSettings()})))
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	out, err := YAML(sampleSnapshot())
	require.NoError(t, err)

	var got yamlSnapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	require.Len(t, got.Clients, 1)
	assert.Equal(t, `Aizere "Ai"`, got.Clients[0].Name)
	assert.Equal(t, "2024-03-01T10:00:00Z", got.Clients[0].CreatedAt)

	require.Len(t, got.Orders, 2)
	assert.Equal(t, 1250.5, got.Orders[0].Amount)
	assert.Equal(t, "missing", got.Orders[1].ClientID)
	assert.Equal(t, "new", got.Orders[1].Status)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "them", string(got.Messages[1].Who))
	assert.Equal(t, `she said "hi"`, got.Messages[1].Text)

	assert.True(t, got.Settings.ModuleChat)
}

func TestYAMLEmptySnapshotKeepsCollections(t *testing.T) {
	t.Parallel()

	out, err := YAML(domain.Snapshot{Settings: domain.DefaultSettings()})
	require.NoError(t, err)

	var got yamlSnapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Clients)
	assert.Empty(t, got.Orders)
	assert.Empty(t, got.Messages)
	assert.True(t, got.Settings.ModuleClients)
}
