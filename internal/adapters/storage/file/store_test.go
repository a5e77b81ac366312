package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	cfg := viper.New()
	cfg.Set("data.dir", dir)

	store, err := NewStore(cfg)
	require.NoError(t, err)
	return store, dir
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	doc := []byte(`[{"id":"c-1","name":"Aidar"}]`)
	require.NoError(t, store.Save(ctx, domain.KindClients, doc))

	got, ok, err := store.Load(ctx, domain.KindClients)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, doc, got)
}

func TestLoadMissingDocumentReportsAbsent(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	_, ok, err := store.Load(context.Background(), domain.KindOrders)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadMalformedDocumentReportsAbsent(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.json"), []byte("{boom"), 0o600))

	_, ok, err := store.Load(context.Background(), domain.KindClients)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.KindSettings, []byte(`{"module_chat":true}`)))
	require.NoError(t, store.Save(ctx, domain.KindSettings, []byte(`{"module_chat":false}`)))

	got, ok, err := store.Load(ctx, domain.KindSettings)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"module_chat":false}`, string(got))
}

func TestSaveLeavesOtherKindsAlone(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.KindClients, []byte(`[]`)))
	require.NoError(t, store.Save(ctx, domain.KindOrders, []byte(`[{"id":"o-1"}]`)))

	got, ok, err := store.Load(ctx, domain.KindClients)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), got)
}

func TestResetRemovesEveryKind(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, kind := range domain.Kinds {
		require.NoError(t, store.Save(ctx, kind, []byte(`[]`)))
	}
	require.NoError(t, store.Reset(ctx))

	for _, kind := range domain.Kinds {
		_, ok, err := store.Load(ctx, kind)
		require.NoError(t, err)
		assert.False(t, ok, kind)
	}
}

func TestResetOnEmptyDirectoryIsNoop(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.NoError(t, store.Reset(context.Background()))
}
