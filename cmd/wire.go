package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	consoleadapter "github.com/GSMProject-Team/bizzone.kz/internal/adapters/render/console"
	filestore "github.com/GSMProject-Team/bizzone.kz/internal/adapters/storage/file"
	sqlitestore "github.com/GSMProject-Team/bizzone.kz/internal/adapters/storage/sqlite"
	"github.com/GSMProject-Team/bizzone.kz/internal/application"
	"github.com/GSMProject-Team/bizzone.kz/internal/ports"
)

const (
	configDirName     = ".bizzone"
	defaultReplyText  = "Hi! Got your message ✅"
	defaultReplyDelay = 500 * time.Millisecond
)

type app struct {
	store *application.Store
	chat  *application.ChatService
	clock ports.Clock
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault("data.dir", filepath.Join(homeDir, configDirName, "data"))
	cfg.SetDefault("data.backend", "file")
	cfg.SetDefault("chat.reply_text", defaultReplyText)
	cfg.SetDefault("chat.reply_delay_ms", int(defaultReplyDelay/time.Millisecond))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	docs, err := wireDocumentStore(cfg)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	store, err := application.NewStore(docs, clock)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	delay := time.Duration(cfg.GetInt("chat.reply_delay_ms")) * time.Millisecond
	chat := application.NewChatService(store, cfg.GetString("chat.reply_text"), delay)

	return &app{store: store, chat: chat, clock: clock}, nil
}

func wireDocumentStore(cfg *viper.Viper) (ports.DocumentStore, error) {
	switch backend := cfg.GetString("data.backend"); backend {
	case "file":
		docs, err := filestore.NewStore(cfg)
		if err != nil {
			return nil, fmt.Errorf("wire file storage: %w", err)
		}
		return docs, nil
	case "sqlite":
		docs, err := sqlitestore.Open(filepath.Join(cfg.GetString("data.dir"), "state.db"))
		if err != nil {
			return nil, fmt.Errorf("wire sqlite storage: %w", err)
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func (a *app) coordinator(out io.Writer) *application.Coordinator {
	return application.NewCoordinator(a.store, consoleadapter.NewRenderer(out), a.clock)
}

// finishMutation surfaces persist failures as a warning and refreshes the
// stale views. Validation errors abort before any redraw.
func (a *app) finishMutation(cmd *cobra.Command, m application.Mutation, err error) error {
	if err != nil && !errors.Is(err, application.ErrNotPersisted) {
		return err
	}
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	a.coordinator(cmd.OutOrStdout()).Apply(m)
	return nil
}

// moduleEnabled gates read-only page commands the way navigation hiding
// does. Mutations are never gated.
func (a *app) moduleEnabled(cmd *cobra.Command, name string) bool {
	if a.store.Snapshot().Settings.ModuleEnabled(name) {
		return true
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "the %s module is disabled; enable it with: bz settings set --%s=true\n", name, name)
	return false
}
