package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
	"github.com/GSMProject-Team/bizzone.kz/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	dataDirKey    = "data.dir"
	configDirName = ".bizzone"
	dataDirName   = "data"
	docFileMode   = 0o600
	docDirMode    = 0o700
	tempPattern   = ".doc-*.json.tmp"
)

// Store keeps one JSON file per document kind under the configured data
// directory. Writes go through a temp file and rename, so a reader of a
// single kind never observes a partial write. There is no cross-kind
// transaction.
type Store struct {
	dir string
	mu  *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	dirLockMap     = map[string]*sync.RWMutex{}
)

var _ ports.DocumentStore = (*Store)(nil)

// NewStore resolves the data directory from the viper config, defaulting to
// ~/.bizzone/data when no config file or key is present.
func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(dataDirKey, filepath.Join(homeDir, configDirName, dataDirName))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	dir := cfg.GetString(dataDirKey)
	if dir == "" {
		return nil, errors.New("data directory is empty")
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}
	dir = filepath.Clean(dir)

	return &Store{dir: dir, mu: lockForDir(dir)}, nil
}

func (s *Store) Load(ctx context.Context, kind domain.Kind) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.pathFor(kind))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s document: %w", kind, err)
	}

	// Corrupt payloads report absent so the caller falls back to defaults.
	if !json.Valid(data) {
		return nil, false, nil
	}

	return data, true, nil
}

func (s *Store) Save(ctx context.Context, kind domain.Kind, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, docDirMode); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tempFile, err := os.CreateTemp(s.dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp document file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(doc); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp document file: %w", err)
	}

	if err := tempFile.Chmod(docFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp document file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp document file: %w", err)
	}

	if err := os.Rename(tempName, s.pathFor(kind)); err != nil {
		return fmt.Errorf("replace %s document: %w", kind, err)
	}
	cleanup = false

	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kind := range domain.Kinds {
		if err := os.Remove(s.pathFor(kind)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s document: %w", kind, err)
		}
	}
	return nil
}

func (s *Store) pathFor(kind domain.Kind) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

func lockForDir(dir string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := dirLockMap[dir]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	dirLockMap[dir] = mu
	return mu
}
