package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
	"github.com/GSMProject-Team/bizzone.kz/internal/ports"
)

// ErrNotPersisted marks a mutation that was applied in memory but could not
// be written through. The in-memory state stays authoritative for the rest
// of the session; callers surface the error as a "changes not saved" warning.
var ErrNotPersisted = errors.New("changes not saved")

// Store holds the authoritative in-memory collections and writes every
// mutation through to the injected DocumentStore before returning. The
// command path is single-writer; the mutex only guards against the delayed
// chat reply firing concurrently with user input.
type Store struct {
	docs  ports.DocumentStore
	clock ports.Clock
	newID func() string

	mu       sync.Mutex
	clients  []domain.Client
	orders   []domain.Order
	messages []domain.Message
	settings domain.Settings
}

// NewStore loads the persisted snapshot, falling back to empty collections
// and default settings for any document that is missing or unparsable.
func NewStore(docs ports.DocumentStore, clock ports.Clock) (*Store, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &Store{
		docs:  docs,
		clock: clock,
		newID: uuid.NewString,
	}

	ctx := context.Background()
	var err error
	if s.clients, err = loadCollection[domain.Client](ctx, docs, domain.KindClients); err != nil {
		return nil, err
	}
	if s.orders, err = loadCollection[domain.Order](ctx, docs, domain.KindOrders); err != nil {
		return nil, err
	}
	if s.messages, err = loadCollection[domain.Message](ctx, docs, domain.KindMessages); err != nil {
		return nil, err
	}

	s.settings = domain.DefaultSettings()
	data, ok, err := docs.Load(ctx, domain.KindSettings)
	if err != nil {
		return nil, fmt.Errorf("load %s document: %w", domain.KindSettings, err)
	}
	if ok {
		var settings domain.Settings
		if jsonErr := json.Unmarshal(data, &settings); jsonErr == nil {
			s.settings = settings
		}
	}

	return s, nil
}

func loadCollection[T any](ctx context.Context, docs ports.DocumentStore, kind domain.Kind) ([]T, error) {
	data, ok, err := docs.Load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s document: %w", kind, err)
	}
	if !ok {
		return nil, nil
	}

	var collection []T
	if err := json.Unmarshal(data, &collection); err != nil {
		// Unparsable payloads count as absent, not fatal.
		return nil, nil
	}
	return collection, nil
}

// Snapshot returns a consistent copy of the current state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{
		Clients:  make([]domain.Client, len(s.clients)),
		Orders:   make([]domain.Order, len(s.orders)),
		Messages: make([]domain.Message, len(s.messages)),
		Settings: s.settings,
	}
	copy(snap.Clients, s.clients)
	copy(snap.Orders, s.orders)
	copy(snap.Messages, s.messages)
	return snap
}

func (s *Store) CreateClient(ctx context.Context, cmd CreateClientCommand) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := domain.Client{
		ID:        s.newID(),
		Name:      cmd.Name,
		Phone:     cmd.Phone,
		Channel:   cmd.Channel,
		Notes:     cmd.Notes,
		CreatedAt: s.clock.Now(),
	}
	s.clients = append(s.clients, client)

	return client, s.persistLocked(ctx, domain.KindClients)
}

// DeleteClient removes the client if present and is a no-op otherwise. It
// never touches orders: orders referencing the deleted client keep their
// now-dangling reference on purpose, preserving sales history.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.clients[:0]
	for _, c := range s.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.clients = kept

	return s.persistLocked(ctx, domain.KindClients)
}

func (s *Store) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, ok := domain.ParseOrderStatus(cmd.Status)
	if !ok {
		status = domain.OrderStatusNew
	}

	order := domain.Order{
		ID:        s.newID(),
		ClientID:  cmd.ClientID,
		Amount:    domain.CoerceAmount(cmd.Amount),
		Status:    status,
		CreatedAt: s.clock.Now(),
	}
	s.orders = append(s.orders, order)

	return order, s.persistLocked(ctx, domain.KindOrders)
}

// SetOrderStatus overwrites the status in place. Unknown status values are
// rejected without mutation; an unknown order id is a no-op.
func (s *Store) SetOrderStatus(ctx context.Context, id, rawStatus string) error {
	if rawStatus == "" {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatus, rawStatus)
	}
	status, ok := domain.ParseOrderStatus(rawStatus)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatus, rawStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.persistLocked(ctx, domain.KindOrders)
		}
	}
	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept

	return s.persistLocked(ctx, domain.KindOrders)
}

// AppendMessage appends to the chat log. Text that trims to empty is
// rejected before an id is allocated or anything is written.
func (s *Store) AppendMessage(ctx context.Context, cmd AppendMessageCommand) (domain.Message, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := domain.Message{
		ID:        s.newID(),
		Who:       cmd.Who,
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	s.messages = append(s.messages, msg)

	return msg, s.persistLocked(ctx, domain.KindMessages)
}

// ReplaceSettings overwrites the whole settings record.
func (s *Store) ReplaceSettings(ctx context.Context, cmd ReplaceSettingsCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = cmd.Settings
	return s.persistLocked(ctx, domain.KindSettings)
}

// ResetAll clears every collection back to documented defaults and drops the
// persisted documents, so a fresh load also yields defaults.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = nil
	s.orders = nil
	s.messages = nil
	s.settings = domain.DefaultSettings()

	if err := s.docs.Reset(ctx); err != nil {
		return fmt.Errorf("reset documents: %w", errors.Join(ErrNotPersisted, err))
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context, kind domain.Kind) error {
	// Empty collections are written as [], not null, per the persisted
	// document layout.
	var payload any
	switch kind {
	case domain.KindClients:
		payload = nonNil(s.clients)
	case domain.KindOrders:
		payload = nonNil(s.orders)
	case domain.KindMessages:
		payload = nonNil(s.messages)
	case domain.KindSettings:
		payload = s.settings
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", kind, err)
	}
	if err := s.docs.Save(ctx, kind, data); err != nil {
		return fmt.Errorf("save %s document: %w", kind, errors.Join(ErrNotPersisted, err))
	}
	return nil
}

func nonNil[T any](collection []T) []T {
	if collection == nil {
		return []T{}
	}
	return collection
}
