package ports

import (
	"context"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

// DocumentStore persists one JSON document per entity kind. Load reports
// absent (ok=false, nil error) for both missing and unparsable documents so
// callers fall back to defaults. Save is atomic per kind; there is no
// cross-kind transaction.
type DocumentStore interface {
	Load(ctx context.Context, kind domain.Kind) (doc []byte, ok bool, err error)
	Save(ctx context.Context, kind domain.Kind, doc []byte) error
	Reset(ctx context.Context) error
}
