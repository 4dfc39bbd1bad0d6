// Package store defines the storage contracts the HTTP layer talks to,
// the shared error taxonomy, and the multi-value cell encoding used by
// both backends.
package store

import (
	"context"

	"github.com/Pleasure08/gplsmarthubb/internal/models"
)

// HostelStore is the hostel collection.
type HostelStore interface {
	// List returns hostels with status "available".
	List(ctx context.Context) ([]models.Hostel, error)
	// Get returns the hostel and atomically increments its view counter.
	Get(ctx context.Context, id string) (*models.Hostel, error)
	// Find returns the hostel without touching the view counter.
	Find(ctx context.Context, id string) (*models.Hostel, error)
	// Insert fills ID, Status, Views and DateAdded defaults and appends
	// the hostel.
	Insert(ctx context.Context, h *models.Hostel) error
	Delete(ctx context.Context, id string) error
	// Clear removes every hostel and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}

// MarketplaceStore is the marketplace item collection.
type MarketplaceStore interface {
	// ListPublic returns items that are approved and still available.
	ListPublic(ctx context.Context) ([]models.MarketplaceItem, error)
	// ListAll returns every item regardless of moderation state.
	ListAll(ctx context.Context) ([]models.MarketplaceItem, error)
	Find(ctx context.Context, id string) (*models.MarketplaceItem, error)
	Insert(ctx context.Context, item *models.MarketplaceItem) error
	// SetApprovalStatus moves a pending item to approved or rejected and
	// derives the sale status in the same write. Approved and rejected
	// are terminal.
	SetApprovalStatus(ctx context.Context, id, approval string) (*models.MarketplaceItem, error)
	// SetStatus updates the sale status only (mark sold / available).
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int, error)
}

// SettingsStore is the key/value settings collection. The collection is
// seeded with defaults on first read.
type SettingsStore interface {
	// Get returns a flat key to coerced-value map.
	Get(ctx context.Context) (map[string]any, error)
	// Update overwrites Value and Updated for each key already present.
	// Keys not present are dropped, never inserted.
	Update(ctx context.Context, patch map[string]string) error
}

// Store bundles the three collections behind one backend.
type Store interface {
	Hostels() HostelStore
	Marketplace() MarketplaceStore
	Settings() SettingsStore
}
