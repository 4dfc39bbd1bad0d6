package sheetstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/sheetdb"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type marketStore struct {
	s *Store
}

func (m *marketStore) tab(ctx context.Context) (sheetdb.Tab, []string, schemaState, error) {
	return ensureSchema(ctx, m.s.doc, domain.TabMarketplace, domain.MarketplaceHeaders)
}

func (m *marketStore) list(ctx context.Context, keep func(*models.MarketplaceItem) bool) ([]models.MarketplaceItem, error) {
	t, headers, state, err := m.tab(ctx)
	if err != nil {
		return nil, err
	}
	if state == schemaCreated {
		return []models.MarketplaceItem{}, nil
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return nil, err
	}
	out := make([]models.MarketplaceItem, 0, len(rows))
	for i, cells := range rows {
		item, err := itemFromRow(headers, cells)
		if err != nil {
			log.Printf("marketplace: skipping row %d: %v", i+2, err)
			continue
		}
		if keep(item) {
			out = append(out, *item)
		}
	}
	return out, nil
}

// ListPublic returns only items a buyer should see: approved by an admin
// and not yet sold or withdrawn.
func (m *marketStore) ListPublic(ctx context.Context) ([]models.MarketplaceItem, error) {
	return m.list(ctx, func(it *models.MarketplaceItem) bool {
		return it.ApprovalStatus == domain.ApprovalApproved && it.Status == domain.ItemStatusAvailable
	})
}

func (m *marketStore) ListAll(ctx context.Context) ([]models.MarketplaceItem, error) {
	return m.list(ctx, func(*models.MarketplaceItem) bool { return true })
}

func (m *marketStore) Find(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	t, headers, state, err := m.tab(ctx)
	if err != nil {
		return nil, err
	}
	if state == schemaCreated {
		return nil, store.ErrNotFound
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return nil, err
	}
	idx := findRowByID(headers, rows, "ID", id)
	if idx < 0 {
		return nil, store.ErrNotFound
	}
	return itemFromRow(headers, rows[idx])
}

func (m *marketStore) Insert(ctx context.Context, item *models.MarketplaceItem) error {
	m.s.marketMu.Lock()
	defer m.s.marketMu.Unlock()

	t, headers, _, err := m.tab(ctx)
	if err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("MP%d", time.Now().UnixMilli())
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
	}
	if item.ApprovalStatus == "" {
		item.ApprovalStatus = domain.ApprovalPending
	}
	if item.DatePosted == "" {
		item.DatePosted = time.Now().UTC().Format("2006-01-02")
	}
	return store.WithRetry(ctx, func() error {
		return t.AppendRow(ctx, itemToRow(headers, item))
	})
}

// SetApprovalStatus moves a pending item to approved or rejected and
// derives the sale status in the same write. Items already decided stay
// decided.
func (m *marketStore) SetApprovalStatus(ctx context.Context, id, approval string) (*models.MarketplaceItem, error) {
	if approval != domain.ApprovalApproved && approval != domain.ApprovalRejected {
		return nil, store.NewValidation("invalid approval status %q", approval)
	}
	m.s.marketMu.Lock()
	defer m.s.marketMu.Unlock()

	t, headers, state, err := m.tab(ctx)
	if err != nil {
		return nil, err
	}
	if state == schemaCreated {
		return nil, store.ErrNotFound
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return nil, err
	}
	idx := findRowByID(headers, rows, "ID", id)
	if idx < 0 {
		return nil, store.ErrNotFound
	}
	item, err := itemFromRow(headers, rows[idx])
	if err != nil {
		return nil, err
	}
	if item.ApprovalStatus != domain.ApprovalPending {
		return nil, store.NewValidation("item %s is already %s", id, item.ApprovalStatus)
	}
	item.ApprovalStatus = approval
	if approval == domain.ApprovalApproved {
		item.Status = domain.ItemStatusAvailable
	} else {
		item.Status = domain.ItemStatusUnavailable
	}
	err = store.WithRetry(ctx, func() error {
		return t.UpdateRow(ctx, idx, itemToRow(headers, item))
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (m *marketStore) SetStatus(ctx context.Context, id, status string) error {
	if status != domain.ItemStatusAvailable && status != domain.ItemStatusSold {
		return store.NewValidation("invalid status %q", status)
	}
	m.s.marketMu.Lock()
	defer m.s.marketMu.Unlock()

	t, headers, state, err := m.tab(ctx)
	if err != nil {
		return err
	}
	if state == schemaCreated {
		return store.ErrNotFound
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return err
	}
	idx := findRowByID(headers, rows, "ID", id)
	if idx < 0 {
		return store.ErrNotFound
	}
	item, err := itemFromRow(headers, rows[idx])
	if err != nil {
		return err
	}
	item.Status = status
	return store.WithRetry(ctx, func() error {
		return t.UpdateRow(ctx, idx, itemToRow(headers, item))
	})
}

func (m *marketStore) Delete(ctx context.Context, id string) error {
	m.s.marketMu.Lock()
	defer m.s.marketMu.Unlock()

	t, headers, state, err := m.tab(ctx)
	if err != nil {
		return err
	}
	if state == schemaCreated {
		return store.ErrNotFound
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return err
	}
	idx := findRowByID(headers, rows, "ID", id)
	if idx < 0 {
		return store.ErrNotFound
	}
	return store.WithRetry(ctx, func() error {
		return t.DeleteRow(ctx, idx)
	})
}

func (m *marketStore) Clear(ctx context.Context) (int, error) {
	m.s.marketMu.Lock()
	defer m.s.marketMu.Unlock()

	t, _, state, err := m.tab(ctx)
	if err != nil {
		return 0, err
	}
	if state == schemaCreated {
		return 0, nil
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	err = store.WithRetry(ctx, func() error {
		return t.ClearRows(ctx)
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
