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

type hostelStore struct {
	s *Store
}

func (h *hostelStore) tab(ctx context.Context) (sheetdb.Tab, []string, schemaState, error) {
	return ensureSchema(ctx, h.s.doc, domain.TabHostels, domain.HostelHeaders)
}

func (h *hostelStore) List(ctx context.Context) ([]models.Hostel, error) {
	t, headers, state, err := h.tab(ctx)
	if err != nil {
		return nil, err
	}
	if state == schemaCreated {
		return []models.Hostel{}, nil
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return nil, err
	}
	out := make([]models.Hostel, 0, len(rows))
	for i, cells := range rows {
		hostel, err := hostelFromRow(headers, cells)
		if err != nil {
			log.Printf("hostels: skipping row %d: %v", i+2, err)
			continue
		}
		if hostel.Status == domain.HostelStatusAvailable {
			out = append(out, *hostel)
		}
	}
	return out, nil
}

// Get increments the view counter and writes the row back before
// returning. The per-tab mutex makes the read-increment-write sequence
// atomic with respect to other mutations in this process.
func (h *hostelStore) Get(ctx context.Context, id string) (*models.Hostel, error) {
	h.s.hostelMu.Lock()
	defer h.s.hostelMu.Unlock()

	t, headers, state, err := h.tab(ctx)
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
	hostel, err := hostelFromRow(headers, rows[idx])
	if err != nil {
		return nil, err
	}
	hostel.Views++
	err = store.WithRetry(ctx, func() error {
		return t.UpdateRow(ctx, idx, hostelToRow(headers, hostel))
	})
	if err != nil {
		return nil, err
	}
	return hostel, nil
}

func (h *hostelStore) Find(ctx context.Context, id string) (*models.Hostel, error) {
	t, headers, state, err := h.tab(ctx)
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
	return hostelFromRow(headers, rows[idx])
}

func (h *hostelStore) Insert(ctx context.Context, hostel *models.Hostel) error {
	h.s.hostelMu.Lock()
	defer h.s.hostelMu.Unlock()

	t, headers, _, err := h.tab(ctx)
	if err != nil {
		return err
	}
	if hostel.ID == "" {
		hostel.ID = fmt.Sprintf("H%d", time.Now().UnixMilli())
	}
	if hostel.Status == "" {
		hostel.Status = domain.HostelStatusAvailable
	}
	if hostel.DateAdded == "" {
		hostel.DateAdded = time.Now().UTC().Format("2006-01-02")
	}
	hostel.Views = 0
	return store.WithRetry(ctx, func() error {
		return t.AppendRow(ctx, hostelToRow(headers, hostel))
	})
}

func (h *hostelStore) Delete(ctx context.Context, id string) error {
	h.s.hostelMu.Lock()
	defer h.s.hostelMu.Unlock()

	t, headers, state, err := h.tab(ctx)
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

func (h *hostelStore) Clear(ctx context.Context) (int, error) {
	h.s.hostelMu.Lock()
	defer h.s.hostelMu.Unlock()

	t, _, state, err := h.tab(ctx)
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
