// Package sheetstore implements the storage contracts on top of a Google
// Sheets document. Every operation re-validates the tab's header row
// before touching data, and all read-modify-write sequences on a tab are
// serialized through a per-tab mutex so concurrent requests cannot lose
// updates. That serialization holds within one process, which matches the
// single-server deployment this backend targets; multi-process setups
// should use the MySQL backend instead.
package sheetstore

import (
	"context"
	"sync"

	"github.com/Pleasure08/gplsmarthubb/internal/sheetdb"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type Store struct {
	doc sheetdb.Document

	hostelMu   sync.Mutex
	marketMu   sync.Mutex
	settingsMu sync.Mutex
}

func New(doc sheetdb.Document) *Store {
	return &Store{doc: doc}
}

func (s *Store) Hostels() store.HostelStore          { return &hostelStore{s: s} }
func (s *Store) Marketplace() store.MarketplaceStore { return &marketStore{s: s} }
func (s *Store) Settings() store.SettingsStore       { return &settingsStore{s: s} }

// readRows fetches all data rows with bounded retry on transient failures.
func readRows(ctx context.Context, t sheetdb.Tab) ([][]string, error) {
	var rows [][]string
	err := store.WithRetry(ctx, func() error {
		var e error
		rows, e = t.Rows(ctx)
		return e
	})
	return rows, err
}

// findRowByID scans data rows for one whose ID column matches. Returns
// the zero-based data row index or -1.
func findRowByID(headers []string, rows [][]string, idHeader, id string) int {
	for i, cells := range rows {
		if newRecord(headers, cells).cell(idHeader) == id {
			return i
		}
	}
	return -1
}
