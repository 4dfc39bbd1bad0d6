package sheetstore

import (
	"context"
	"time"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/sheetdb"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type settingsStore struct {
	s *Store
}

// tab ensures the Settings schema and seeds the default rows when the tab
// was just created. Rows are only ever seeded once; later updates mutate
// them in place.
func (s *settingsStore) tab(ctx context.Context) (sheetdb.Tab, []string, error) {
	t, headers, state, err := ensureSchema(ctx, s.s.doc, domain.TabSettings, domain.SettingsHeaders)
	if err != nil {
		return nil, nil, err
	}
	if state == schemaCreated {
		now := time.Now().UTC().Format(time.RFC3339)
		for _, seed := range domain.DefaultSettings {
			row := settingToRow(headers, models.Setting{
				Key:         seed.Key,
				Value:       seed.Value,
				Type:        seed.Type,
				Description: seed.Description,
				Updated:     now,
			})
			err = store.WithRetry(ctx, func() error {
				return t.AppendRow(ctx, row)
			})
			if err != nil {
				return nil, nil, err
			}
		}
	}
	return t, headers, nil
}

func (s *settingsStore) Get(ctx context.Context) (map[string]any, error) {
	s.s.settingsMu.Lock()
	defer s.s.settingsMu.Unlock()

	t, headers, err := s.tab(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(rows))
	for _, cells := range rows {
		setting := settingFromRow(headers, cells)
		if setting.Key == "" {
			continue
		}
		out[setting.Key] = coerceSetting(setting)
	}
	return out, nil
}

// Update overwrites Value and Updated for each patch key that already has
// a row. Unknown keys are dropped; no row is ever inserted here.
func (s *settingsStore) Update(ctx context.Context, patch map[string]string) error {
	s.s.settingsMu.Lock()
	defer s.s.settingsMu.Unlock()

	t, headers, err := s.tab(ctx)
	if err != nil {
		return err
	}
	rows, err := readRows(ctx, t)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for key, value := range patch {
		idx := findRowByID(headers, rows, "Key", key)
		if idx < 0 {
			continue
		}
		setting := settingFromRow(headers, rows[idx])
		setting.Value = value
		setting.Updated = now
		row := settingToRow(headers, setting)
		err = store.WithRetry(ctx, func() error {
			return t.UpdateRow(ctx, idx, row)
		})
		if err != nil {
			return err
		}
		rows[idx] = row
	}
	return nil
}
