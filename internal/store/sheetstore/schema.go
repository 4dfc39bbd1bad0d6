package sheetstore

import (
	"context"
	"errors"

	"github.com/Pleasure08/gplsmarthubb/internal/sheetdb"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type schemaState int

const (
	schemaUnchanged schemaState = iota
	schemaCreated
	schemaMigrated
)

// ensureSchema loads the tab's header row and brings it up to date. A
// missing tab is created with exactly the required headers (callers treat
// a freshly created tab as empty). A header row that is empty or missing
// any required column is overwritten wholesale with the required set,
// which discards custom column ordering. A header row that carries every
// required column is left untouched, even when a human reordered or added
// columns, so back-to-back calls perform no mutating write.
//
// The returned header list is the tab's effective column order. Callers
// must key every cell read and write off it, never off the canonical
// required list, or a reordered tab would be misdecoded.
func ensureSchema(ctx context.Context, doc sheetdb.Document, title string, required []string) (sheetdb.Tab, []string, schemaState, error) {
	var t sheetdb.Tab
	err := store.WithRetry(ctx, func() error {
		var e error
		t, e = doc.Tab(ctx, title)
		return e
	})
	if errors.Is(err, sheetdb.ErrTabNotFound) {
		err = store.WithRetry(ctx, func() error {
			var e error
			t, e = doc.CreateTab(ctx, title, required)
			return e
		})
		if err != nil {
			return nil, nil, schemaUnchanged, err
		}
		return t, required, schemaCreated, nil
	}
	if err != nil {
		return nil, nil, schemaUnchanged, err
	}

	var headers []string
	err = store.WithRetry(ctx, func() error {
		var e error
		headers, e = t.Headers(ctx)
		return e
	})
	if err != nil {
		return nil, nil, schemaUnchanged, err
	}
	if len(headers) == 0 || missingAny(headers, required) {
		err = store.WithRetry(ctx, func() error {
			return t.SetHeaders(ctx, required)
		})
		if err != nil {
			return nil, nil, schemaUnchanged, err
		}
		return t, required, schemaMigrated, nil
	}
	return t, headers, schemaUnchanged, nil
}

func missingAny(current, required []string) bool {
	have := make(map[string]bool, len(current))
	for _, h := range current {
		have[h] = true
	}
	for _, r := range required {
		if !have[r] {
			return true
		}
	}
	return false
}
