package sheetstore

import (
	"context"
	"sync"

	"github.com/Pleasure08/gplsmarthubb/internal/sheetdb"
)

// fakeDocument is an in-memory sheetdb.Document for tests.
type fakeDocument struct {
	mu   sync.Mutex
	tabs map[string]*fakeTab
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{tabs: make(map[string]*fakeTab)}
}

func (d *fakeDocument) Tab(_ context.Context, title string) (sheetdb.Tab, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.tabs[title]
	if !ok {
		return nil, sheetdb.ErrTabNotFound
	}
	return t, nil
}

func (d *fakeDocument) CreateTab(_ context.Context, title string, headers []string) (sheetdb.Tab, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := &fakeTab{title: title, headers: append([]string(nil), headers...)}
	t.writes++
	d.tabs[title] = t
	return t, nil
}

// seedTab installs a tab with the given headers and rows, as if it already
// existed in the document.
func (d *fakeDocument) seedTab(title string, headers []string, rows [][]string) *fakeTab {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := &fakeTab{title: title, headers: append([]string(nil), headers...)}
	for _, r := range rows {
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	d.tabs[title] = t
	return t
}

// fakeTab tracks every mutating call in writes so tests can assert that
// read paths stay read-only.
type fakeTab struct {
	mu      sync.Mutex
	title   string
	headers []string
	rows    [][]string
	writes  int

	rowsErr error // returned once by the next Rows call
}

func (t *fakeTab) Title() string { return t.title }

func (t *fakeTab) Headers(context.Context) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.headers...), nil
}

func (t *fakeTab) SetHeaders(_ context.Context, headers []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.headers = append([]string(nil), headers...)
	t.writes++
	return nil
}

func (t *fakeTab) Rows(context.Context) ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rowsErr != nil {
		err := t.rowsErr
		t.rowsErr = nil
		return nil, err
	}
	out := make([][]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

func (t *fakeTab) AppendRow(_ context.Context, row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, append([]string(nil), row...))
	t.writes++
	return nil
}

func (t *fakeTab) UpdateRow(_ context.Context, index int, row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[index] = append([]string(nil), row...)
	t.writes++
	return nil
}

func (t *fakeTab) DeleteRow(_ context.Context, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	t.writes++
	return nil
}

func (t *fakeTab) ClearRows(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
	t.writes++
	return nil
}

func (t *fakeTab) writeCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writes
}

func (t *fakeTab) rowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}
