package handler

import (
	"context"
	"io"

	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
	"github.com/Pleasure08/gplsmarthubb/pkg/paystack"
)

type fakeHostelStore struct {
	hostels  map[string]*models.Hostel
	listErr  error
	deleted  []string
	cleared  int
	inserted []*models.Hostel
}

func newFakeHostelStore() *fakeHostelStore {
	return &fakeHostelStore{hostels: make(map[string]*models.Hostel)}
}

func (f *fakeHostelStore) List(context.Context) ([]models.Hostel, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Hostel, 0, len(f.hostels))
	for _, h := range f.hostels {
		out = append(out, *h)
	}
	return out, nil
}

func (f *fakeHostelStore) Get(_ context.Context, id string) (*models.Hostel, error) {
	h, ok := f.hostels[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	h.Views++
	return h, nil
}

func (f *fakeHostelStore) Find(_ context.Context, id string) (*models.Hostel, error) {
	h, ok := f.hostels[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return h, nil
}

func (f *fakeHostelStore) Insert(_ context.Context, h *models.Hostel) error {
	if h.ID == "" {
		h.ID = "H1"
	}
	f.hostels[h.ID] = h
	f.inserted = append(f.inserted, h)
	return nil
}

func (f *fakeHostelStore) Delete(_ context.Context, id string) error {
	if _, ok := f.hostels[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.hostels, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeHostelStore) Clear(context.Context) (int, error) {
	n := len(f.hostels)
	f.hostels = make(map[string]*models.Hostel)
	f.cleared++
	return n, nil
}

type fakeMarketStore struct {
	items    map[string]*models.MarketplaceItem
	listErr  error
	inserted []*models.MarketplaceItem
	statuses map[string]string
}

func newFakeMarketStore() *fakeMarketStore {
	return &fakeMarketStore{
		items:    make(map[string]*models.MarketplaceItem),
		statuses: make(map[string]string),
	}
}

func (f *fakeMarketStore) ListPublic(context.Context) ([]models.MarketplaceItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.MarketplaceItem, 0, len(f.items))
	for _, it := range f.items {
		if it.ApprovalStatus == "approved" && it.Status == "available" {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeMarketStore) ListAll(context.Context) ([]models.MarketplaceItem, error) {
	out := make([]models.MarketplaceItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeMarketStore) Find(_ context.Context, id string) (*models.MarketplaceItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return it, nil
}

func (f *fakeMarketStore) Insert(_ context.Context, item *models.MarketplaceItem) error {
	if item.ID == "" {
		item.ID = "MP1"
	}
	f.items[item.ID] = item
	f.inserted = append(f.inserted, item)
	return nil
}

func (f *fakeMarketStore) SetApprovalStatus(_ context.Context, id, approval string) (*models.MarketplaceItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	it.ApprovalStatus = approval
	if approval == "approved" {
		it.Status = "available"
	} else {
		it.Status = "unavailable"
	}
	return it, nil
}

func (f *fakeMarketStore) SetStatus(_ context.Context, id, status string) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeMarketStore) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMarketStore) Clear(context.Context) (int, error) {
	n := len(f.items)
	f.items = make(map[string]*models.MarketplaceItem)
	return n, nil
}

type fakeSettingsStore struct {
	values  map[string]any
	patches []map[string]string
}

func (f *fakeSettingsStore) Get(context.Context) (map[string]any, error) {
	return f.values, nil
}

func (f *fakeSettingsStore) Update(_ context.Context, patch map[string]string) error {
	f.patches = append(f.patches, patch)
	return nil
}

// deletedBlob records one Delete call on the fake CDN client.
type deletedBlob struct {
	publicID     string
	resourceType string
}

type fakeCloud struct {
	uploads int
	deleted []deletedBlob
}

func (f *fakeCloud) UploadImage(_ context.Context, _ io.Reader, folder, publicID string) (string, string, error) {
	f.uploads++
	return "https://cdn/" + folder + "/" + publicID + ".jpg", folder + "/" + publicID, nil
}

func (f *fakeCloud) UploadVideo(_ context.Context, _ io.Reader, folder, publicID string) (string, string, error) {
	f.uploads++
	return "https://cdn/" + folder + "/" + publicID + ".mp4", folder + "/" + publicID, nil
}

func (f *fakeCloud) Delete(_ context.Context, publicID, resourceType string) error {
	f.deleted = append(f.deleted, deletedBlob{publicID: publicID, resourceType: resourceType})
	return nil
}

type fakeVerifier struct {
	result *paystack.VerifyResult
	err    error
	calls  []string
}

func (f *fakeVerifier) Verify(_ context.Context, reference string) (*paystack.VerifyResult, error) {
	f.calls = append(f.calls, reference)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
