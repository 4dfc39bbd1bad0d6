package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/pkg/cloudinary"
)

func hostelTestRouter(st *fakeHostelStore, cloud *fakeCloud) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHostelHandler(st, cloud)
	r.GET("/api/hostels", h.List)
	r.GET("/api/hostels/:id", h.Get)
	r.DELETE("/api/admin/hostels/:id", h.Delete)
	return r
}

func TestHostelListDegradesToEmptyArray(t *testing.T) {
	st := newFakeHostelStore()
	st.listErr = errors.New("sheet unreachable")
	r := hostelTestRouter(st, &fakeCloud{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hostels", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Fatalf("body = %q, want []", got)
	}
}

func TestHostelGetCountsView(t *testing.T) {
	st := newFakeHostelStore()
	st.hostels["H1"] = &models.Hostel{ID: "H1", Name: "Lodge", Views: 4}
	r := hostelTestRouter(st, &fakeCloud{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hostels/H1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got models.Hostel
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Views != 5 {
		t.Fatalf("Views = %d, want 5", got.Views)
	}
}

func TestHostelGetMissingIs404(t *testing.T) {
	r := hostelTestRouter(newFakeHostelStore(), &fakeCloud{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hostels/H404", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHostelDeleteRemovesBlobsThenRow(t *testing.T) {
	st := newFakeHostelStore()
	st.hostels["H1"] = &models.Hostel{
		ID:             "H1",
		Name:           "Lodge",
		ImagePublicIDs: []string{"hostels/a", "hostels/b"},
		VideoPublicID:  "hostels/tour",
	}
	cloud := &fakeCloud{}
	r := hostelTestRouter(st, cloud)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/hostels/H1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	want := []deletedBlob{
		{publicID: "hostels/a", resourceType: cloudinary.ResourceImage},
		{publicID: "hostels/b", resourceType: cloudinary.ResourceImage},
		{publicID: "hostels/tour", resourceType: cloudinary.ResourceVideo},
	}
	if len(cloud.deleted) != len(want) {
		t.Fatalf("deleted blobs = %+v, want %+v", cloud.deleted, want)
	}
	for i, d := range want {
		if cloud.deleted[i] != d {
			t.Errorf("deleted[%d] = %+v, want %+v", i, cloud.deleted[i], d)
		}
	}
	if len(st.deleted) != 1 || st.deleted[0] != "H1" {
		t.Fatalf("store deletes = %v, want [H1]", st.deleted)
	}
}

func TestHostelDeleteClearAllSentinel(t *testing.T) {
	st := newFakeHostelStore()
	st.hostels["H1"] = &models.Hostel{ID: "H1"}
	st.hostels["H2"] = &models.Hostel{ID: "H2"}
	r := hostelTestRouter(st, &fakeCloud{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/hostels/clear-all", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if st.cleared != 1 {
		t.Fatalf("Clear called %d times, want 1", st.cleared)
	}
	if !strings.Contains(w.Body.String(), "2") {
		t.Fatalf("body = %s, want cleared count", w.Body.String())
	}
}
