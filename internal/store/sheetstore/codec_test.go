package sheetstore

import (
	"reflect"
	"testing"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

func TestHostelRowRoundTrip(t *testing.T) {
	in := &models.Hostel{
		ID:              "H1700000000000",
		Name:            "Peace Lodge",
		Location:        "Behind campus gate",
		PricePerYear:    185000,
		ImageURLs:       []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
		ImagePublicIDs:  []string{"hostels/a", "hostels/b"},
		VideoURL:        "https://cdn/tour.mp4",
		VideoPublicID:   "hostels/tour",
		WhatsappContact: "+2348012345678",
		Description:     "Two rooms left",
		Status:          domain.HostelStatusAvailable,
		DateAdded:       "2025-01-15",
		Views:           42,
	}
	out, err := hostelFromRow(domain.HostelHeaders, hostelToRow(domain.HostelHeaders, in))
	if err != nil {
		t.Fatalf("hostelFromRow: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in  %+v\n out %+v", in, out)
	}
}

func TestHostelRowFollowsHeaderOrder(t *testing.T) {
	reordered := append([]string(nil), domain.HostelHeaders...)
	reordered[0], reordered[1] = reordered[1], reordered[0]

	in := &models.Hostel{ID: "H1", Name: "Sunrise Hostel", Status: domain.HostelStatusAvailable}
	row := hostelToRow(reordered, in)
	if row[0] != "Sunrise Hostel" || row[1] != "H1" {
		t.Fatalf("row = %v, want cells laid out in the tab's order", row[:2])
	}
	out, err := hostelFromRow(reordered, row)
	if err != nil {
		t.Fatalf("hostelFromRow: %v", err)
	}
	if out.ID != "H1" || out.Name != "Sunrise Hostel" {
		t.Fatalf("decoded ID=%q Name=%q, want H1 / Sunrise Hostel", out.ID, out.Name)
	}
}

func TestHostelFromRowDefaults(t *testing.T) {
	// Short row: only ID and Name present.
	h, err := hostelFromRow(domain.HostelHeaders, []string{"H1", "Lodge"})
	if err != nil {
		t.Fatalf("hostelFromRow: %v", err)
	}
	if h.Status != domain.HostelStatusAvailable {
		t.Errorf("Status = %q, want %q", h.Status, domain.HostelStatusAvailable)
	}
	if h.Views != 0 || h.PricePerYear != 0 {
		t.Errorf("Views = %d, PricePerYear = %d, want zeros", h.Views, h.PricePerYear)
	}
	if len(h.ImageURLs) != 0 {
		t.Errorf("ImageURLs = %v, want empty", h.ImageURLs)
	}
}

func TestHostelFromRowMalformedNumber(t *testing.T) {
	row := []string{"H1", "Lodge", "Town", "not-a-number"}
	_, err := hostelFromRow(domain.HostelHeaders, row)
	if !store.IsMapping(err) {
		t.Fatalf("err = %v, want MappingError", err)
	}
}

func TestItemRowRoundTrip(t *testing.T) {
	in := &models.MarketplaceItem{
		ID:             "MP1700000000000",
		Title:          "Calculus textbook",
		Category:       "books",
		ImageURLs:      []string{"https://cdn/book.jpg"},
		ImagePublicIDs: []string{"marketplace/book"},
		Description:    "Barely used",
		Price:          3500,
		WhatsappNumber: "+2348098765432",
		Status:         domain.ItemStatusAvailable,
		ApprovalStatus: domain.ApprovalApproved,
		DatePosted:     "2025-02-01",
		SellerName:     "Ada",
	}
	out, err := itemFromRow(domain.MarketplaceHeaders, itemToRow(domain.MarketplaceHeaders, in))
	if err != nil {
		t.Fatalf("itemFromRow: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in  %+v\n out %+v", in, out)
	}
}

func TestItemFromRowDefaults(t *testing.T) {
	item, err := itemFromRow(domain.MarketplaceHeaders, []string{"MP1", "Lamp"})
	if err != nil {
		t.Fatalf("itemFromRow: %v", err)
	}
	if item.Status != domain.ItemStatusAvailable {
		t.Errorf("Status = %q, want %q", item.Status, domain.ItemStatusAvailable)
	}
	if item.ApprovalStatus != domain.ApprovalPending {
		t.Errorf("ApprovalStatus = %q, want %q", item.ApprovalStatus, domain.ApprovalPending)
	}
}

func TestCoerceSetting(t *testing.T) {
	tests := []struct {
		name    string
		setting models.Setting
		want    any
	}{
		{"bool true", models.Setting{Type: domain.SettingTypeBoolean, Value: "true"}, true},
		{"bool false", models.Setting{Type: domain.SettingTypeBoolean, Value: "false"}, false},
		{"bool garbage", models.Setting{Type: domain.SettingTypeBoolean, Value: "yes"}, false},
		{"int", models.Setting{Type: domain.SettingTypeNumber, Value: "10"}, 10},
		{"float", models.Setting{Type: domain.SettingTypeNumber, Value: "2.5"}, 2.5},
		{"bad number", models.Setting{Type: domain.SettingTypeNumber, Value: "ten"}, "ten"},
		{"string", models.Setting{Type: domain.SettingTypeString, Value: "GPL SmartHub"}, "GPL SmartHub"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceSetting(tt.setting); got != tt.want {
				t.Fatalf("coerceSetting = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}
