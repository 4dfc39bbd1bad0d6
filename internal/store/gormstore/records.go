package gormstore

import (
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

// HostelRecord is the hostels table. Multi-value fields keep the same
// comma-joined encoding as the spreadsheet backend so documents migrated
// between backends round-trip unchanged.
type HostelRecord struct {
	ID              string `gorm:"primaryKey;size:32"`
	Name            string `gorm:"size:255;not null"`
	Location        string `gorm:"size:255"`
	PricePerYear    int
	ImageURLs       string `gorm:"column:image_urls;type:text"`
	ImagePublicIDs  string `gorm:"column:image_public_ids;type:text"`
	VideoURL        string `gorm:"column:video_url;size:512"`
	VideoPublicID   string `gorm:"column:video_public_id;size:255"`
	WhatsappContact string `gorm:"size:32"`
	Description     string `gorm:"type:text"`
	Status          string `gorm:"size:16;index"`
	DateAdded       string `gorm:"size:32"`
	Views           int
}

func (HostelRecord) TableName() string { return "hostels" }

func hostelToRecord(h *models.Hostel) *HostelRecord {
	return &HostelRecord{
		ID:              h.ID,
		Name:            h.Name,
		Location:        h.Location,
		PricePerYear:    h.PricePerYear,
		ImageURLs:       store.JoinList(h.ImageURLs),
		ImagePublicIDs:  store.JoinList(h.ImagePublicIDs),
		VideoURL:        h.VideoURL,
		VideoPublicID:   h.VideoPublicID,
		WhatsappContact: h.WhatsappContact,
		Description:     h.Description,
		Status:          h.Status,
		DateAdded:       h.DateAdded,
		Views:           h.Views,
	}
}

func (r *HostelRecord) toModel() models.Hostel {
	return models.Hostel{
		ID:              r.ID,
		Name:            r.Name,
		Location:        r.Location,
		PricePerYear:    r.PricePerYear,
		ImageURLs:       store.SplitList(r.ImageURLs),
		ImagePublicIDs:  store.SplitList(r.ImagePublicIDs),
		VideoURL:        r.VideoURL,
		VideoPublicID:   r.VideoPublicID,
		WhatsappContact: r.WhatsappContact,
		Description:     r.Description,
		Status:          r.Status,
		DateAdded:       r.DateAdded,
		Views:           r.Views,
	}
}

// MarketplaceRecord is the marketplace_items table.
type MarketplaceRecord struct {
	ID             string `gorm:"primaryKey;size:32"`
	Title          string `gorm:"size:255;not null"`
	Category       string `gorm:"size:32;index"`
	ImageURLs      string `gorm:"column:image_urls;type:text"`
	ImagePublicIDs string `gorm:"column:image_public_ids;type:text"`
	Description    string `gorm:"type:text"`
	Price          int
	WhatsappNumber string `gorm:"size:32"`
	Status         string `gorm:"size:16;index"`
	ApprovalStatus string `gorm:"size:16;index"`
	DatePosted     string `gorm:"size:32"`
	SellerName     string `gorm:"size:255"`
}

func (MarketplaceRecord) TableName() string { return "marketplace_items" }

func itemToRecord(m *models.MarketplaceItem) *MarketplaceRecord {
	return &MarketplaceRecord{
		ID:             m.ID,
		Title:          m.Title,
		Category:       m.Category,
		ImageURLs:      store.JoinList(m.ImageURLs),
		ImagePublicIDs: store.JoinList(m.ImagePublicIDs),
		Description:    m.Description,
		Price:          m.Price,
		WhatsappNumber: m.WhatsappNumber,
		Status:         m.Status,
		ApprovalStatus: m.ApprovalStatus,
		DatePosted:     m.DatePosted,
		SellerName:     m.SellerName,
	}
}

func (r *MarketplaceRecord) toModel() models.MarketplaceItem {
	return models.MarketplaceItem{
		ID:             r.ID,
		Title:          r.Title,
		Category:       r.Category,
		ImageURLs:      store.SplitList(r.ImageURLs),
		ImagePublicIDs: store.SplitList(r.ImagePublicIDs),
		Description:    r.Description,
		Price:          r.Price,
		WhatsappNumber: r.WhatsappNumber,
		Status:         r.Status,
		ApprovalStatus: r.ApprovalStatus,
		DatePosted:     r.DatePosted,
		SellerName:     r.SellerName,
	}
}

// SettingRecord is the settings table, keyed by setting name.
type SettingRecord struct {
	Key         string `gorm:"primaryKey;size:100"`
	Value       string `gorm:"size:255;not null"`
	Type        string `gorm:"size:16;not null"`
	Description string `gorm:"size:255"`
	Updated     string `gorm:"size:40"`
}

func (SettingRecord) TableName() string { return "settings" }
