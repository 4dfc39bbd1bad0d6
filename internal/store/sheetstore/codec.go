package sheetstore

import (
	"strconv"
	"strings"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

// record gives named access to one row's cells. Cells beyond the row's
// length read as empty, so short rows decode with defaults.
type record struct {
	index map[string]int
	cells []string
}

func newRecord(headers, cells []string) record {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return record{index: idx, cells: cells}
}

func (r record) cell(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// intCell decodes a numeric cell. An absent or empty cell yields def; a
// present but malformed cell is a MappingError rather than a silent zero.
func (r record) intCell(name string, def int) (int, error) {
	v := r.cell(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &store.MappingError{Header: name, Value: v}
	}
	return n, nil
}

func hostelFromRow(headers, cells []string) (*models.Hostel, error) {
	r := newRecord(headers, cells)
	price, err := r.intCell("Price Per Year", 0)
	if err != nil {
		return nil, err
	}
	views, err := r.intCell("Views", 0)
	if err != nil {
		return nil, err
	}
	status := r.cell("Status")
	if status == "" {
		status = domain.HostelStatusAvailable
	}
	return &models.Hostel{
		ID:              r.cell("ID"),
		Name:            r.cell("Name"),
		Location:        r.cell("Location"),
		PricePerYear:    price,
		ImageURLs:       store.SplitList(r.cell("Image URLs")),
		ImagePublicIDs:  store.SplitList(r.cell("Image Public IDs")),
		VideoURL:        r.cell("Video URL"),
		VideoPublicID:   r.cell("Video Public ID"),
		WhatsappContact: r.cell("WhatsApp Contact"),
		Description:     r.cell("Description"),
		Status:          status,
		DateAdded:       r.cell("Date Added"),
		Views:           views,
	}, nil
}

// rowForHeaders lays field values out in the tab's column order. Headers
// without a known field write an empty cell.
func rowForHeaders(headers []string, fields map[string]string) []string {
	out := make([]string, len(headers))
	for i, name := range headers {
		out[i] = fields[name]
	}
	return out
}

func hostelToRow(headers []string, h *models.Hostel) []string {
	return rowForHeaders(headers, map[string]string{
		"ID":               h.ID,
		"Name":             h.Name,
		"Location":         h.Location,
		"Price Per Year":   strconv.Itoa(h.PricePerYear),
		"Image URLs":       store.JoinList(h.ImageURLs),
		"Image Public IDs": store.JoinList(h.ImagePublicIDs),
		"Video URL":        h.VideoURL,
		"Video Public ID":  h.VideoPublicID,
		"WhatsApp Contact": h.WhatsappContact,
		"Description":      h.Description,
		"Status":           h.Status,
		"Date Added":       h.DateAdded,
		"Views":            strconv.Itoa(h.Views),
	})
}

func itemFromRow(headers, cells []string) (*models.MarketplaceItem, error) {
	r := newRecord(headers, cells)
	price, err := r.intCell("Price", 0)
	if err != nil {
		return nil, err
	}
	status := r.cell("Status")
	if status == "" {
		status = domain.ItemStatusAvailable
	}
	approval := r.cell("Approval Status")
	if approval == "" {
		approval = domain.ApprovalPending
	}
	return &models.MarketplaceItem{
		ID:             r.cell("ID"),
		Title:          r.cell("Title"),
		Category:       r.cell("Category"),
		ImageURLs:      store.SplitList(r.cell("Image URLs")),
		ImagePublicIDs: store.SplitList(r.cell("Image Public IDs")),
		Description:    r.cell("Description"),
		Price:          price,
		WhatsappNumber: r.cell("WhatsApp Number"),
		Status:         status,
		ApprovalStatus: approval,
		DatePosted:     r.cell("Date Posted"),
		SellerName:     r.cell("Seller Name"),
	}, nil
}

func itemToRow(headers []string, m *models.MarketplaceItem) []string {
	return rowForHeaders(headers, map[string]string{
		"ID":               m.ID,
		"Title":            m.Title,
		"Category":         m.Category,
		"Image URLs":       store.JoinList(m.ImageURLs),
		"Image Public IDs": store.JoinList(m.ImagePublicIDs),
		"Description":      m.Description,
		"Price":            strconv.Itoa(m.Price),
		"WhatsApp Number":  m.WhatsappNumber,
		"Status":           m.Status,
		"Approval Status":  m.ApprovalStatus,
		"Date Posted":      m.DatePosted,
		"Seller Name":      m.SellerName,
	})
}

func settingFromRow(headers, cells []string) models.Setting {
	r := newRecord(headers, cells)
	return models.Setting{
		Key:         r.cell("Key"),
		Value:       r.cell("Value"),
		Type:        r.cell("Type"),
		Description: r.cell("Description"),
		Updated:     r.cell("Updated"),
	}
}

func settingToRow(headers []string, s models.Setting) []string {
	return rowForHeaders(headers, map[string]string{
		"Key":         s.Key,
		"Value":       s.Value,
		"Type":        s.Type,
		"Description": s.Description,
		"Updated":     s.Updated,
	})
}

// coerceSetting converts a stored Value per its declared Type. Booleans
// decode from the literal "true" only. Numbers fall back to the raw
// string when unparseable.
func coerceSetting(s models.Setting) any {
	switch s.Type {
	case domain.SettingTypeBoolean:
		return s.Value == "true"
	case domain.SettingTypeNumber:
		if n, err := strconv.Atoi(s.Value); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s.Value, 64); err == nil {
			return f
		}
		return s.Value
	default:
		return s.Value
	}
}
