package models

// Hostel is one accommodation listing. Image URLs and public IDs are
// parallel lists; the public IDs exist only so the CDN blobs can be
// deleted together with the listing.
type Hostel struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	PricePerYear    int      `json:"pricePerYear"`
	ImageURLs       []string `json:"imageUrls"`
	ImagePublicIDs  []string `json:"imagePublicIds"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	VideoPublicID   string   `json:"videoPublicId,omitempty"`
	WhatsappContact string   `json:"whatsappContact"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	DateAdded       string   `json:"dateAdded"`
	Views           int      `json:"views"`
}
