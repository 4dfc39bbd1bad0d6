package models

// MarketplaceItem is one item posted for sale. ApprovalStatus is the
// moderation state and is distinct from the sale Status.
type MarketplaceItem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	ImageURLs      []string `json:"imageUrls"`
	ImagePublicIDs []string `json:"imagePublicIds"`
	Description    string   `json:"description"`
	Price          int      `json:"price"`
	WhatsappNumber string   `json:"whatsappNumber"`
	Status         string   `json:"status"`
	ApprovalStatus string   `json:"approvalStatus"`
	DatePosted     string   `json:"datePosted"`
	SellerName     string   `json:"sellerName"`
}

// MainImage returns the first image URL, used as the card thumbnail.
func (m *MarketplaceItem) MainImage() string {
	if len(m.ImageURLs) > 0 {
		return m.ImageURLs[0]
	}
	return ""
}
