package domain

// Tab titles inside the backing spreadsheet. Collections are always
// addressed by these names, never by positional index.
const (
	TabHostels     = "Hostels"
	TabMarketplace = "Marketplace"
	TabSettings    = "Settings"
)

const (
	HostelStatusAvailable = "available"
	HostelStatusFull      = "full"
)

const (
	ItemStatusAvailable   = "available"
	ItemStatusSold        = "sold"
	ItemStatusPending     = "pending"
	ItemStatusUnavailable = "unavailable"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Categories a marketplace item can be posted under.
var Categories = []string{"books", "electronics", "accessories", "clothing", "other"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// MaxListingImages caps images per hostel or marketplace listing.
const MaxListingImages = 4

// Column headers, in storage order. The row codec writes cells in exactly
// this order and reads them by header name.
var (
	HostelHeaders = []string{
		"ID", "Name", "Location", "Price Per Year", "Image URLs",
		"Image Public IDs", "Video URL", "Video Public ID",
		"WhatsApp Contact", "Description", "Status", "Date Added", "Views",
	}
	MarketplaceHeaders = []string{
		"ID", "Title", "Category", "Image URLs", "Image Public IDs",
		"Description", "Price", "WhatsApp Number", "Status",
		"Approval Status", "Date Posted", "Seller Name",
	}
	SettingsHeaders = []string{"Key", "Value", "Type", "Description", "Updated"}
)

const (
	SettingTypeString  = "string"
	SettingTypeBoolean = "boolean"
	SettingTypeNumber  = "number"
)

// SettingSeed is one default settings row, written once when the Settings
// collection is first created.
type SettingSeed struct {
	Key         string
	Value       string
	Type        string
	Description string
}

var DefaultSettings = []SettingSeed{
	{Key: "siteName", Value: "GPL SmartHub", Type: SettingTypeString, Description: "Site name"},
	{Key: "siteDescription", Value: "Student accommodation platform", Type: SettingTypeString, Description: "Site description"},
	{Key: "maintenanceMode", Value: "false", Type: SettingTypeBoolean, Description: "Maintenance mode toggle"},
	{Key: "allowRegistrations", Value: "true", Type: SettingTypeBoolean, Description: "Allow new registrations"},
	{Key: "emailNotifications", Value: "true", Type: SettingTypeBoolean, Description: "Email notifications"},
	{Key: "smsNotifications", Value: "false", Type: SettingTypeBoolean, Description: "SMS notifications"},
	{Key: "autoApproveListings", Value: "false", Type: SettingTypeBoolean, Description: "Auto approve listings"},
	{Key: "maxFileSize", Value: "10", Type: SettingTypeNumber, Description: "Max file size in MB"},
	{Key: "supportEmail", Value: "gplsmarthub@gmail.com", Type: SettingTypeString, Description: "Support email"},
	{Key: "supportPhone", Value: "+2348153518887", Type: SettingTypeString, Description: "Support phone"},
	{Key: "facebookUrl", Value: "", Type: SettingTypeString, Description: "Facebook URL"},
	{Key: "twitterUrl", Value: "", Type: SettingTypeString, Description: "Twitter URL"},
	{Key: "instagramUrl", Value: "", Type: SettingTypeString, Description: "Instagram URL"},
}
