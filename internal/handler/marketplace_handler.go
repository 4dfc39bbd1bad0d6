package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
	"github.com/Pleasure08/gplsmarthubb/pkg/cloudinary"
	"github.com/Pleasure08/gplsmarthubb/pkg/paystack"
)

// PaymentVerifier confirms a listing-fee transaction before a sell
// upload is accepted.
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

type MarketplaceHandler struct {
	items    store.MarketplaceStore
	settings store.SettingsStore
	cloud    cloudinary.Client
	payments PaymentVerifier
	// listingFeeKobo gates the sell flow; zero disables the gate.
	listingFeeKobo int64
}

func NewMarketplaceHandler(items store.MarketplaceStore, settings store.SettingsStore, cloud cloudinary.Client, payments PaymentVerifier, listingFeeKobo int64) *MarketplaceHandler {
	return &MarketplaceHandler{
		items:          items,
		settings:       settings,
		cloud:          cloud,
		payments:       payments,
		listingFeeKobo: listingFeeKobo,
	}
}

// List is the public marketplace: approved, still-available items only.
// Degrades to an empty array on backend failure.
func (h *MarketplaceHandler) List(c *gin.Context) {
	items, err := h.items.ListPublic(c.Request.Context())
	if err != nil {
		log.Printf("marketplace list: %v", err)
		c.JSON(http.StatusOK, []models.MarketplaceItem{})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAll is the admin view, moderation queue included.
func (h *MarketplaceHandler) ListAll(c *gin.Context) {
	items, err := h.items.ListAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MarketplaceHandler) Get(c *gin.Context) {
	item, err := h.items.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":             item.ID,
		"title":          item.Title,
		"description":    item.Description,
		"price":          item.Price,
		"category":       item.Category,
		"sellerName":     item.SellerName,
		"whatsappNumber": item.WhatsappNumber,
		"imageUrl":       item.MainImage(),
		"images":         item.ImageURLs,
		"status":         item.Status,
		"approvalStatus": item.ApprovalStatus,
		"datePosted":     item.DatePosted,
	})
}

// Upload is the public sell flow. When a listing fee is configured the
// supplied payment reference must verify as paid for exactly the fee
// before anything is stored. New items start pending unless the
// autoApproveListings setting is on.
func (h *MarketplaceHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	category := c.PostForm("category")
	if !domain.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	price, err := strconv.Atoi(c.PostForm("price"))
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative number"})
		return
	}

	if h.listingFeeKobo > 0 && h.payments != nil {
		ref := c.PostForm("paymentReference")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment reference is required"})
			return
		}
		res, err := h.payments.Verify(ctx, ref)
		if err != nil {
			writeStoreError(c, err, "payment reference not found")
			return
		}
		if !res.Paid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment was not successful"})
			return
		}
		if res.AmountKobo != h.listingFeeKobo {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment amount does not match the listing fee"})
			return
		}
	}

	imageCount, _ := strconv.Atoi(c.PostForm("imageCount"))
	urls, pids, err := uploadListingImages(c, h.cloud, "marketplace", imageCount)
	if err != nil {
		writeStoreError(c, err, "")
		return
	}

	approval := domain.ApprovalPending
	if settings, err := h.settings.Get(ctx); err == nil {
		if auto, ok := settings["autoApproveListings"].(bool); ok && auto {
			approval = domain.ApprovalApproved
		}
	}

	item := &models.MarketplaceItem{
		Title:          title,
		Category:       category,
		ImageURLs:      urls,
		ImagePublicIDs: pids,
		Description:    c.PostForm("description"),
		Price:          price,
		WhatsappNumber: c.PostForm("whatsappNumber"),
		Status:         domain.ItemStatusAvailable,
		ApprovalStatus: approval,
		SellerName:     c.PostForm("sellerName"),
	}
	if err := h.items.Insert(ctx, item); err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

type updateStatusRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// UpdateStatus marks an item sold (or available again).
func (h *MarketplaceHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and status are required"})
		return
	}
	if err := h.items.SetStatus(c.Request.Context(), req.ItemID, req.Status); err != nil {
		writeStoreError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type approvalRequest struct {
	ApprovalStatus string `json:"approvalStatus" binding:"required"`
}

// SetApproval is the admin moderation action: pending items move to
// approved or rejected, and the sale status is derived in the same write.
func (h *MarketplaceHandler) SetApproval(c *gin.Context) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approvalStatus is required"})
		return
	}
	item, err := h.items.SetApprovalStatus(c.Request.Context(), c.Param("id"), req.ApprovalStatus)
	if err != nil {
		writeStoreError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Marketplace item approval status updated successfully",
		"item": gin.H{
			"id":             item.ID,
			"title":          item.Title,
			"approvalStatus": item.ApprovalStatus,
			"status":         item.Status,
		},
	})
}

// Delete removes the item's CDN blobs, then the row. The clear-all
// sentinel wipes the whole collection.
func (h *MarketplaceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "clear-all" {
		h.clearAll(c)
		return
	}
	ctx := c.Request.Context()
	item, err := h.items.Find(ctx, id)
	if err != nil {
		writeStoreError(c, err, "Item not found")
		return
	}
	for _, pid := range item.ImagePublicIDs {
		if err := h.cloud.Delete(ctx, pid, cloudinary.ResourceImage); err != nil {
			log.Printf("item %s: delete image blob %s: %v", id, pid, err)
		}
	}
	if err := h.items.Delete(ctx, id); err != nil {
		writeStoreError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Marketplace item deleted successfully"})
}

func (h *MarketplaceHandler) clearAll(c *gin.Context) {
	n, err := h.items.Clear(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully cleared " + strconv.Itoa(n) + " items"})
}
