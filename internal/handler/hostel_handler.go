package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
	"github.com/Pleasure08/gplsmarthubb/pkg/cloudinary"
)

type HostelHandler struct {
	hostels store.HostelStore
	cloud   cloudinary.Client
}

func NewHostelHandler(hostels store.HostelStore, cloud cloudinary.Client) *HostelHandler {
	return &HostelHandler{hostels: hostels, cloud: cloud}
}

// List degrades to an empty array on backend failure so the listing page
// stays usable when the backing store hiccups.
func (h *HostelHandler) List(c *gin.Context) {
	hostels, err := h.hostels.List(c.Request.Context())
	if err != nil {
		log.Printf("hostels list: %v", err)
		c.JSON(http.StatusOK, []models.Hostel{})
		return
	}
	c.JSON(http.StatusOK, hostels)
}

// Get returns one hostel and counts the view.
func (h *HostelHandler) Get(c *gin.Context) {
	hostel, err := h.hostels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "Hostel not found")
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// Create is the admin upload: stores 1-4 images (and an optional video)
// on the CDN, then appends the listing.
func (h *HostelHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	location := c.PostForm("location")
	if name == "" || location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}
	price, err := strconv.Atoi(c.PostForm("pricePerYear"))
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pricePerYear must be a non-negative number"})
		return
	}
	status := c.PostForm("status")
	if status == "" {
		status = domain.HostelStatusAvailable
	}
	if status != domain.HostelStatusAvailable && status != domain.HostelStatusFull {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be available or full"})
		return
	}
	imageCount, _ := strconv.Atoi(c.PostForm("imageCount"))

	urls, pids, err := uploadListingImages(c, h.cloud, "hostels", imageCount)
	if err != nil {
		writeStoreError(c, err, "")
		return
	}

	var videoURL, videoPID string
	if c.PostForm("hasVideo") == "true" {
		fh, err := c.FormFile("video")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "video file is missing"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read video"})
			return
		}
		videoURL, videoPID, err = h.cloud.UploadVideo(c.Request.Context(), f, "hostels", newPublicID("hostel_video"))
		f.Close()
		if err != nil {
			log.Printf("hostel video upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload video"})
			return
		}
	}

	hostel := &models.Hostel{
		Name:            name,
		Location:        location,
		PricePerYear:    price,
		ImageURLs:       urls,
		ImagePublicIDs:  pids,
		VideoURL:        videoURL,
		VideoPublicID:   videoPID,
		WhatsappContact: c.PostForm("whatsappContact"),
		Description:     c.PostForm("description"),
		Status:          status,
	}
	if err := h.hostels.Insert(c.Request.Context(), hostel); err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "hostel": hostel})
}

// Delete removes the CDN blobs first, then the listing row. The clear-all
// sentinel wipes the whole collection.
func (h *HostelHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "clear-all" {
		h.clearAll(c)
		return
	}
	ctx := c.Request.Context()
	hostel, err := h.hostels.Find(ctx, id)
	if err != nil {
		writeStoreError(c, err, "Hostel not found")
		return
	}
	for _, pid := range hostel.ImagePublicIDs {
		if err := h.cloud.Delete(ctx, pid, cloudinary.ResourceImage); err != nil {
			log.Printf("hostel %s: delete image blob %s: %v", id, pid, err)
		}
	}
	if hostel.VideoPublicID != "" {
		if err := h.cloud.Delete(ctx, hostel.VideoPublicID, cloudinary.ResourceVideo); err != nil {
			log.Printf("hostel %s: delete video blob %s: %v", id, hostel.VideoPublicID, err)
		}
	}
	if err := h.hostels.Delete(ctx, id); err != nil {
		writeStoreError(c, err, "Hostel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Hostel deleted successfully"})
}

func (h *HostelHandler) clearAll(c *gin.Context) {
	n, err := h.hostels.Clear(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully cleared " + strconv.Itoa(n) + " hostels"})
}
