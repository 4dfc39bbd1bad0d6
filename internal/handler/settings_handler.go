package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type SettingsHandler struct {
	settings store.SettingsStore
}

func NewSettingsHandler(settings store.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get returns the flat settings map, seeding defaults on first read.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update patches existing settings. Unknown keys are silently dropped.
func (h *SettingsHandler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}
	patch := make(map[string]string, len(body))
	for k, v := range body {
		patch[k] = fmt.Sprint(v)
	}
	if err := h.settings.Update(c.Request.Context(), patch); err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
