package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

// writeStoreError maps storage failures to HTTP responses. Client faults
// keep their message; operator faults (config, auth) are logged in full
// and answered with a generic message.
func writeStoreError(c *gin.Context, err error, notFoundMsg string) {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	if store.IsTransient(err) {
		log.Printf("%s %s: transient backend failure: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable, try again"})
		return
	}
	var aerr *store.AuthError
	var cerr *store.ConfigError
	if errors.As(err, &aerr) || errors.As(err, &cerr) {
		log.Printf("%s %s: backend misconfiguration: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
