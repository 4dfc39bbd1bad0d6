// Package cloudinary wraps the Cloudinary upload API behind a small
// interface so handlers and tests do not couple to the SDK.
package cloudinary

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

const (
	ResourceImage = "image"
	ResourceVideo = "video"

	// All blobs live under one root folder per deployment.
	rootFolder = "gpl-smarthub"
)

// Client stores and removes media blobs.
type Client interface {
	// UploadImage stores an image and returns its URL and public ID.
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url, pid string, err error)
	// UploadVideo stores a video; same shape, larger payloads.
	UploadVideo(ctx context.Context, file io.Reader, folder, publicID string) (url, pid string, err error)
	// Delete removes a blob by public ID. Removing an already-removed
	// ID is not an error.
	Delete(ctx context.Context, publicID, resourceType string) error
}

type clientImpl struct {
	uploader *uploader.API
}

// NewClientFromParams builds a Client from cloud name, API key and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{uploader: up}, nil
}

func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:   rootFolder + "/" + folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

func (c *clientImpl) UploadVideo(ctx context.Context, file io.Reader, folder, publicID string) (string, string, error) {
	// The SDK takes chunk size on the API config, not per upload.
	c.uploader.Config.API.ChunkSize = 6000000
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:       rootFolder + "/" + folder,
		PublicID:     publicID,
		ResourceType: ResourceVideo,
	})
	if err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

func (c *clientImpl) Delete(ctx context.Context, publicID, resourceType string) error {
	if resourceType == "" {
		resourceType = ResourceImage
	}
	res, err := c.uploader.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return err
	}
	// "not found" counts as deleted.
	if res.Result != "ok" && !strings.Contains(res.Result, "not found") {
		return fmt.Errorf("cloudinary: destroy %s: %s", publicID, res.Result)
	}
	return nil
}
