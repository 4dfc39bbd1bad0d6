package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
	"github.com/Pleasure08/gplsmarthubb/pkg/cloudinary"
)

func newPublicID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}

// uploadListingImages reads image_0..image_{count-1} from the multipart
// form and stores each on the CDN. Returns parallel URL and public ID
// lists.
func uploadListingImages(c *gin.Context, cloud cloudinary.Client, folder string, count int) ([]string, []string, error) {
	if count < 1 {
		return nil, nil, store.NewValidation("at least one image is required")
	}
	if count > domain.MaxListingImages {
		return nil, nil, store.NewValidation("maximum %d images allowed", domain.MaxListingImages)
	}
	urls := make([]string, 0, count)
	pids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		fh, err := c.FormFile(fmt.Sprintf("image_%d", i))
		if err != nil {
			return nil, nil, store.NewValidation("image %d is missing", i+1)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, nil, store.NewValidation("could not read image %d", i+1)
		}
		url, pid, err := cloud.UploadImage(c.Request.Context(), f, folder, newPublicID(folder))
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("upload image %d: %w", i+1, err)
		}
		urls = append(urls, url)
		pids = append(pids, pid)
	}
	return urls, pids, nil
}
