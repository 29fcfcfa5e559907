package home

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/response"
)

// imageContentTypes maps the accepted upload extensions to their MIME types
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ImageContentType resolves a filename to the MIME type it is stored with;
// ok is false for extensions the upload endpoint does not accept.
func ImageContentType(filename string) (string, bool) {
	contentType, ok := imageContentTypes[strings.ToLower(filepath.Ext(filename))]
	return contentType, ok
}

// UploadUniversityImage replaces a university's campus photo. The file is
// stored in the Spaces bucket, the public URL saved on the row, and the
// previous image removed from the bucket.
func (h *HomeHandler) UploadUniversityImage(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.InternalServerError(c, "Image storage is not configured")
	}

	universityID, err := c.ParamsInt("id")
	if err != nil || universityID <= 0 {
		return response.BadRequest(c, "Invalid university id")
	}

	var university model.University
	if err := h.db.First(&university, universityID).Error; err != nil {
		return response.NotFound(c, "University not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "An image file is required")
	}

	contentType, ok := ImageContentType(fileHeader.Filename)
	if !ok {
		return response.BadRequest(c, "Unsupported image format")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	key := fmt.Sprintf("universities/%d_%d%s",
		university.ID, time.Now().Unix(), strings.ToLower(filepath.Ext(fileHeader.Filename)))

	url, err := h.spaces.UploadImage(c.Context(), key, file, contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to store image")
	}

	previousURL := university.ImageURL
	if err := h.db.Model(&university).Update("image_url", url).Error; err != nil {
		return response.InternalServerError(c, "Failed to save image URL")
	}

	// Replaced image is best-effort cleanup; the new URL is already live
	if oldKey := h.spaces.KeyFromURL(previousURL); oldKey != "" {
		_ = h.spaces.DeleteImage(c.Context(), oldKey)
	}

	return response.Success(c, fiber.Map{"image_url": url})
}
