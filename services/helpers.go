package services

import (
	"fmt"
	"strings"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/djruiz44/wrestling-hub/storage"
)

func populateCollegeLogoURL(college *models.College, uploader storage.FileUploader) {
	if college == nil || uploader == nil || college.LogoKey == nil || *college.LogoKey == "" {
		return
	}
	if url := uploader.GetPublicURL(*college.LogoKey); url != "" {
		college.LogoURL = &url
	}
}

func populateCollegeLogoURLs(colleges []models.College, uploader storage.FileUploader) {
	for i := range colleges {
		populateCollegeLogoURL(&colleges[i], uploader)
	}
}

func extensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/svg+xml":
		return ".svg", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && parts[0] == "image" && parts[1] != "" {
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("unsupported logo content type: %q", contentType)
	}
}
