package utils

import (
	"fmt"

	"github.com/komo3344/airbnb-backend/config"
	"github.com/komo3344/airbnb-backend/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary returns a Cloudinary-backed StorageService built from the
// CLOUDINARY_* settings. It returns nil, nil when they are not configured.
func Cloudinary() (storage.StorageService, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewStorageService(cld), nil
}
