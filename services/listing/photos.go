package listing

import (
	"context"
	"io"
	"time"

	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/storage"
	"github.com/komo3344/airbnb-backend/utils"

	"go.uber.org/zap"
)

func (s *DefaultListingService) upload(ctx context.Context, file io.Reader, folder, description string) (*models.Photo, error) {
	if s.Storage == nil {
		return nil, storage.ErrUnavailable
	}
	res, err := s.Storage.UploadFile(ctx, file, folder)
	if err != nil {
		return nil, err
	}
	return &models.Photo{
		PublicID:    res.PublicID,
		URL:         res.URL,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// dropPhotos removes files from the media host. Failures leave orphans behind
// and are only logged.
func (s *DefaultListingService) dropPhotos(ctx context.Context, photos []models.Photo) {
	if s.Storage == nil {
		return
	}
	for _, p := range photos {
		if err := s.Storage.DeleteFile(ctx, p.PublicID); err != nil {
			utils.GetLogger().Warn("Failed to delete photo", zap.String("publicID", p.PublicID), zap.Error(err))
		}
	}
}
