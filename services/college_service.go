package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/djruiz44/wrestling-hub/repositories"
	"github.com/djruiz44/wrestling-hub/storage"
)

type CollegeService interface {
	List(ctx context.Context) ([]models.College, error)
	UploadLogo(ctx context.Context, collegeID int, contentType string, file io.Reader) (*models.College, error)
}

type collegeService struct {
	collegeRepo repositories.CollegeRepository
	uploader    storage.FileUploader
	logger      *slog.Logger
}

func NewCollegeService(collegeRepo repositories.CollegeRepository, uploader storage.FileUploader, logger *slog.Logger) CollegeService {
	return &collegeService{
		collegeRepo: collegeRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

func (s *collegeService) List(ctx context.Context) ([]models.College, error) {
	colleges, err := s.collegeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list colleges: %w", err)
	}
	if colleges == nil {
		return []models.College{}, nil
	}
	populateCollegeLogoURLs(colleges, s.uploader)
	return colleges, nil
}

// UploadLogo stores a new logo object for the college and replaces the stored
// key. The previous object is removed best-effort after the row is updated.
func (s *collegeService) UploadLogo(ctx context.Context, collegeID int, contentType string, file io.Reader) (*models.College, error) {
	if s.uploader == nil {
		return nil, ErrUploaderNotConfigured
	}

	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("failed to load college %d: %w", collegeID, err)
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		v := NewValidator()
		v.AddError("logo", err.Error())
		return nil, v.Err()
	}

	key := fmt.Sprintf("colleges/%d/logo%s", collegeID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload college logo: %w", err)
	}

	oldKey := college.LogoKey
	if err := s.collegeRepo.UpdateLogoKey(ctx, collegeID, &key); err != nil {
		return nil, fmt.Errorf("failed to store college logo key: %w", err)
	}

	if oldKey != nil && *oldKey != "" && *oldKey != key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.Warn("failed to delete previous college logo",
				slog.Int("college_id", collegeID),
				slog.String("key", *oldKey),
				slog.Any("error", err),
			)
		}
	}

	college.LogoKey = &key
	populateCollegeLogoURL(college, s.uploader)
	return college, nil
}
