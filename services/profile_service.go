package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/djruiz44/wrestling-hub/repositories"
	"github.com/djruiz44/wrestling-hub/storage"
	"golang.org/x/sync/errgroup"
)

type ProfileService interface {
	Get(ctx context.Context, userID int) (*ProfileView, error)
	Update(ctx context.Context, userID int, input UpdateProfileInput) (*ProfileView, error)
}

// ProfileView is everything the profile form needs: the user's attributes,
// the colleges currently selected, and the full list to choose from.
type ProfileView struct {
	User              *models.User     `json:"user"`
	AvailableColleges []models.College `json:"available_colleges"`
}

type UpdateProfileInput struct {
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	GraduationYear *int     `json:"graduation_year"`
	GPA            *float64 `json:"gpa"`
	Team           *string  `json:"team"`
	School         *string  `json:"school"`
	Club           *string  `json:"club"`
	Height         *string  `json:"height"`
	WeightClass    *string  `json:"weight_class"`
	CollegeIDs     []int    `json:"college_ids"`
}

type profileService struct {
	tx          repositories.Transactor
	userRepo    repositories.UserRepository
	collegeRepo repositories.CollegeRepository
	uploader    storage.FileUploader
}

func NewProfileService(
	tx repositories.Transactor,
	userRepo repositories.UserRepository,
	collegeRepo repositories.CollegeRepository,
	uploader storage.FileUploader,
) ProfileService {
	return &profileService{
		tx:          tx,
		userRepo:    userRepo,
		collegeRepo: collegeRepo,
		uploader:    uploader,
	}
}

// Get fetches the user, their selected colleges and the available college
// list concurrently.
func (s *profileService) Get(ctx context.Context, userID int) (*ProfileView, error) {
	var (
		user         *models.User
		userColleges []models.College
		allColleges  []models.College
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.userRepo.GetByID(gCtx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user %d: %w", userID, err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		colleges, err := s.collegeRepo.ListByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load colleges for user %d: %w", userID, err)
		}
		userColleges = colleges
		return nil
	})
	g.Go(func() error {
		colleges, err := s.collegeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load college list: %w", err)
		}
		allColleges = colleges
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	user.Colleges = userColleges
	populateCollegeLogoURLs(user.Colleges, s.uploader)
	populateCollegeLogoURLs(allColleges, s.uploader)

	return &ProfileView{
		User:              user,
		AvailableColleges: allColleges,
	}, nil
}

// Update overwrites the mutable profile attributes and replaces the college
// associations atomically: both commit or neither does.
func (s *profileService) Update(ctx context.Context, userID int, input UpdateProfileInput) (*ProfileView, error) {
	user := &models.User{
		ID:             userID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		GraduationYear: input.GraduationYear,
		GPA:            input.GPA,
		Team:           input.Team,
		School:         input.School,
		Club:           input.Club,
		Height:         input.Height,
		WeightClass:    input.WeightClass,
	}

	err := s.tx.RunInTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.userRepo.UpdateProfile(ctx, exec, user); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to update profile for user %d: %w", userID, err)
		}
		if err := s.collegeRepo.ReplaceForUser(ctx, exec, userID, input.CollegeIDs); err != nil {
			if errors.Is(err, repositories.ErrCollegeInvalid) {
				return ErrCollegeInvalid
			}
			return fmt.Errorf("failed to replace colleges for user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}
