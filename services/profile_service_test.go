package services

import (
	"context"
	"errors"
	"testing"

	"github.com/djruiz44/wrestling-hub/models"
)

func profileFixtures(t *testing.T) (*fakeUserRepo, *fakeCollegeRepo, ProfileService, int) {
	t.Helper()

	userRepo := newFakeUserRepo()
	collegeRepo := newFakeCollegeRepo(
		models.College{ID: 1, Name: "State University"},
		models.College{ID: 2, Name: "City College"},
		models.College{ID: 3, Name: "Valley Tech"},
	)
	service := NewProfileService(fakeTransactor{}, userRepo, collegeRepo, nil)

	user := &models.User{Username: "alice", PasswordHash: "hash"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return userRepo, collegeRepo, service, user.ID
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestProfileGet(t *testing.T) {
	_, collegeRepo, service, userID := profileFixtures(t)

	if err := collegeRepo.ReplaceForUser(context.Background(), nil, userID, []int{1}); err != nil {
		t.Fatalf("failed to seed selection: %v", err)
	}

	view, err := service.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if view.User.Username != "alice" {
		t.Errorf("expected username alice, got %q", view.User.Username)
	}
	if view.User.PasswordHash != "" {
		t.Error("profile view must not carry the password hash")
	}
	if len(view.User.Colleges) != 1 || view.User.Colleges[0].Name != "State University" {
		t.Errorf("unexpected selected colleges: %+v", view.User.Colleges)
	}
	if len(view.AvailableColleges) != 3 {
		t.Errorf("expected 3 available colleges, got %d", len(view.AvailableColleges))
	}
}

func TestProfileGetUnknownUser(t *testing.T) {
	_, _, service, _ := profileFixtures(t)

	_, err := service.Get(context.Background(), 999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileUpdate(t *testing.T) {
	userRepo, _, service, userID := profileFixtures(t)

	gpa := 3.8
	view, err := service.Update(context.Background(), userID, UpdateProfileInput{
		FirstName:      strPtr("Alice"),
		LastName:       strPtr("Jones"),
		GraduationYear: intPtr(2026),
		GPA:            &gpa,
		Team:           strPtr("Varsity"),
		WeightClass:    strPtr("126"),
		CollegeIDs:     []int{1, 2},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if view.User.FirstName == nil || *view.User.FirstName != "Alice" {
		t.Errorf("first name not updated: %+v", view.User.FirstName)
	}
	if view.User.GPA == nil || *view.User.GPA != 3.8 {
		t.Errorf("gpa not updated: %+v", view.User.GPA)
	}
	if len(view.User.Colleges) != 2 {
		t.Errorf("expected 2 selected colleges, got %d", len(view.User.Colleges))
	}

	stored := userRepo.byID[userID]
	if stored.Username != "alice" {
		t.Errorf("username must not change on profile update, got %q", stored.Username)
	}
	if stored.PasswordHash != "hash" {
		t.Error("password hash must not change on profile update")
	}
}

func TestProfileUpdateReplacesColleges(t *testing.T) {
	_, _, service, userID := profileFixtures(t)

	if _, err := service.Update(context.Background(), userID, UpdateProfileInput{CollegeIDs: []int{1, 2}}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	view, err := service.Update(context.Background(), userID, UpdateProfileInput{CollegeIDs: []int{2, 3}})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	got := make(map[int]bool)
	for _, college := range view.User.Colleges {
		got[college.ID] = true
	}
	if len(got) != 2 || !got[2] || !got[3] {
		t.Errorf("expected selection replaced with {2, 3}, got %+v", view.User.Colleges)
	}
	if got[1] {
		t.Error("college 1 should have been removed, associations are replaced not merged")
	}
}

func TestProfileUpdateClearsColleges(t *testing.T) {
	_, _, service, userID := profileFixtures(t)

	if _, err := service.Update(context.Background(), userID, UpdateProfileInput{CollegeIDs: []int{1}}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	view, err := service.Update(context.Background(), userID, UpdateProfileInput{CollegeIDs: []int{}})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if len(view.User.Colleges) != 0 {
		t.Errorf("expected empty selection, got %+v", view.User.Colleges)
	}
}

func TestProfileUpdateInvalidCollege(t *testing.T) {
	_, collegeRepo, service, userID := profileFixtures(t)

	if err := collegeRepo.ReplaceForUser(context.Background(), nil, userID, []int{1}); err != nil {
		t.Fatalf("failed to seed selection: %v", err)
	}

	_, err := service.Update(context.Background(), userID, UpdateProfileInput{CollegeIDs: []int{1, 999}})
	if !errors.Is(err, ErrCollegeInvalid) {
		t.Fatalf("expected ErrCollegeInvalid, got %v", err)
	}

	// The existing selection survives the rejected update.
	selected, err := collegeRepo.ListByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListByUserID returned error: %v", err)
	}
	if len(selected) != 1 || selected[0].ID != 1 {
		t.Errorf("selection changed after rejected update: %+v", selected)
	}
}

func TestProfileUpdateUnknownUser(t *testing.T) {
	_, _, service, _ := profileFixtures(t)

	_, err := service.Update(context.Background(), 999, UpdateProfileInput{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
