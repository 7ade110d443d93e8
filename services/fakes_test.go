package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/djruiz44/wrestling-hub/repositories"
)

// In-memory fakes for the repository interfaces. Each fake emulates the
// contract of its SQL counterpart, including the uniqueness and ordering
// guarantees the real schema provides.

type fakeUserRepo struct {
	mu         sync.Mutex
	byID       map[int]*models.User
	byUsername map[string]*models.User
	nextID     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[int]*models.User),
		byUsername: make(map[string]*models.User),
		nextID:     1,
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Emulates the users_username_key constraint.
	if _, exists := f.byUsername[user.Username]; exists {
		return repositories.ErrUsernameTaken
	}

	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()

	stored := *user
	f.byID[stored.ID] = &stored
	f.byUsername[stored.Username] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.byUsername[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, exec repositories.SQLExecutor, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.byID[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.GraduationYear = user.GraduationYear
	stored.GPA = user.GPA
	stored.Team = user.Team
	stored.School = user.School
	stored.Club = user.Club
	stored.Height = user.Height
	stored.WeightClass = user.WeightClass
	return nil
}

type fakeCollegeRepo struct {
	mu         sync.Mutex
	colleges   map[int]models.College
	selections map[int][]int // user id -> college ids
}

func newFakeCollegeRepo(colleges ...models.College) *fakeCollegeRepo {
	f := &fakeCollegeRepo{
		colleges:   make(map[int]models.College),
		selections: make(map[int][]int),
	}
	for _, college := range colleges {
		f.colleges[college.ID] = college
	}
	return f
}

func (f *fakeCollegeRepo) List(ctx context.Context) ([]models.College, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]models.College, 0, len(f.colleges))
	for _, college := range f.colleges {
		result = append(result, college)
	}
	sortColleges(result)
	return result, nil
}

func (f *fakeCollegeRepo) GetByID(ctx context.Context, id int) (*models.College, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	college, ok := f.colleges[id]
	if !ok {
		return nil, repositories.ErrCollegeNotFound
	}
	return &college, nil
}

func (f *fakeCollegeRepo) ListByUserID(ctx context.Context, userID int) ([]models.College, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]models.College, 0)
	for _, collegeID := range f.selections[userID] {
		if college, ok := f.colleges[collegeID]; ok {
			result = append(result, college)
		}
	}
	sortColleges(result)
	return result, nil
}

func (f *fakeCollegeRepo) ReplaceForUser(ctx context.Context, exec repositories.SQLExecutor, userID int, collegeIDs []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Emulates the user_colleges_college_id_fkey constraint.
	for _, collegeID := range collegeIDs {
		if _, ok := f.colleges[collegeID]; !ok {
			return repositories.ErrCollegeInvalid
		}
	}
	f.selections[userID] = append([]int(nil), collegeIDs...)
	return nil
}

func (f *fakeCollegeRepo) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	college, ok := f.colleges[id]
	if !ok {
		return repositories.ErrCollegeNotFound
	}
	college.LogoKey = logoKey
	f.colleges[id] = college
	return nil
}

func sortColleges(colleges []models.College) {
	sort.SliceStable(colleges, func(i, j int) bool {
		if colleges[i].Name != colleges[j].Name {
			return colleges[i].Name < colleges[j].Name
		}
		return colleges[i].ID < colleges[j].ID
	})
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []models.Event
	nextID int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	event.ID = f.nextID
	f.nextID++
	event.CreatedAt = time.Now()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventRepo) ListAll(ctx context.Context) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := append([]models.Event(nil), f.events...)
	// Emulates ORDER BY date ASC, id ASC.
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches []models.Match
	nextID  int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{nextID: 1}
}

func (f *fakeMatchRepo) Create(ctx context.Context, match *models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	match.ID = f.nextID
	f.nextID++
	match.CreatedAt = time.Now()
	f.matches = append(f.matches, *match)
	return nil
}

func (f *fakeMatchRepo) ListByUserID(ctx context.Context, userID int) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]models.Match, 0)
	for _, match := range f.matches {
		if match.UserID == userID {
			result = append(result, match)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	messages []models.ContactMessage
	nextID   int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{nextID: 1}
}

func (f *fakeContactRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	message.ID = f.nextID
	f.nextID++
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeContactRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

// fakeNotifier records notification attempts and can simulate a failing
// transport.
type fakeNotifier struct {
	mu        sync.Mutex
	err       error
	calls     int
	lastEmail string
}

func (f *fakeNotifier) SendContactNotification(email, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastEmail = email
	return f.err
}

// fakeTransactor runs the function without a real transaction; the fakes
// ignore the executor anyway.
type fakeTransactor struct{}

func (fakeTransactor) RunInTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}
