package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/internal/models"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
)

// DefaultSubjects are created by the seeder.
var DefaultSubjects = []string{
	"M-II",
	"DSPD-I",
	"DCMP",
	"BEE",
	"DMGT",
	"HISP-II",
	"BEE (LAB)",
	"DSPD-I (LAB)",
	"DCMP (LAB)",
}

// DefaultHabits are recurring habits created by the seeder.
var DefaultHabits = []string{"Morning Jog", "Read 30 mins"}

type seedUsers interface {
	EnsureByUsername(ctx context.Context, username string) (*models.User, error)
}

type seedSubjects interface {
	List(ctx context.Context, userID string) ([]models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
}

type seedHabits interface {
	ListByUser(ctx context.Context, userID string) ([]models.Habit, error)
	Create(ctx context.Context, habit *models.Habit) error
}

// SeedResult summarises a seeding run.
type SeedResult struct {
	User            *models.User
	SubjectsCreated []string
	SubjectsSkipped []string
	HabitsCreated   []string
	HabitsSkipped   []string
}

// SeedService populates a fresh database with demo data.
type SeedService struct {
	users    seedUsers
	subjects seedSubjects
	habits   seedHabits
	logger   *zap.Logger
}

// NewSeedService constructs a SeedService.
func NewSeedService(users seedUsers, subjects seedSubjects, habits seedHabits, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{users: users, subjects: subjects, habits: habits, logger: logger}
}

// Seed ensures the user and creates the default subjects and habits it lacks.
// Running it again changes nothing.
func (s *SeedService) Seed(ctx context.Context, username string) (*SeedResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "username is required")
	}
	user, err := s.users.EnsureByUsername(ctx, username)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to ensure user")
	}
	result := &SeedResult{User: user}

	subjects, err := s.subjects.List(ctx, user.ID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list subjects")
	}
	existing := make(map[string]bool, len(subjects))
	for _, subject := range subjects {
		existing[strings.ToLower(subject.Name)] = true
	}
	for _, name := range DefaultSubjects {
		if existing[strings.ToLower(name)] {
			result.SubjectsSkipped = append(result.SubjectsSkipped, name)
			continue
		}
		if err := s.subjects.Create(ctx, &models.Subject{UserID: user.ID, Name: name}); err != nil {
			return nil, appErrors.Internal(err, "failed to create subject "+name)
		}
		result.SubjectsCreated = append(result.SubjectsCreated, name)
	}

	habits, err := s.habits.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list habits")
	}
	existing = make(map[string]bool, len(habits))
	for _, habit := range habits {
		existing[strings.ToLower(habit.Name)] = true
	}
	for _, name := range DefaultHabits {
		if existing[strings.ToLower(name)] {
			result.HabitsSkipped = append(result.HabitsSkipped, name)
			continue
		}
		if err := s.habits.Create(ctx, &models.Habit{UserID: user.ID, Name: name, IsRecurring: true}); err != nil {
			return nil, appErrors.Internal(err, "failed to create habit "+name)
		}
		result.HabitsCreated = append(result.HabitsCreated, name)
	}

	s.logger.Info("seed complete",
		zap.String("user_id", user.ID),
		zap.Int("subjects_created", len(result.SubjectsCreated)),
		zap.Int("habits_created", len(result.HabitsCreated)),
	)
	return result, nil
}
