package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"presentpath/internal/models"
)

// DocStore is the persistence boundary. Each method performs exactly one
// store operation; compound actions are sequenced by the workflow package.
type DocStore interface {
	Close() error
	ApplyMigrations(dir string) error

	CreateSchedule(s *models.Schedule) error
	GetSchedule(id string) (*models.Schedule, error)
	UpdateSchedule(s *models.Schedule) error
	DeleteSchedule(id string) error
	ListSchedules() ([]models.Schedule, error)
	SearchSchedules(query string) ([]models.Schedule, error)

	CreateCompleted(c *models.CompletedPresentation) error
	GetCompleted(id string) (*models.CompletedPresentation, error)
	DeleteCompleted(id string) error
	ListCompleted() ([]models.CompletedPresentation, error)

	CreateProfile(p *models.Profile) error
	GetProfile(id string) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
	UpdateProfile(p *models.Profile) error
	ListProfiles(role string) ([]models.Profile, error)
	SearchStudents(query string) ([]models.Profile, error)
	SetPushToken(id, token string) error

	CreateMark(m *models.Mark) error
	GetMark(studentNo, presentationTitle string) (*models.Mark, error)
	UpdateMark(m *models.Mark) error
	DeleteMark(studentNo, presentationTitle string) error
	ListMarks(year string) ([]models.Mark, error)
	ListMarksByStudent(studentNo string) ([]models.Mark, error)

	CreateNote(n *models.Note) error
	ListNotes(owner string) ([]models.Note, error)
	DeleteNote(id, owner string) error

	CreateRescheduleRequest(r *models.RescheduleRequest) error
	ListRescheduleRequests() ([]models.RescheduleRequest, error)
	UpdateRescheduleStatus(id, status string) error
}

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

// EscapeLike escapes LIKE metacharacters so search terms match literally.
// Queries using it must carry an ESCAPE '\' clause.
func EscapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
