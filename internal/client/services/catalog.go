package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillfit/internal/client/client"
	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/logging"
)

var ErrNotSignedIn = errors.New("not signed in")

// CatalogService serves the read-mostly screens: scan history, the course
// catalogue, the admin dashboard and the student roster. Every call uses the
// current credential; a 401 from the backend ends the local session.
type CatalogService interface {
	ScanHistory(ctx context.Context) ([]models.ScanRecord, error)
	Courses(ctx context.Context, f models.CourseFilter) (models.CoursePage, error)
	AddCourse(ctx context.Context, c models.Course) error
	DeleteCourse(ctx context.Context, id int) error
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	Students(ctx context.Context) ([]models.Student, error)
	AddStudent(ctx context.Context, s models.Student) error
	DeleteStudent(ctx context.Context, id int) error
}

type catalogService struct {
	client  client.Client
	session Session
	logger  logging.Logger
}

func NewCatalogService(c client.Client, s Session, logger logging.Logger) CatalogService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &catalogService{client: c, session: s, logger: logger.With("component", "catalog")}
}

// call runs fn with the current credential.
func (s *catalogService) call(ctx context.Context, op string, fn func(credential string) error) error {
	cred, ok := s.session.Credential()
	if !ok {
		return ErrNotSignedIn
	}

	err := fn(cred)
	if err == nil {
		return nil
	}
	if errors.Is(err, client.ErrUnauthorized) {
		s.logger.Warn(ctx, "credential rejected, signing out", "op", op)
		if cerr := s.session.ClearCredential(ctx); cerr != nil {
			s.logger.Error(ctx, "clear credential failed", "error", cerr)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *catalogService) ScanHistory(ctx context.Context) ([]models.ScanRecord, error) {
	var out []models.ScanRecord
	err := s.call(ctx, "scan history", func(cred string) (err error) {
		out, err = s.client.ScanHistory(ctx, cred)
		return err
	})
	return out, err
}

func (s *catalogService) Courses(ctx context.Context, f models.CourseFilter) (models.CoursePage, error) {
	var out models.CoursePage
	err := s.call(ctx, "courses", func(cred string) (err error) {
		out, err = s.client.Courses(ctx, cred, f)
		return err
	})
	return out, err
}

func (s *catalogService) AddCourse(ctx context.Context, c models.Course) error {
	if err := checkForm(c); err != nil {
		return err
	}
	return s.call(ctx, "add course", func(cred string) error {
		return s.client.AddCourse(ctx, cred, c)
	})
}

func (s *catalogService) DeleteCourse(ctx context.Context, id int) error {
	return s.call(ctx, "delete course", func(cred string) error {
		return s.client.DeleteCourse(ctx, cred, id)
	})
}

func (s *catalogService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := s.call(ctx, "dashboard", func(cred string) (err error) {
		out, err = s.client.DashboardStats(ctx, cred)
		return err
	})
	return out, err
}

func (s *catalogService) Students(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	err := s.call(ctx, "students", func(cred string) (err error) {
		out, err = s.client.Students(ctx, cred)
		return err
	})
	return out, err
}

func (s *catalogService) AddStudent(ctx context.Context, st models.Student) error {
	if err := checkForm(st); err != nil {
		return err
	}
	return s.call(ctx, "add student", func(cred string) error {
		return s.client.AddStudent(ctx, cred, st)
	})
}

func (s *catalogService) DeleteStudent(ctx context.Context, id int) error {
	return s.call(ctx, "delete student", func(cred string) error {
		return s.client.DeleteStudent(ctx, cred, id)
	})
}
