package client

import (
	"context"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
)

// Client is the backend API. Authorized calls take the bearer credential
// explicitly; the client itself holds no session.
type Client interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, req models.SignUpRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	UserDetails(ctx context.Context, credential string) (models.UserDetails, error)

	AnalyzeResume(ctx context.Context, credential string, file models.FileHandle, jobDescription string) (models.AnalysisResult, error)
	ScanHistory(ctx context.Context, credential string) ([]models.ScanRecord, error)

	Courses(ctx context.Context, credential string, f models.CourseFilter) (models.CoursePage, error)
	AddCourse(ctx context.Context, credential string, c models.Course) error
	DeleteCourse(ctx context.Context, credential string, id int) error

	DashboardStats(ctx context.Context, credential string) (models.DashboardStats, error)
	Students(ctx context.Context, credential string) ([]models.Student, error)
	AddStudent(ctx context.Context, credential string, s models.Student) error
	DeleteStudent(ctx context.Context, credential string, id int) error
}
