package services

import (
	"context"

	"github.com/dmitrijs2005/skillfit/internal/client/auth"
	"github.com/dmitrijs2005/skillfit/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	SignInRet string
	SignInErr error

	SignUpErr error
	ForgotErr error
	ResetErr  error

	DetailsRet models.UserDetails
	DetailsErr error

	HistoryRet []models.ScanRecord
	HistoryErr error

	CoursesRet models.CoursePage
	CoursesErr error
	MutateErr  error

	StatsRet    models.DashboardStats
	StudentsRet []models.Student

	Calls          []string
	LastCredential string
	LastEmail      string
	LastPassword   string
	LastToken      string
	LastSignUp     models.SignUpRequest
	LastFilter     models.CourseFilter
	LastCourse     models.Course
	LastStudent    models.Student
	LastID         int
}

func (f *fakeClient) record(name, cred string) {
	f.Calls = append(f.Calls, name)
	if cred != "" {
		f.LastCredential = cred
	}
}

func (f *fakeClient) SignIn(_ context.Context, email, password string) (string, error) {
	f.record("SignIn", "")
	f.LastEmail, f.LastPassword = email, password
	return f.SignInRet, f.SignInErr
}

func (f *fakeClient) SignUp(_ context.Context, req models.SignUpRequest) error {
	f.record("SignUp", "")
	f.LastSignUp = req
	return f.SignUpErr
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) error {
	f.record("ForgotPassword", "")
	f.LastEmail = email
	return f.ForgotErr
}

func (f *fakeClient) ResetPassword(_ context.Context, token, newPassword string) error {
	f.record("ResetPassword", "")
	f.LastToken, f.LastPassword = token, newPassword
	return f.ResetErr
}

func (f *fakeClient) UserDetails(_ context.Context, cred string) (models.UserDetails, error) {
	f.record("UserDetails", cred)
	return f.DetailsRet, f.DetailsErr
}

func (f *fakeClient) AnalyzeResume(_ context.Context, cred string, _ models.FileHandle, _ string) (models.AnalysisResult, error) {
	f.record("AnalyzeResume", cred)
	return models.AnalysisResult{}, nil
}

func (f *fakeClient) ScanHistory(_ context.Context, cred string) ([]models.ScanRecord, error) {
	f.record("ScanHistory", cred)
	return f.HistoryRet, f.HistoryErr
}

func (f *fakeClient) Courses(_ context.Context, cred string, flt models.CourseFilter) (models.CoursePage, error) {
	f.record("Courses", cred)
	f.LastFilter = flt
	return f.CoursesRet, f.CoursesErr
}

func (f *fakeClient) AddCourse(_ context.Context, cred string, c models.Course) error {
	f.record("AddCourse", cred)
	f.LastCourse = c
	return f.MutateErr
}

func (f *fakeClient) DeleteCourse(_ context.Context, cred string, id int) error {
	f.record("DeleteCourse", cred)
	f.LastID = id
	return f.MutateErr
}

func (f *fakeClient) DashboardStats(_ context.Context, cred string) (models.DashboardStats, error) {
	f.record("DashboardStats", cred)
	return f.StatsRet, nil
}

func (f *fakeClient) Students(_ context.Context, cred string) ([]models.Student, error) {
	f.record("Students", cred)
	return f.StudentsRet, nil
}

func (f *fakeClient) AddStudent(_ context.Context, cred string, s models.Student) error {
	f.record("AddStudent", cred)
	f.LastStudent = s
	return f.MutateErr
}

func (f *fakeClient) DeleteStudent(_ context.Context, cred string, id int) error {
	f.record("DeleteStudent", cred)
	f.LastID = id
	return f.MutateErr
}

// fakeSession decodes credentials like the real store but keeps them in memory.
type fakeSession struct {
	credential  string
	claims      auth.Claims
	displayName string
	clearErr    error
	cleared     int
}

func (s *fakeSession) SetCredential(_ context.Context, c string) error {
	claims, err := auth.Decode(c)
	if err != nil {
		return err
	}
	s.credential, s.claims, s.displayName = c, claims, ""
	return nil
}

func (s *fakeSession) ClearCredential(context.Context) error {
	s.cleared++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.credential, s.claims, s.displayName = "", auth.Claims{}, ""
	return nil
}

func (s *fakeSession) Credential() (string, bool) { return s.credential, s.credential != "" }

func (s *fakeSession) CurrentClaims() (auth.Claims, bool) { return s.claims, s.credential != "" }

func (s *fakeSession) SetDisplayName(name string) { s.displayName = name }
