package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/common"
)

// maxErrorBody bounds how much of a failed response is read for its detail.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client, e.g. in tests.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type request struct {
	method      string
	path        string
	query       url.Values
	credential  string
	body        io.Reader
	contentType string
}

func jsonBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// do sends r and decodes a 2xx body into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	if r.credential != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+r.credential)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, r.method, r.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ServiceError{StatusCode: resp.StatusCode, Detail: parseDetail(b)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, r.method, r.path, err)
	}
	return nil
}

// parseDetail extracts FastAPI's "detail", which is either a message or a
// list of validation errors.
func parseDetail(body []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(env.Detail, &list); err == nil {
		msgs := make([]string, 0, len(list))
		for _, v := range list {
			if v.Msg != "" {
				msgs = append(msgs, v.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (string, error) {
	form := url.Values{"username": {email}, "password": {password}}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, &out)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrMalformedResponse)
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, r models.SignUpRequest) error {
	body, err := jsonBody(r)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/signup", body: body, contentType: "application/json"}, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	body, err := jsonBody(map[string]string{"email": email})
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/forgot-password", body: body, contentType: "application/json"}, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	body, err := jsonBody(map[string]string{"token": token, "new_password": newPassword})
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/reset-password", body: body, contentType: "application/json"}, nil)
}

func (c *HTTPClient) UserDetails(ctx context.Context, credential string) (models.UserDetails, error) {
	var out models.UserDetails
	err := c.do(ctx, request{method: http.MethodGet, path: "/get-user-details", credential: credential}, &out)
	return out, err
}

func (c *HTTPClient) AnalyzeResume(ctx context.Context, credential string, file models.FileHandle, jobDescription string) (models.AnalysisResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	mime := file.MIME
	if mime == "" {
		mime = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	h.Set("Content-Type", mime)
	part, err := mw.CreatePart(h)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	if _, err := part.Write(file.Data); err != nil {
		return models.AnalysisResult{}, err
	}
	if err := mw.WriteField("job_description", jobDescription); err != nil {
		return models.AnalysisResult{}, err
	}
	if err := mw.Close(); err != nil {
		return models.AnalysisResult{}, err
	}

	var out struct {
		Analysis json.RawMessage `json:"analysis"`
	}
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/analyze-resume",
		credential:  credential,
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, &out)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	return DecodeAnalysis(out.Analysis)
}

// DecodeAnalysis accepts the "analysis" value either as a JSON object or as
// a string holding one, optionally wrapped in ``` fences.
func DecodeAnalysis(raw json.RawMessage) (models.AnalysisResult, error) {
	raw = bytes.TrimSpace(raw)

	var s string
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		raw = []byte(CleanJSON(s))
	}

	if len(raw) == 0 || raw[0] != '{' {
		return models.AnalysisResult{}, fmt.Errorf("%w: analysis is not an object", ErrMalformedResponse)
	}

	var r models.AnalysisResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return r, nil
}

// CleanJSON strips a surrounding markdown code fence.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func (c *HTTPClient) ScanHistory(ctx context.Context, credential string) ([]models.ScanRecord, error) {
	var out []models.ScanRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/scan-history", credential: credential}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ScanRecord{}
	}
	return out, nil
}

func (c *HTTPClient) Courses(ctx context.Context, credential string, f models.CourseFilter) (models.CoursePage, error) {
	q := url.Values{}
	if f.Category != "" && !strings.EqualFold(f.Category, "All") {
		q.Set("category", f.Category)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	var out models.CoursePage
	if err := c.do(ctx, request{method: http.MethodGet, path: "/courses", query: q, credential: credential}, &out); err != nil {
		return models.CoursePage{}, err
	}
	if out.Courses == nil {
		out.Courses = []models.Course{}
	}
	return out, nil
}

func (c *HTTPClient) AddCourse(ctx context.Context, credential string, course models.Course) error {
	body, err := jsonBody(course)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/courses", credential: credential, body: body, contentType: "application/json"}, nil)
}

func (c *HTTPClient) DeleteCourse(ctx context.Context, credential string, id int) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/courses/" + strconv.Itoa(id), credential: credential}, nil)
}

func (c *HTTPClient) DashboardStats(ctx context.Context, credential string) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := c.do(ctx, request{method: http.MethodGet, path: "/admin-dashboard", credential: credential}, &out)
	return out, err
}

func (c *HTTPClient) Students(ctx context.Context, credential string) ([]models.Student, error) {
	var out []models.Student
	if err := c.do(ctx, request{method: http.MethodGet, path: "/students", credential: credential}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Student{}
	}
	return out, nil
}

func (c *HTTPClient) AddStudent(ctx context.Context, credential string, s models.Student) error {
	body, err := jsonBody(s)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/students", credential: credential, body: body, contentType: "application/json"}, nil)
}

func (c *HTTPClient) DeleteStudent(ctx context.Context, credential string, id int) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/students/" + strconv.Itoa(id), credential: credential}, nil)
}

var _ Client = (*HTTPClient)(nil)

// IsUnavailable reports whether err is a transport failure.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
