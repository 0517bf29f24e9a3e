package controllers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gcett/studentdir/internal/app/controllers"
	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/routes"
	"github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/middleware"
	"github.com/gcett/studentdir/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStudentService struct {
	register  func(*dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error)
	duplicate func(models.DuplicateField, string) bool
	lastQuery dto.ListStudentsQuery
	lastAdmin bool
	suggestQ  string
}

func (s *stubStudentService) CheckDuplicate(_ context.Context, field models.DuplicateField, value string) bool {
	if s.duplicate == nil {
		return false
	}
	return s.duplicate(field, value)
}

func (s *stubStudentService) Register(_ context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error) {
	return s.register(req)
}

func (s *stubStudentService) ListStudents(_ context.Context, query dto.ListStudentsQuery, isAdmin bool) []dto.StudentResponse {
	s.lastQuery, s.lastAdmin = query, isAdmin
	return []dto.StudentResponse{}
}

func (s *stubStudentService) Suggest(_ context.Context, q string, isAdmin bool) dto.SuggestionsResponse {
	s.suggestQ, s.lastAdmin = q, isAdmin
	return dto.SuggestionsResponse{Suggestions: []dto.Suggestion{}, Trending: q == ""}
}

type stubInterestService struct {
	sendOTP      func(email string) (*dto.SendOTPResponse, error)
	verifyUpdate func(email, code string, interests []string) (*dto.UpdateInterestsResponse, error)
}

func (s *stubInterestService) VerifyEmail(_ context.Context, email string) (*dto.VerifyEmailResponse, error) {
	return &dto.VerifyEmailResponse{Interests: []string{"Robotics"}}, nil
}

func (s *stubInterestService) SendOTP(_ context.Context, email string) (*dto.SendOTPResponse, error) {
	return s.sendOTP(email)
}

func (s *stubInterestService) VerifyUpdate(_ context.Context, email, code string, interests []string) (*dto.UpdateInterestsResponse, error) {
	return s.verifyUpdate(email, code, interests)
}

type stubNoticeService struct {
	created []dto.NoticeRequest
	deleted []string
}

func (s *stubNoticeService) ListNotices(context.Context) ([]dto.NoticeResponse, error) {
	return []dto.NoticeResponse{{ID: "n1", Title: "Lab closed"}}, nil
}

func (s *stubNoticeService) CreateNotice(_ context.Context, req *dto.NoticeRequest) (*dto.NoticeResponse, error) {
	s.created = append(s.created, *req)
	return &dto.NoticeResponse{ID: "n2", Title: req.Title, Type: req.Type, Priority: req.Priority}, nil
}

func (s *stubNoticeService) UpdateNotice(_ context.Context, id string, req *dto.NoticeRequest) (*dto.NoticeResponse, error) {
	return &dto.NoticeResponse{ID: id, Title: req.Title}, nil
}

func (s *stubNoticeService) DeleteNotice(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubQuestionService struct {
	lastTestType string
}

func (s *stubQuestionService) ListQuestions(_ context.Context, testType string) ([]dto.QuestionResponse, error) {
	s.lastTestType = testType
	return []dto.QuestionResponse{}, nil
}

func (s *stubQuestionService) CreateQuestion(_ context.Context, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	return &dto.QuestionResponse{ID: "q1", Question: req.Question, Options: req.Options, CorrectAnswer: *req.CorrectAnswer}, nil
}

func (s *stubQuestionService) UpdateQuestion(_ context.Context, id string, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	return &dto.QuestionResponse{ID: id, Question: req.Question}, nil
}

func (s *stubQuestionService) DeleteQuestion(context.Context, string) error { return nil }

type stubSubmissionService struct {
	submit   func(*dto.SubmitSkillTestRequest) (*dto.SubmissionResponse, error)
	page     int
	pageSize int
}

func (s *stubSubmissionService) Submit(_ context.Context, req *dto.SubmitSkillTestRequest) (*dto.SubmissionResponse, error) {
	return s.submit(req)
}

func (s *stubSubmissionService) ListSubmissions(_ context.Context, page, pageSize int) (*dto.SubmissionListResponse, error) {
	s.page, s.pageSize = page, pageSize
	return &dto.SubmissionListResponse{Submissions: []dto.SubmissionResponse{}}, nil
}

type stubHealthService struct{ status string }

func (s stubHealthService) Check(context.Context) dto.HealthResponse {
	return dto.HealthResponse{Status: s.status, Dependencies: map[string]bool{"mongo": s.status == services.HealthStatusOK}}
}

const (
	adminEmail    = "admin@gcett.ac.in"
	adminPassword = "s3cret"
)

type testApp struct {
	router      *gin.Engine
	students    *stubStudentService
	interests   *stubInterestService
	notices     *stubNoticeService
	questions   *stubQuestionService
	submissions *stubSubmissionService
	jwt         *auth.JWTService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	require.NoError(t, middleware.RegisterValidators())

	app := &testApp{
		students:    &stubStudentService{},
		interests:   &stubInterestService{},
		notices:     &stubNoticeService{},
		questions:   &stubQuestionService{},
		submissions: &stubSubmissionService{},
		jwt:         auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AdminTokenExp: 24 * time.Hour}),
	}
	authService := services.NewAdminAuthService(auth.Credentials{Email: adminEmail, Password: adminPassword}, app.jwt, zerolog.Nop())

	app.router = gin.New()
	routes.SetupRouter(app.router, routes.Controllers{
		Student:    controllers.NewStudentController(app.students),
		Interest:   controllers.NewInterestController(app.interests),
		Notice:     controllers.NewNoticeController(app.notices),
		Question:   controllers.NewQuestionController(app.questions),
		Submission: controllers.NewSubmissionController(app.submissions),
		AdminAuth:  controllers.NewAdminAuthController(authService, controllers.CookieConfig{Secure: true}, zerolog.Nop()),
		Health:     controllers.NewHealthController(stubHealthService{status: services.HealthStatusOK}),
	}, middleware.NewAuthMiddleware(authService))
	return app
}

func (a *testApp) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, _, err := a.jwt.GenerateAdminToken(adminEmail)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.AdminCookieName, Value: token}
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formFile struct {
	field, name string
	content     []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
