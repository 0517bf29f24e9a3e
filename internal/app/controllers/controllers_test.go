package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/middleware"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
)

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)
	var got *dto.RegisterStudentRequest
	app.students.register = func(req *dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error) {
		got = req
		return &dto.RegisterStudentResponse{ID: "665f1c2b9a1e4b0012345678"}, nil
	}

	rec := app.do(multipartRequest(t, "/api/v1/register", map[string]string{
		"fullName":    "Riya Sharma",
		"email":       "riya@gcett.ac.in",
		"phone":       "9876543210",
		"wbjeeRoll":   "WB123442",
		"homeTown":    "Serampore",
		"department":  "Information Technology",
		"currentYear": "2nd Year",
		"interests":   `["Robotics","Music"]`,
	}, formFile{field: "profilePhoto", name: "me.jpg", content: []byte("jpeg")}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":"665f1c2b9a1e4b0012345678"}`, rec.Body.String())
	require.NotNil(t, got)
	assert.Equal(t, "Riya Sharma", got.FullName)
	assert.Equal(t, `["Robotics","Music"]`, got.Interests)
	require.NotNil(t, got.ProfilePhoto)
	assert.Equal(t, "me.jpg", got.ProfilePhoto.Filename)
}

func TestRegister_Duplicate(t *testing.T) {
	app := newTestApp(t)
	app.students.register = func(*dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error) {
		return nil, apperrors.NewDuplicateError("phone", "This phone number is already registered")
	}

	rec := app.do(multipartRequest(t, "/api/v1/register", map[string]string{"fullName": "x"}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[dto.ErrorResponse](t, rec.Body.Bytes())
	assert.Equal(t, "phone", resp.Error.Field)
	assert.Equal(t, "This phone number is already registered", resp.Error.Message)
}

func TestRegister_StorageFailureIsGeneric(t *testing.T) {
	app := newTestApp(t)
	app.students.register = func(*dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error) {
		return nil, apperrors.NewStorageError(assert.AnError)
	}

	rec := app.do(multipartRequest(t, "/api/v1/register", map[string]string{"fullName": "x"}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Equal(t, middleware.GenericErrorMessage, decode[dto.ErrorResponse](t, rec.Body.Bytes()).Error.Message)
}

func TestCheckDuplicate(t *testing.T) {
	app := newTestApp(t)
	app.students.duplicate = func(field models.DuplicateField, value string) bool {
		return field == models.DuplicateFieldEmail && value == "taken@gcett.ac.in"
	}

	rec := app.do(jsonRequest(http.MethodPost, "/api/v1/check-duplicate", `{"field":"email","value":"taken@gcett.ac.in"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exists":true}`, rec.Body.String())

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/check-duplicate", `{"field":"email","value":"free@gcett.ac.in"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exists":false}`, rec.Body.String())

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/check-duplicate", `{"field":"fullName","value":"x"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field", decode[dto.ErrorResponse](t, rec.Body.Bytes()).Error.Field)
}

func TestListStudents_PassesFiltersAndAdminFlag(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodGet, "/api/v1/students?search=ri&department=All+Departments&year=2nd+Year&interest=Music", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, dto.ListStudentsQuery{Search: "ri", Department: "All Departments", Year: "2nd Year", Interest: "Music"}, app.students.lastQuery)
	assert.False(t, app.students.lastAdmin)

	rec = app.do(jsonRequest(http.MethodGet, "/api/v1/students", ""), app.adminCookie(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, app.students.lastAdmin)
}

func TestSearchSuggestions(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodGet, "/api/v1/search-suggestions", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"suggestions":[],"trending":true}`, rec.Body.String())

	rec = app.do(jsonRequest(http.MethodGet, "/api/v1/search-suggestions?q=Shar", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Shar", app.students.suggestQ)
	assert.JSONEq(t, `{"suggestions":[],"trending":false}`, rec.Body.String())
}

func TestUpdateInterests_Dispatch(t *testing.T) {
	app := newTestApp(t)
	var sentTo, verifiedCode string
	var verifiedInterests []string
	app.interests.sendOTP = func(email string) (*dto.SendOTPResponse, error) {
		sentTo = email
		return &dto.SendOTPResponse{Message: "OTP sent to your email", CurrentInterests: []string{"Music"}}, nil
	}
	app.interests.verifyUpdate = func(email, code string, interests []string) (*dto.UpdateInterestsResponse, error) {
		verifiedCode, verifiedInterests = code, interests
		return &dto.UpdateInterestsResponse{Message: "Interests updated successfully", Interests: interests}, nil
	}

	rec := app.do(jsonRequest(http.MethodPost, "/api/v1/update-interests", `{"action":"send-otp","email":"riya@gcett.ac.in"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "riya@gcett.ac.in", sentTo)
	assert.Equal(t, []string{"Music"}, decode[dto.SendOTPResponse](t, rec.Body.Bytes()).CurrentInterests)

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/update-interests",
		`{"action":"verify-update","email":"riya@gcett.ac.in","otp":"123456","interests":["Chess"]}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "123456", verifiedCode)
	assert.Equal(t, []string{"Chess"}, verifiedInterests)

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/update-interests", `{"action":"reset","email":"riya@gcett.ac.in"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "action", decode[dto.ErrorResponse](t, rec.Body.Bytes()).Error.Field)
}

func TestUpdateInterests_Errors(t *testing.T) {
	app := newTestApp(t)
	app.interests.verifyUpdate = func(string, string, []string) (*dto.UpdateInterestsResponse, error) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidOTP, "Invalid or expired OTP").WithField("otp")
	}
	app.interests.sendOTP = func(string) (*dto.SendOTPResponse, error) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound, "Email not registered")
	}

	rec := app.do(jsonRequest(http.MethodPost, "/api/v1/update-interests", `{"action":"verify-update","email":"a@gcett.ac.in","otp":"000000"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, dto.ErrorCodeInvalidOTP, decode[dto.ErrorResponse](t, rec.Body.Bytes()).Error.Code)

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/update-interests", `{"action":"send-otp","email":"nobody@gcett.ac.in"}`))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyEmail(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodPost, "/api/v1/verify-email", `{"email":"riya@gcett.ac.in"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"interests":["Robotics"],"hasUpdated":false}`, rec.Body.String())

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/verify-email", `{"email":"not-an-email"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLoginSetsStrictCookie(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodPost, "/api/v1/admin/auth", `{"email":"admin@gcett.ac.in","password":"s3cret"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, middleware.AdminCookieName, c.Name)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.InDelta(t, 24*60*60, c.MaxAge, 60)

	// The issued cookie opens admin routes
	rec = app.do(jsonRequest(http.MethodGet, "/api/v1/admin/auth", ""), &http.Cookie{Name: c.Name, Value: c.Value})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodPost, "/api/v1/admin/auth", `{"email":"admin@gcett.ac.in","password":"guess"}`))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, decode[dto.ErrorResponse](t, rec.Body.Bytes()).Error.Code)
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodDelete, "/api/v1/admin/auth", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AdminCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestNoticeRoutesAreAdminGated(t *testing.T) {
	app := newTestApp(t)
	body := `{"title":"Lab closed","content":"Lab 3 is closed today","type":"Facility","priority":"High"}`

	rec := app.do(jsonRequest(http.MethodGet, "/api/v1/admin/notices", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	for _, req := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/v1/admin/notices", body},
		{http.MethodPut, "/api/v1/admin/notices/n1", body},
		{http.MethodDelete, "/api/v1/admin/notices/n1", ""},
	} {
		rec := app.do(jsonRequest(req.method, req.path, req.body))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", req.method, req.path)
	}
	assert.Empty(t, app.notices.created)
	assert.Empty(t, app.notices.deleted)

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/admin/notices", body), app.adminCookie(t))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Lab closed", decode[dto.NoticeResponse](t, rec.Body.Bytes()).Title)
	require.Len(t, app.notices.created, 1)

	rec = app.do(jsonRequest(http.MethodDelete, "/api/v1/admin/notices/n1", ""), app.adminCookie(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"n1"}, app.notices.deleted)
}

func TestQuestionRoutes(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodGet, "/api/v1/admin/questions?testType=UI%2FUX", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UI/UX", app.questions.lastTestType)

	body := `{"question":"Pick one","options":["a","b","c","d"],"correctAnswer":0,"difficulty":"Easy","testType":"AI/ML"}`
	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/admin/questions", body))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/admin/questions", body), app.adminCookie(t))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 0, decode[dto.QuestionResponse](t, rec.Body.Bytes()).CorrectAnswer)

	threeOptions := `{"question":"Pick one","options":["a","b","c"],"correctAnswer":0,"difficulty":"Easy","testType":"AI/ML"}`
	rec = app.do(jsonRequest(http.MethodPost, "/api/v1/admin/questions", threeOptions), app.adminCookie(t))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "options", decode[dto.ErrorResponse](t, rec.Body.Bytes()).Error.Field)
}

func TestSubmit(t *testing.T) {
	app := newTestApp(t)
	var got *dto.SubmitSkillTestRequest
	app.submissions.submit = func(req *dto.SubmitSkillTestRequest) (*dto.SubmissionResponse, error) {
		got = req
		return &dto.SubmissionResponse{
			ID:            "0b7e7c1e-0000-4000-8000-000000000001",
			Category:      req.Category,
			PortfolioFile: &dto.FileResponse{Name: req.PortfolioFile.Filename, URL: "/uploads/portfolios/1_work.pdf"},
			Status:        "Submitted",
		}, nil
	}

	rec := app.do(multipartRequest(t, "/api/v1/skill-test/submit", map[string]string{
		"name":     "Riya",
		"email":    "riya@gcett.ac.in",
		"phone":    "9876543210",
		"category": "AI/ML",
	}, formFile{field: "portfolioFile", name: "work.pdf", content: []byte("%PDF")}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, got)
	assert.Nil(t, got.RedesignFile)
	resp := decode[dto.SubmissionResponse](t, rec.Body.Bytes())
	assert.Equal(t, "work.pdf", resp.PortfolioFile.Name)
	assert.Equal(t, "Submitted", resp.Status)
}

func TestListSubmissions(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodGet, "/api/v1/admin/submissions?page=2&size=5", ""))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(jsonRequest(http.MethodGet, "/api/v1/admin/submissions?page=2&size=5", ""), app.adminCookie(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, app.submissions.page)
	assert.Equal(t, 5, app.submissions.pageSize)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodGet, "/health", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, rec.Body.Bytes()).Status)
}
