package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/middleware"
)

// StudentController handles registration and the directory
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Register handles student registration
// @Summary Register a student
// @Description Registers a student profile with a required profile photo (max 5 MB). Interests are a JSON-encoded array.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone"
// @Param wbjeeRoll formData string true "WBJEE roll number"
// @Param homeTown formData string true "Home town"
// @Param department formData string true "Department"
// @Param currentYear formData string true "Current year"
// @Param interests formData string false "JSON array of interests"
// @Param profilePhoto formData file true "Profile photo"
// @Success 201 {object} dto.RegisterStudentResponse "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	resp, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// CheckDuplicate reports whether a value is already registered
// @Summary Check for a duplicate
// @Description Reports whether an email, phone or roll suffix is already registered
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CheckDuplicateRequest true "Field and value"
// @Success 200 {object} dto.CheckDuplicateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /check-duplicate [post]
func (c *StudentController) CheckDuplicate(ctx *gin.Context) {
	var req dto.CheckDuplicateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	exists := c.studentService.CheckDuplicate(ctx.Request.Context(), models.DuplicateField(req.Field), req.Value)
	ctx.JSON(http.StatusOK, dto.CheckDuplicateResponse{Exists: exists})
}

// ListStudents lists the directory
// @Summary List students
// @Description Lists students newest first. Phone numbers are masked unless an admin session is present.
// @Tags students
// @Produce json
// @Param search query string false "Case-insensitive substring of full name or the last two WBJEE roll digits"
// @Param department query string false "Department or 'All Departments'"
// @Param year query string false "Year or 'All Years'"
// @Param interest query string false "Interest or 'All Interests'"
// @Success 200 {array} dto.StudentResponse
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var query dto.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	students := c.studentService.ListStudents(ctx.Request.Context(), query, middleware.IsAdmin(ctx))
	ctx.JSON(http.StatusOK, students)
}

// SearchSuggestions returns search box suggestions
// @Summary Search suggestions
// @Description Returns up to 8 matches for q, or the 5 most recent registrations when q is empty
// @Tags students
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} dto.SuggestionsResponse
// @Router /search-suggestions [get]
func (c *StudentController) SearchSuggestions(ctx *gin.Context) {
	var query dto.SuggestionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	suggestions := c.studentService.Suggest(ctx.Request.Context(), query.Q, middleware.IsAdmin(ctx))
	ctx.JSON(http.StatusOK, suggestions)
}
