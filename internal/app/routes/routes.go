package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/controllers"
	"github.com/gcett/studentdir/internal/middleware"
)

// Controllers groups the HTTP handlers mounted under /api/v1
type Controllers struct {
	Student    *controllers.StudentController
	Interest   *controllers.InterestController
	Notice     *controllers.NoticeController
	Question   *controllers.QuestionController
	Submission *controllers.SubmissionController
	AdminAuth  *controllers.AdminAuthController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", c.Health.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/health", c.Health.Health)

	// --- Public directory routes ---
	v1.POST("/register", c.Student.Register)
	v1.POST("/check-duplicate", c.Student.CheckDuplicate)

	// Phones are unmasked when an admin session is present
	directory := v1.Group("")
	directory.Use(authMiddleware.DetectAdmin())
	{
		directory.GET("/students", c.Student.ListStudents)
		directory.GET("/search-suggestions", c.Student.SearchSuggestions)
	}

	// --- Interest update ---
	v1.POST("/verify-email", c.Interest.VerifyEmail)
	v1.POST("/update-interests", c.Interest.UpdateInterests)

	// --- Skill test ---
	v1.POST("/skill-test/submit", c.Submission.Submit)

	admin := v1.Group("/admin")

	auth := admin.Group("/auth")
	{
		auth.POST("", c.AdminAuth.Login)
		auth.DELETE("", c.AdminAuth.Logout)
		auth.GET("", authMiddleware.RequireAdmin(), c.AdminAuth.Session)
	}

	// Reads are public, writes need an admin session
	notices := admin.Group("/notices")
	{
		notices.GET("", c.Notice.ListNotices)
		notices.POST("", authMiddleware.RequireAdmin(), c.Notice.CreateNotice)
		notices.PUT("/:id", authMiddleware.RequireAdmin(), c.Notice.UpdateNotice)
		notices.DELETE("/:id", authMiddleware.RequireAdmin(), c.Notice.DeleteNotice)
	}

	questions := admin.Group("/questions")
	{
		questions.GET("", c.Question.ListQuestions)
		questions.POST("", authMiddleware.RequireAdmin(), c.Question.CreateQuestion)
		questions.PUT("/:id", authMiddleware.RequireAdmin(), c.Question.UpdateQuestion)
		questions.DELETE("/:id", authMiddleware.RequireAdmin(), c.Question.DeleteQuestion)
	}

	admin.GET("/submissions", authMiddleware.RequireAdmin(), c.Submission.ListSubmissions)
}
