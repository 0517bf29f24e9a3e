package dto

import (
	"mime/multipart"
	"time"

	"github.com/gcett/studentdir/internal/pkg/helpers"
)

// SubmitSkillTestRequest is the multipart skill-test form
type SubmitSkillTestRequest struct {
	Name                 string                `form:"name" validate:"required,max=120"`
	Email                string                `form:"email" validate:"required,email,max=254"`
	Phone                string                `form:"phone" validate:"required,min=7,max=20"`
	LinkedinID           string                `form:"linkedinId" validate:"omitempty,max=300"`
	PortfolioDescription string                `form:"portfolioDescription" validate:"omitempty,max=5000"`
	Category             string                `form:"category" validate:"required,category"`
	PortfolioFile        *multipart.FileHeader `form:"portfolioFile" validate:"-"`
	RedesignFile         *multipart.FileHeader `form:"redesignFile" validate:"-"`
}

// FileResponse is an uploaded file reference
type FileResponse struct {
	Name string `json:"name" example:"portfolio.pdf"`
	URL  string `json:"url,omitempty" example:"/uploads/portfolios/1718000000000_portfolio.pdf"`
}

// SubmissionResponse is a stored submission
type SubmissionResponse struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	Phone                string        `json:"phone"`
	LinkedinID           string        `json:"linkedinId,omitempty"`
	PortfolioDescription string        `json:"portfolioDescription,omitempty"`
	Category             string        `json:"category"`
	PortfolioFile        *FileResponse `json:"portfolioFile,omitempty"`
	RedesignFile         *FileResponse `json:"redesignFile,omitempty"`
	Status               string        `json:"status" example:"Submitted"`
	CreatedAt            time.Time     `json:"createdAt"`
}

// SubmissionListResponse is one page of submissions
type SubmissionListResponse struct {
	Submissions []SubmissionResponse   `json:"submissions"`
	Pagination  helpers.PaginationInfo `json:"pagination"`
}
