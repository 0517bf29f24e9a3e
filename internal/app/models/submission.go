package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatusSubmitted is the status every new submission starts in
const SubmissionStatusSubmitted = "Submitted"

// Submission is a hackathon portfolio entry stored in Postgres
type Submission struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	Email                string    `json:"email" db:"email"`
	Phone                string    `json:"phone" db:"phone"`
	LinkedinID           *string   `json:"linkedinId,omitempty" db:"linkedin_id"`
	PortfolioDescription *string   `json:"portfolioDescription,omitempty" db:"portfolio_description"`
	Category             string    `json:"category" db:"category"`
	PortfolioFile        *FileRef  `json:"portfolioFile,omitempty"`
	RedesignFile         *FileRef  `json:"redesignFile,omitempty"`
	Status               string    `json:"status" db:"status"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
}

// FileRef is an uploaded file's original name and public URL. URL is
// empty when the upload failed.
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}
