package dto

import (
	"mime/multipart"
	"time"
)

// RegisterStudentRequest is the multipart registration form. Interests
// arrive as a JSON-encoded array string.
type RegisterStudentRequest struct {
	FullName     string                `form:"fullName" validate:"required,max=120"`
	Email        string                `form:"email" validate:"required,email,max=254"`
	Phone        string                `form:"phone" validate:"required,min=7,max=20"`
	WbjeeRoll    string                `form:"wbjeeRoll" validate:"required,min=2,max=32"`
	HomeTown     string                `form:"homeTown" validate:"required,max=120"`
	Department   string                `form:"department" validate:"required,department"`
	CurrentYear  string                `form:"currentYear" validate:"required,year"`
	Interests    string                `form:"interests"`
	ProfilePhoto *multipart.FileHeader `form:"profilePhoto" validate:"-"`
}

// RegisterStudentResponse carries the generated identity
type RegisterStudentResponse struct {
	ID string `json:"id" example:"665f1c2b9a1e4b0012345678"`
}

// CheckDuplicateRequest asks whether a value is already registered
type CheckDuplicateRequest struct {
	Field string `json:"field" binding:"required,oneof=email phone wbjeeRoll" example:"email"`
	Value string `json:"value" binding:"required" example:"student@gcett.ac.in"`
}

// CheckDuplicateResponse reports existence
type CheckDuplicateResponse struct {
	Exists bool `json:"exists"`
}

// StudentResponse is a directory entry; Phone is masked for non-admins
type StudentResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone" example:"********10"`
	WbjeeRollLastTwo string    `json:"wbjeeRollLastTwo" example:"42"`
	HomeTown         string    `json:"homeTown"`
	Department       string    `json:"department"`
	CurrentYear      string    `json:"currentYear"`
	Interests        []string  `json:"interests"`
	ProfilePhotoURL  string    `json:"profilePhotoUrl"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SuggestionMatch locates a case-insensitive hit inside a field value.
// Start and Length are byte offsets into that value.
type SuggestionMatch struct {
	Field  string `json:"field" example:"fullName"`
	Start  int    `json:"start" example:"6"`
	Length int    `json:"length" example:"4"`
}

// Suggestion is a projected student used by the search box
type Suggestion struct {
	ID         string            `json:"id"`
	FullName   string            `json:"fullName"`
	HomeTown   string            `json:"homeTown"`
	Department string            `json:"department"`
	Phone      string            `json:"phone,omitempty"`
	Matches    []SuggestionMatch `json:"matches,omitempty"`
}

// SuggestionsResponse is the search-suggestion payload
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	Trending    bool         `json:"trending"`
}
