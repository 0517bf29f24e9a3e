package dto

import "time"

// QuestionRequest creates or replaces a skill-test question
type QuestionRequest struct {
	Question      string   `json:"question" binding:"required" example:"Which activation is non-linear?"`
	Options       []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"required,min=0,max=3" example:"2"`
	Difficulty    string   `json:"difficulty" binding:"required,difficulty" example:"Easy"`
	TestType      string   `json:"testType" binding:"required,category" example:"AI/ML"`
}

// QuestionResponse is a stored skill-test question
type QuestionResponse struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Difficulty    string    `json:"difficulty"`
	TestType      string    `json:"testType"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
