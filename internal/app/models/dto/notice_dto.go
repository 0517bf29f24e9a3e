package dto

import "time"

// NoticeRequest creates or replaces a notice
type NoticeRequest struct {
	Title    string `json:"title" binding:"required,max=200" example:"Mid-semester exams"`
	Content  string `json:"content" binding:"required" example:"Exams start on Monday."`
	Type     string `json:"type" binding:"required,noticetype" example:"Academic"`
	Priority string `json:"priority" binding:"required,priority" example:"High"`
}

// NoticeResponse is a published notice
type NoticeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
