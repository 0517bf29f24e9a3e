package dto

import "time"

// AdminLoginRequest represents admin credentials
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@gcett.ac.in"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// AdminSessionResponse describes the session set in the admin cookie
type AdminSessionResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}
