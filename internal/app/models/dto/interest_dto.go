package dto

// Interest update actions
const (
	InterestActionSendOTP      = "send-otp"
	InterestActionVerifyUpdate = "verify-update"
)

// VerifyEmailRequest looks up a registered email
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"student@gcett.ac.in"`
}

// VerifyEmailResponse reports the current interests of a registered email
type VerifyEmailResponse struct {
	Interests  []string `json:"interests"`
	HasUpdated bool     `json:"hasUpdated"`
}

// UpdateInterestsRequest drives the two-step OTP interest update
type UpdateInterestsRequest struct {
	Action    string   `json:"action" binding:"required,oneof=send-otp verify-update" example:"send-otp"`
	Email     string   `json:"email" binding:"required,email" example:"student@gcett.ac.in"`
	OTP       string   `json:"otp" example:"123456"`
	Interests []string `json:"interests"`
}

// SendOTPResponse is returned after a code has been mailed
type SendOTPResponse struct {
	Message          string   `json:"message" example:"OTP sent to your email"`
	CurrentInterests []string `json:"currentInterests"`
}

// UpdateInterestsResponse is returned after a verified update
type UpdateInterestsResponse struct {
	Message   string   `json:"message" example:"Interests updated successfully"`
	Interests []string `json:"interests"`
}
