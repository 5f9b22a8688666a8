package dto

// Request DTOs

type ExplainPrescriptionRequest struct {
	Image string `json:"image" validate:"required"` // Base64-encoded image, optionally a data URL
}

type ChatMessageRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,uuid"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type ChatResetRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

// Response DTOs

type ExplainPrescriptionResponse struct {
	Explanation string `json:"explanation"`
}

type ChatMessageResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}
