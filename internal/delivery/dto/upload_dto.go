package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AnalyzeUploadRequest struct {
	Filename   string `json:"filename" validate:"required,max=255"`
	Image      string `json:"image" validate:"required"` // Base64-encoded image, optionally a data URL
	UploadType string `json:"upload_type" validate:"omitempty,oneof=PRESCRIPTION LAB_REPORT OTHER"`
}

// Response DTOs

type UploadResponse struct {
	ID            uuid.UUID              `json:"id"`
	Filename      string                 `json:"filename"`
	UploadType    string                 `json:"upload_type"`
	ExtractedData map[string]interface{} `json:"extracted_data,omitempty"`
	Explanation   string                 `json:"explanation,omitempty"`
	UploadedAt    time.Time              `json:"uploaded_at"`
}

type UploadListResponse struct {
	Uploads []UploadResponse `json:"uploads"`
	Total   int              `json:"total"`
}
