package converter

import (
	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
)

// UploadToResponse converts entity.Upload to dto.UploadResponse
func UploadToResponse(upload *entity.Upload) *dto.UploadResponse {
	if upload == nil {
		return nil
	}

	return &dto.UploadResponse{
		ID:            upload.ID,
		Filename:      upload.Filename,
		UploadType:    string(upload.UploadType),
		ExtractedData: upload.ExtractedData,
		Explanation:   upload.Explanation,
		UploadedAt:    upload.UploadedAt,
	}
}

// UploadsToResponse converts a slice of uploads to response DTOs
func UploadsToResponse(uploads []entity.Upload) []dto.UploadResponse {
	responses := make([]dto.UploadResponse, 0, len(uploads))
	for i := range uploads {
		responses = append(responses, *UploadToResponse(&uploads[i]))
	}
	return responses
}
