package usecase

import (
	"context"
	"errors"

	"medifriend/internal/converter"
	"medifriend/internal/delivery/dto"
	"medifriend/internal/delivery/http/middleware"
	"medifriend/internal/domain/entity"
	"medifriend/internal/domain/repository"
	"medifriend/internal/service"
	"medifriend/pkg/imaging"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadUsecase interface {
	AnalyzeUpload(ctx context.Context, req *dto.AnalyzeUploadRequest) (*dto.UploadResponse, error)
	GetMyUploads(ctx context.Context) (*dto.UploadListResponse, error)
	DeleteUpload(ctx context.Context, uploadID uuid.UUID) error
}

type uploadUsecase struct {
	log               *logrus.Logger
	uploadRepo        repository.UploadRepository
	extractionService service.ExtractionService
}

func NewUploadUsecase(
	log *logrus.Logger,
	uploadRepo repository.UploadRepository,
	extractionService service.ExtractionService,
) UploadUsecase {
	return &uploadUsecase{
		log:               log,
		uploadRepo:        uploadRepo,
		extractionService: extractionService,
	}
}

// AnalyzeUpload runs a patient-submitted prescription photo through the
// vision model and stores the result. The image itself is never persisted.
//
// Flow:
// 1. Decode and enhance the image
// 2. Structured extraction; a failed extraction persists nothing
// 3. Plain-language explanation (non-fatal, stored empty on failure)
// 4. Insert upload row with extraction and explanation
func (u *uploadUsecase) AnalyzeUpload(ctx context.Context, req *dto.AnalyzeUploadRequest) (*dto.UploadResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Decode and enhance
	original, err := decodeImagePayload(req.Image)
	if err != nil {
		return nil, err
	}
	enhanced, err := imaging.Enhance(original)
	if err != nil {
		if errors.Is(err, imaging.ErrUndecodableImage) {
			return nil, ErrInvalidImage
		}
		u.log.Warnf("Failed to enhance image: %+v", err)
		return nil, err
	}

	// Step 2: Structured extraction
	extracted, err := u.extractionService.Extract(ctx, original, enhanced)
	if err != nil {
		return nil, err
	}

	// Step 3: Explanation is best-effort; the extraction alone is worth keeping
	explanation, err := u.extractionService.Explain(ctx, original, enhanced)
	if err != nil {
		u.log.Warnf("Failed to explain upload for patient %s (non-fatal): %+v", userID, err)
		explanation = ""
	}

	uploadType := entity.UploadTypePrescription
	if req.UploadType != "" {
		uploadType = entity.UploadType(req.UploadType)
	}

	// Step 4: Insert upload row
	upload := &entity.Upload{
		PatientID:     userID,
		Filename:      req.Filename,
		ExtractedData: extracted,
		Explanation:   explanation,
		UploadType:    uploadType,
	}

	if err := u.uploadRepo.Create(ctx, upload); err != nil {
		u.log.Warnf("Failed to create upload: %+v", err)
		return nil, err
	}

	u.log.Infof("Upload analyzed: id=%s, patient=%s, filename=%s", upload.ID, userID, req.Filename)
	return converter.UploadToResponse(upload), nil
}

// GetMyUploads returns the patient's analyzed uploads, newest first
func (u *uploadUsecase) GetMyUploads(ctx context.Context) (*dto.UploadListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	uploads, err := u.uploadRepo.FindByPatientID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find uploads for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.UploadListResponse{
		Uploads: converter.UploadsToResponse(uploads),
		Total:   len(uploads),
	}, nil
}

// DeleteUpload removes one of the patient's uploads. Scoped to the owner, so
// someone else's upload id reads as not found.
func (u *uploadUsecase) DeleteUpload(ctx context.Context, uploadID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	rows, err := u.uploadRepo.DeleteByIDAndPatientID(ctx, uploadID, userID)
	if err != nil {
		u.log.Warnf("Failed to delete upload %s: %+v", uploadID, err)
		return err
	}
	if rows == 0 {
		return ErrUploadNotFound
	}

	u.log.Infof("Upload deleted: id=%s, patient=%s", uploadID, userID)
	return nil
}
