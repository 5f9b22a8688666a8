package handler

import (
	"encoding/json"
	"net/http"

	"medifriend/internal/delivery/dto"
	"medifriend/internal/service"
	"medifriend/internal/usecase"
	"medifriend/pkg/response"
	"medifriend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	validator     *validator.CustomValidator
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, validator *validator.CustomValidator) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		validator:     validator,
	}
}

func (h *UploadHandler) AnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	upload, err := h.uploadUsecase.AnalyzeUpload(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidImage:
			response.Error(w, http.StatusBadRequest, "Image payload is not a valid base64-encoded image", nil)
		case service.ErrExtractionFailed:
			response.BadGateway(w, "Prescription extraction failed, please retry")
		default:
			response.InternalServerError(w, "Failed to analyze upload")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Upload analyzed successfully", upload)
}

func (h *UploadHandler) GetMyUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.uploadUsecase.GetMyUploads(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get uploads")
		return
	}

	response.Success(w, http.StatusOK, "Uploads retrieved successfully", uploads)
}

func (h *UploadHandler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	uploadID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid upload ID", nil)
		return
	}

	err = h.uploadUsecase.DeleteUpload(r.Context(), uploadID)
	if err != nil {
		switch err {
		case usecase.ErrUploadNotFound:
			response.NotFound(w, "Upload not found")
		default:
			response.InternalServerError(w, "Failed to delete upload")
		}
		return
	}

	response.Success(w, http.StatusOK, "Upload deleted successfully", nil)
}
