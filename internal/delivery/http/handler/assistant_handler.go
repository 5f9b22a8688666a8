package handler

import (
	"encoding/json"
	"net/http"

	"medifriend/internal/delivery/dto"
	"medifriend/internal/service"
	"medifriend/internal/usecase"
	"medifriend/pkg/response"
	"medifriend/pkg/validator"
)

type AssistantHandler struct {
	assistantUsecase usecase.AssistantUsecase
	validator        *validator.CustomValidator
}

func NewAssistantHandler(assistantUsecase usecase.AssistantUsecase, validator *validator.CustomValidator) *AssistantHandler {
	return &AssistantHandler{
		assistantUsecase: assistantUsecase,
		validator:        validator,
	}
}

// ExplainPrescription handles the public prescription reader
// @Summary Explain a prescription image
// @Description Turn a base64-encoded prescription photo into plain-language text. Nothing is stored.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.ExplainPrescriptionRequest true "Explain Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /prescription-reader/explain [post]
func (h *AssistantHandler) ExplainPrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.ExplainPrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.assistantUsecase.ExplainPrescription(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidImage:
			response.Error(w, http.StatusBadRequest, "Image payload is not a valid base64-encoded image", nil)
		case service.ErrExtractionFailed:
			response.BadGateway(w, "Prescription explanation failed, please retry")
		default:
			response.InternalServerError(w, "Failed to explain prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription explained successfully", result)
}

// SendChatMessage handles one chat turn
// @Summary Send a chat message
// @Description Send a message to the health assistant; omit session_id to start a new session
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.ChatMessageRequest true "Chat Message Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /chat/messages [post]
func (h *AssistantHandler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply, err := h.assistantUsecase.SendChatMessage(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrChatFailed:
			response.BadGateway(w, "Chat reply failed, please retry")
		default:
			response.InternalServerError(w, "Failed to send chat message")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chat reply generated successfully", reply)
}

// ResetChat handles clearing a chat session
// @Summary Reset a chat session
// @Description Drop the stored history for a chat session
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.ChatResetRequest true "Chat Reset Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /chat/reset [post]
func (h *AssistantHandler) ResetChat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.assistantUsecase.ResetChat(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to reset chat session")
		return
	}

	response.Success(w, http.StatusOK, "Chat session reset successfully", nil)
}
