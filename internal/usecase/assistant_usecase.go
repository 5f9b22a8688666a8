package usecase

import (
	"context"
	"errors"

	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
	"medifriend/internal/service"
	"medifriend/pkg/imaging"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ChatSystemInstruction pins the assistant persona for every chat session.
const ChatSystemInstruction = `You are MediFriend, a friendly virtual health assistant.
You answer general questions about health, wellness, common symptoms, medicines, and healthy habits in simple, reassuring language.
You are not a doctor: never give a definitive diagnosis, never prescribe medication, and never contradict a doctor's advice.
For anything serious, persistent, or urgent, advise the user to consult a qualified doctor immediately.
Keep answers short, structured, and easy to read. Politely decline questions unrelated to health.`

var ErrChatFailed = errors.New("chat reply failed")

// ChatModel generates one assistant reply from prior turns and a new message.
type ChatModel interface {
	GenerateChat(ctx context.Context, history []entity.ChatTurn, message string) (string, error)
}

// HistoryStore keeps ordered per-session chat turns.
type HistoryStore interface {
	History(ctx context.Context, sessionID string) ([]entity.ChatTurn, error)
	Append(ctx context.Context, sessionID string, turns ...entity.ChatTurn) error
	Reset(ctx context.Context, sessionID string) error
}

type AssistantUsecase interface {
	ExplainPrescription(ctx context.Context, req *dto.ExplainPrescriptionRequest) (*dto.ExplainPrescriptionResponse, error)
	SendChatMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
	ResetChat(ctx context.Context, req *dto.ChatResetRequest) error
}

type assistantUsecase struct {
	log               *logrus.Logger
	extractionService service.ExtractionService
	chatModel         ChatModel
	historyStore      HistoryStore
}

func NewAssistantUsecase(
	log *logrus.Logger,
	extractionService service.ExtractionService,
	chatModel ChatModel,
	historyStore HistoryStore,
) AssistantUsecase {
	return &assistantUsecase{
		log:               log,
		extractionService: extractionService,
		chatModel:         chatModel,
		historyStore:      historyStore,
	}
}

// ExplainPrescription turns a prescription photo into plain-language text.
// Public and stateless: nothing is persisted, no account required.
func (u *assistantUsecase) ExplainPrescription(ctx context.Context, req *dto.ExplainPrescriptionRequest) (*dto.ExplainPrescriptionResponse, error) {
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

	explanation, err := u.extractionService.Explain(ctx, original, enhanced)
	if err != nil {
		return nil, err
	}

	return &dto.ExplainPrescriptionResponse{Explanation: explanation}, nil
}

// SendChatMessage appends one user turn to the session and returns the model
// reply. A blank session id starts a fresh session.
func (u *assistantUsecase) SendChatMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history, err := u.historyStore.History(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to load chat history for session %s: %+v", sessionID, err)
		return nil, err
	}

	reply, err := u.chatModel.GenerateChat(ctx, history, req.Message)
	if err != nil {
		u.log.Warnf("Failed to generate chat reply for session %s: %+v", sessionID, err)
		return nil, ErrChatFailed
	}

	// Store both turns (log but don't fail, the reply is already generated)
	err = u.historyStore.Append(ctx, sessionID,
		entity.ChatTurn{Role: entity.ChatRoleUser, Text: req.Message},
		entity.ChatTurn{Role: entity.ChatRoleModel, Text: reply},
	)
	if err != nil {
		u.log.Warnf("Failed to store chat turns for session %s (non-fatal): %+v", sessionID, err)
	}

	return &dto.ChatMessageResponse{
		SessionID: sessionID,
		Reply:     reply,
	}, nil
}

// ResetChat drops the session history. Resetting an unknown session is a no-op.
func (u *assistantUsecase) ResetChat(ctx context.Context, req *dto.ChatResetRequest) error {
	if err := u.historyStore.Reset(ctx, req.SessionID); err != nil {
		u.log.Warnf("Failed to reset chat session %s: %+v", req.SessionID, err)
		return err
	}
	return nil
}
