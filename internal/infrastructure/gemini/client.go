package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"medifriend/config"
	"medifriend/internal/domain/entity"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("model returned no content")

// Client wraps the two Gemini models the app talks to: a vision model for
// prescription images and a chat model carrying the assistant persona.
type Client struct {
	client      *genai.Client
	visionModel *genai.GenerativeModel
	chatModel   *genai.GenerativeModel
}

func NewClient(ctx context.Context, cfg config.GeminiConfig, chatInstruction string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	visionModel := client.GenerativeModel(cfg.VisionModel)

	chatModel := client.GenerativeModel(cfg.ChatModel)
	chatModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(chatInstruction)},
	}

	logrus.Infof("Gemini client ready: vision=%s, chat=%s", cfg.VisionModel, cfg.ChatModel)

	return &Client{
		client:      client,
		visionModel: visionModel,
		chatModel:   chatModel,
	}, nil
}

// GenerateVision sends a prompt plus one or more images to the vision model
func (c *Client) GenerateVision(ctx context.Context, prompt string, images ...[]byte) (string, error) {
	parts := make([]genai.Part, 0, len(images)+1)
	parts = append(parts, genai.Text(prompt))
	for _, img := range images {
		parts = append(parts, imagePart(img))
	}

	resp, err := c.visionModel.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

// GenerateChat replays the stored turns as chat history and sends the new message
func (c *Client) GenerateChat(ctx context.Context, history []entity.ChatTurn, message string) (string, error) {
	session := c.chatModel.StartChat()
	session.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		session.History = append(session.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func (c *Client) Close() error {
	return c.client.Close()
}

// imagePart labels the raw bytes with their sniffed image subtype; unknown
// payloads fall back to jpeg, which the API treats as a hint only.
func imagePart(img []byte) genai.Part {
	format := "jpeg"
	if mime := http.DetectContentType(img); strings.HasPrefix(mime, "image/") {
		format = strings.TrimPrefix(mime, "image/")
	}
	return genai.ImageData(format, img)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
