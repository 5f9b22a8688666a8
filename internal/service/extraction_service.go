package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"medifriend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// ErrExtractionFailed covers both an unreachable vision model and model
// output that cannot be parsed into the expected structure. Callers decide
// whether anything gets persisted.
var ErrExtractionFailed = errors.New("could not read prescription data from image")

// VisionModel produces text from a prompt plus one or more images.
// Implemented by the Gemini client; an interface so extraction logic is
// testable without network calls.
type VisionModel interface {
	GenerateVision(ctx context.Context, prompt string, images ...[]byte) (string, error)
}

const explainPrompt = `You are a medically trained assistant who reads handwritten prescriptions and explains them clearly to patients.

Your task:
- Carefully interpret the handwritten text from the prescription image.
- Extract and organize all readable information, such as patient details (if visible), the doctor's name or signature, medicine names and formulations, dosage and timing (e.g., 1-0-1, tid, after meals), and any additional notes or instructions.

When writing your explanation:
1. Be accurate and complete - include every detail that can be reasonably read.
2. If a word, name, or medicine appears misspelled or unclear, but you can infer the correct one, write both, for example: "Amoxcillin (likely meant Amoxicillin)".
3. Use layman's language to describe what each medicine does and how it should be taken.
4. Do not critique or judge the prescription or suggest alternatives - assume it is prescribed by a qualified professional.
5. Structure your answer clearly with sections or bullet points, similar to a detailed pharmacist's explanation.
6. End with: "Always follow your doctor's advice before taking any medication."

Try to include every visible piece of readable text, even if minor, as part of the explanation.

Start your response directly with the explanation. Do not include greetings or redundant introductions.`

const extractionPrompt = `You are a medically trained assistant who reads handwritten prescriptions.

Read the prescription image and reply with ONLY a JSON object, no prose and no code fences, shaped exactly like this:

{"doctor_name": "...", "date": "...", "diagnosis": "...", "medicines": [{"name": "...", "dosage": "...", "duration": "..."}], "notes": "..."}

Rules:
- When a field is unreadable or absent, set it to null (or [] for medicines).
- Never invent values that are not visible on the prescription.
- Dates go in YYYY-MM-DD form when readable.`

// ExtractionService forwards a prescription image to the vision model, as
// both the original and a contrast-enhanced copy, and interprets the reply.
type ExtractionService interface {
	// Explain returns a free-text walkthrough of the prescription.
	Explain(ctx context.Context, original, enhanced []byte) (string, error)
	// Extract returns the structured record the model read off the image.
	Extract(ctx context.Context, original, enhanced []byte) (entity.JSON, error)
}

type extractionService struct {
	log    *logrus.Logger
	vision VisionModel
}

func NewExtractionService(log *logrus.Logger, vision VisionModel) ExtractionService {
	return &extractionService{
		log:    log,
		vision: vision,
	}
}

func (s *extractionService) Explain(ctx context.Context, original, enhanced []byte) (string, error) {
	text, err := s.vision.GenerateVision(ctx, explainPrompt, original, enhanced)
	if err != nil {
		s.log.Warnf("Failed to generate prescription explanation: %+v", err)
		return "", ErrExtractionFailed
	}
	return strings.TrimSpace(text), nil
}

func (s *extractionService) Extract(ctx context.Context, original, enhanced []byte) (entity.JSON, error) {
	raw, err := s.vision.GenerateVision(ctx, extractionPrompt, original, enhanced)
	if err != nil {
		s.log.Warnf("Failed to call extraction model: %+v", err)
		return nil, ErrExtractionFailed
	}

	data, err := ParseExtraction(raw)
	if err != nil {
		s.log.Warnf("Extraction output not parseable: %+v", err)
		return nil, ErrExtractionFailed
	}
	return data, nil
}

// ParseExtraction digs the contract JSON object out of a model reply. Models
// wrap JSON in code fences or surround it with prose often enough that the
// parser works on the outermost brace pair instead of the raw reply.
func ParseExtraction(raw string) (entity.JSON, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in model reply")
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &data); err != nil {
		return nil, err
	}

	// Guarantee the contract keys exist even when the model omitted them.
	for _, key := range []string{"doctor_name", "date", "diagnosis", "notes"} {
		if _, ok := data[key]; !ok {
			data[key] = nil
		}
	}
	if _, ok := data["medicines"]; !ok {
		data["medicines"] = []interface{}{}
	}

	return entity.JSON(data), nil
}
