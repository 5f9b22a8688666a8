package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type stubVision struct {
	reply     string
	err       error
	gotImages int
}

func (s *stubVision) GenerateVision(ctx context.Context, prompt string, images ...[]byte) (string, error) {
	s.gotImages = len(images)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newExtractionFixture(reply string) (*stubVision, ExtractionService) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	vision := &stubVision{reply: reply}
	return vision, NewExtractionService(log, vision)
}

// ---------- ParseExtraction ----------

func TestParseExtraction_PlainJSON(t *testing.T) {
	data, err := ParseExtraction(`{"doctor_name": "Dr. House", "date": "2026-08-01", "diagnosis": "flu", "medicines": [{"name": "Paracetamol"}], "notes": "rest"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data["doctor_name"] != "Dr. House" {
		t.Errorf("doctor_name = %v", data["doctor_name"])
	}
	medicines, ok := data["medicines"].([]interface{})
	if !ok || len(medicines) != 1 {
		t.Errorf("medicines = %v", data["medicines"])
	}
}

func TestParseExtraction_CodeFenced(t *testing.T) {
	raw := "```json\n{\"diagnosis\": \"migraine\"}\n```"
	data, err := ParseExtraction(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data["diagnosis"] != "migraine" {
		t.Errorf("diagnosis = %v", data["diagnosis"])
	}
}

func TestParseExtraction_ProseWrapped(t *testing.T) {
	raw := `Sure! Here is the extracted data: {"diagnosis": "bronchitis"} Let me know if you need anything else.`
	data, err := ParseExtraction(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data["diagnosis"] != "bronchitis" {
		t.Errorf("diagnosis = %v", data["diagnosis"])
	}
}

func TestParseExtraction_BackfillsContractKeys(t *testing.T) {
	data, err := ParseExtraction(`{"diagnosis": "flu"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"doctor_name", "date", "notes"} {
		value, ok := data[key]
		if !ok {
			t.Errorf("key %q missing, the contract guarantees it", key)
		}
		if value != nil {
			t.Errorf("%s = %v, want null", key, value)
		}
	}
	medicines, ok := data["medicines"].([]interface{})
	if !ok {
		t.Fatalf("medicines = %T, want an array", data["medicines"])
	}
	if len(medicines) != 0 {
		t.Errorf("medicines = %v, want empty", medicines)
	}
}

func TestParseExtraction_NoObject(t *testing.T) {
	for _, raw := range []string{"", "the image is unreadable", "[1, 2, 3]"} {
		if _, err := ParseExtraction(raw); err == nil {
			t.Errorf("ParseExtraction(%q) succeeded, want error", raw)
		}
	}
}

// ---------- Model calls ----------

func TestExtract_SendsBothImageVariants(t *testing.T) {
	vision, svc := newExtractionFixture(`{"diagnosis": "flu"}`)

	data, err := svc.Extract(context.Background(), []byte("original"), []byte("enhanced"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vision.gotImages != 2 {
		t.Errorf("model got %d images, want original plus enhanced", vision.gotImages)
	}
	if data["diagnosis"] != "flu" {
		t.Errorf("diagnosis = %v", data["diagnosis"])
	}
}

func TestExtract_ModelFailure(t *testing.T) {
	vision, svc := newExtractionFixture("")
	vision.err = errors.New("quota exceeded")

	if _, err := svc.Extract(context.Background(), []byte("img"), []byte("img")); !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("err = %v, want ErrExtractionFailed", err)
	}
}

func TestExtract_UnparseableReply(t *testing.T) {
	_, svc := newExtractionFixture("I could not read this prescription.")

	if _, err := svc.Extract(context.Background(), []byte("img"), []byte("img")); !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("err = %v, want ErrExtractionFailed", err)
	}
}

func TestExplain_TrimsReply(t *testing.T) {
	_, svc := newExtractionFixture("\n  This prescribes Amoxicillin.  \n")

	text, err := svc.Explain(context.Background(), []byte("img"), []byte("img"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "This prescribes Amoxicillin." {
		t.Errorf("explanation = %q", text)
	}
}

func TestExplain_ModelFailure(t *testing.T) {
	vision, svc := newExtractionFixture("")
	vision.err = errors.New("quota exceeded")

	if _, err := svc.Explain(context.Background(), []byte("img"), []byte("img")); !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("err = %v, want ErrExtractionFailed", err)
	}
}
