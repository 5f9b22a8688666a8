package usecase

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImage = errors.New("image payload is not a valid base64-encoded image")

// decodeImagePayload decodes a base64 image payload. Browser clients often
// send the canvas/file-reader form "data:image/png;base64,...." so a data URL
// prefix is stripped when present.
func decodeImagePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, ErrInvalidImage
		}
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}
	if len(raw) == 0 {
		return nil, ErrInvalidImage
	}
	return raw, nil
}
