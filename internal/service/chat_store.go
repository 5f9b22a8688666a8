package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medifriend/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefix for chat session histories
	chatKeyPrefix = "chat_session:"

	// historyWindow caps how many turns a session retains. Older turns fall
	// off the front; the window bounds both storage and model input size.
	historyWindow = 20
)

// ChatStore keeps per-session chat history in Redis. Every append refreshes
// the session TTL, so an idle conversation expires on its own instead of
// accumulating for the life of the process.
type ChatStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewChatStore(redisClient *redis.Client, ttl time.Duration) *ChatStore {
	return &ChatStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// History returns the stored turns for a session, oldest first. A missing or
// expired session yields an empty history, not an error.
func (s *ChatStore) History(ctx context.Context, sessionID string) ([]entity.ChatTurn, error) {
	raw, err := s.redisClient.Get(ctx, chatKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []entity.ChatTurn{}, nil
		}
		return nil, err
	}

	var turns []entity.ChatTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// Append adds turns to a session and refreshes its TTL, trimming to the
// history window.
func (s *ChatStore) Append(ctx context.Context, sessionID string, turns ...entity.ChatTurn) error {
	history, err := s.History(ctx, sessionID)
	if err != nil {
		return err
	}

	history = append(history, turns...)
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}

	return s.redisClient.Set(ctx, chatKey(sessionID), raw, s.ttl).Err()
}

// Reset drops a session's history entirely.
func (s *ChatStore) Reset(ctx context.Context, sessionID string) error {
	return s.redisClient.Del(ctx, chatKey(sessionID)).Err()
}

func chatKey(sessionID string) string {
	return fmt.Sprintf("%s%s", chatKeyPrefix, sessionID)
}
