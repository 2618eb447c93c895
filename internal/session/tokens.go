package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const tokensKey = "barangay_portal:session:tokens"

// Tokens - пара access/refresh
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (t Tokens) Empty() bool {
	return t.Access == "" && t.Refresh == ""
}

// TokenStore хранит токены между перезапусками процесса
type TokenStore interface {
	Save(ctx context.Context, t Tokens) error
	Load(ctx context.Context) (Tokens, error)
	Clear(ctx context.Context) error
}

// MemoryTokenStore держит токены в памяти процесса
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens Tokens
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(_ context.Context, t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = t
	return nil
}

func (s *MemoryTokenStore) Load(_ context.Context) (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens, nil
}

func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = Tokens{}
	return nil
}

// RedisTokenStore хранит токены в Redis; ключ живет до истечения refresh-токена
type RedisTokenStore struct {
	redisClient *redis.Client
	fallbackTTL time.Duration
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{
		redisClient: client,
		fallbackTTL: 24 * time.Hour,
	}
}

func (s *RedisTokenStore) Save(ctx context.Context, t Tokens) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	ttl := s.fallbackTTL
	if exp, err := TokenExpiry(t.Refresh); err == nil {
		ttl = time.Until(exp)
		if ttl <= 0 {
			return s.Clear(ctx)
		}
	}

	if err := s.redisClient.Set(ctx, tokensKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save tokens to Redis: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Load(ctx context.Context) (Tokens, error) {
	raw, err := s.redisClient.Get(ctx, tokensKey).Result()
	if errors.Is(err, redis.Nil) {
		return Tokens{}, nil
	}
	if err != nil {
		return Tokens{}, fmt.Errorf("failed to load tokens from Redis: %w", err)
	}

	var t Tokens
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return Tokens{}, fmt.Errorf("failed to unmarshal tokens: %w", err)
	}
	return t, nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.redisClient.Del(ctx, tokensKey).Err(); err != nil {
		return fmt.Errorf("failed to clear tokens in Redis: %w", err)
	}
	return nil
}

// TokenExpiry читает exp из JWT без проверки подписи: подпись проверяет сервер
func TokenExpiry(token string) (time.Time, error) {
	if token == "" {
		return time.Time{}, errors.New("empty token")
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
