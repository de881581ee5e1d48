package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	"github.com/chronos-atelier/chronos-backend/pkg/redis"
)

type cartKV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type cartKeyer interface {
	CartKey(token string) string
}

// Store persists cart lines in Redis as a single JSON document per token.
// Every write refreshes the TTL, so active carts never expire mid-session.
type Store struct {
	kv    cartKV
	keyer cartKeyer
	ttl   time.Duration
}

// NewStore builds a cart store with the given TTL.
func NewStore(kv cartKV, keyer cartKeyer, ttl time.Duration) (*Store, error) {
	if kv == nil || keyer == nil {
		return nil, fmt.Errorf("cart store requires a key-value client and keyer")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &Store{kv: kv, keyer: keyer, ttl: ttl}, nil
}

// Load returns the lines stored for the token. A missing key is an empty cart.
func (s *Store) Load(ctx context.Context, token string) ([]models.CartLine, error) {
	raw, err := s.kv.Get(ctx, s.keyer.CartKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.CartLine{}, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return lines, nil
}

// Save overwrites the stored lines and resets the TTL.
func (s *Store) Save(ctx context.Context, token string, lines []models.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.keyer.CartKey(token), string(payload), s.ttl); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// Clear deletes the stored cart outright.
func (s *Store) Clear(ctx context.Context, token string) error {
	if err := s.kv.Del(ctx, s.keyer.CartKey(token)); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
