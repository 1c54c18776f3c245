package characters

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

const slotIndexKey = "saves"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepo stores save records as strings under save:<slot>, with the
// saves set indexing the slots
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a Redis-backed repository from a client
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(slot string) string {
	return fmt.Sprintf("save:%s", slot)
}

// Load fetches and decodes the slot's record
func (r *redisRepo) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.key(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("save slot '%s' not found", slot).
				WithMeta("slot", slot)
		}
		return nil, fmt.Errorf("failed to get save from Redis: %w", err)
	}

	return Decode(data)
}

// Save writes the record and indexes the slot in one pipeline
func (r *redisRepo) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(slot), string(data), 0)
	pipe.SAdd(ctx, slotIndexKey, slot)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to Redis: %w", err)
	}

	return nil
}

// Delete removes the record and its index entry
func (r *redisRepo) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(slot))
	pipe.SRem(ctx, slotIndexKey, slot)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete save from Redis: %w", err)
	}

	return nil
}

// List loads every indexed slot concurrently. Slots whose record has gone
// missing are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*SaveSummary, error) {
	slots, err := r.client.SMembers(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saves from Redis: %w", err)
	}

	summaries := make([]*SaveSummary, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		i, slot := i, slot
		g.Go(func() error {
			char, err := r.Load(gctx, slot)
			switch {
			case err == nil, apperr.IsCorruptSave(err):
				summaries[i] = summarize(slot, char, err)
				return nil
			case apperr.IsNotFound(err), apperr.IsInvalidArgument(err):
				return nil
			default:
				return fmt.Errorf("failed to load save %s: %w", slot, err)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*SaveSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary != nil {
			out = append(out, summary)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Slot < out[j].Slot
	})

	return out, nil
}
