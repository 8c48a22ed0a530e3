package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/sunken-cathedral/pkg/savegame"
	"github.com/jwebster45206/sunken-cathedral/pkg/storage"
)

// RedisStore persists save records in Redis, one key per slot. Useful
// when the game runs somewhere without a writable filesystem.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements Store interface
var _ storage.Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis using a URL of the form
// redis://host:port/db.
func NewRedisStore(redisURL string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to Redis for save storage", "url", redisURL)
	return &RedisStore{
		client: rdb,
		logger: logger,
	}, nil
}

func key(slot int) string {
	if slot == storage.AutoSlot {
		return "save:autosave"
	}
	return fmt.Sprintf("save:slot:%d", slot)
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

func (r *RedisStore) SaveSlot(ctx context.Context, slot int, sd *savegame.SaveData) error {
	if err := validateSlot(slot); err != nil {
		return err
	}
	if sd == nil {
		return errors.New("save data cannot be nil")
	}

	data, err := json.Marshal(sd)
	if err != nil {
		r.logger.Error("Failed to marshal save data", "slot", slot, "error", err)
		return fmt.Errorf("failed to marshal save data: %w", err)
	}

	// Saves persist until deleted; no expiry.
	if err := r.client.Set(ctx, key(slot), data, 0).Err(); err != nil {
		r.logger.Error("Failed to save game", "slot", slot, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	r.logger.Debug("Saved game", "slot", slot, "moves", sd.TotalMoves)
	return nil
}

func (r *RedisStore) LoadSlot(ctx context.Context, slot int) (*savegame.SaveData, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, key(slot)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // no save, not an error
		}
		r.logger.Error("Failed to load game", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	var sd savegame.SaveData
	if err := json.Unmarshal([]byte(data), &sd); err != nil {
		r.logger.Error("Corrupt save record", "slot", slot, "error", err)
		return nil, fmt.Errorf("corrupt save record: %w", err)
	}
	return &sd, nil
}

func (r *RedisStore) DeleteSlot(ctx context.Context, slot int) error {
	if err := validateSlot(slot); err != nil {
		return err
	}
	if err := r.client.Del(ctx, key(slot)).Err(); err != nil {
		r.logger.Error("Failed to delete save", "slot", slot, "error", err)
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

func (r *RedisStore) ListSlots(ctx context.Context) ([]storage.SlotInfo, error) {
	infos := make([]storage.SlotInfo, 0, storage.MaxSlots)
	for slot := 1; slot <= storage.MaxSlots; slot++ {
		sd, err := r.LoadSlot(ctx, slot)
		if err != nil {
			r.logger.Warn("Skipping unreadable save slot", "slot", slot, "error", err)
			infos = append(infos, storage.SlotInfo{Slot: slot})
			continue
		}
		infos = append(infos, storage.InfoFor(slot, sd))
	}
	return infos, nil
}
