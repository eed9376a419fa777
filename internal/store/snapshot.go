package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
	"github.com/saral-app/saral/internal/quotation"
)

// Snapshot is the full persistable state.
type Snapshot struct {
	Products   []catalog.Product     `json:"products"`
	Bills      []billing.Bill        `json:"bills"`
	Quotations []quotation.Quotation `json:"quotations"`
	Settings   Settings              `json:"settings"`
	SavedAt    time.Time             `json:"saved_at"`
}

// SnapshotStore is the load/save contract a durable backing store
// implements. Load returns (nil, nil) when no snapshot exists yet.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

// RedisSnapshotStore keeps the state as one JSON blob under a fixed key.
type RedisSnapshotStore struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotStore constructs a RedisSnapshotStore.
func NewRedisSnapshotStore(client *redis.Client, key string) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, key: key}
}

// Load fetches and decodes the stored snapshot.
func (r *RedisSnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save encodes and writes the snapshot, replacing any previous one.
func (r *RedisSnapshotStore) Save(ctx context.Context, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return r.client.Set(ctx, r.key, payload, 0).Err()
}
