package session

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/disaster-sim/internal/redis"
)

const (
	// KeyPrefix of every snapshot key: sim_session:{session_id}
	KeyPrefix  = "sim_session:"
	defaultTTL = time.Hour

	// Error messages
	errSnapshotNil     = "snapshot cannot be nil"
	errSessionIDEmpty  = "session ID cannot be empty"
	errSnapshotExpired = "session snapshot has expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for session snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores the snapshot, replacing any previous one for the session
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	snapshot := *input.Snapshot
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = now
	}
	snapshot.UpdatedAt = now
	snapshot.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	key := Key(snapshot.SessionID)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store snapshot in Redis").
			WithMeta("session_id", snapshot.SessionID)
	}

	return &SaveOutput{Snapshot: &snapshot}, nil
}

// Get retrieves a snapshot by session ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := Key(input.SessionID)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("session snapshot not found").
				WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get snapshot from Redis")
	}

	snapshot, err := Decode([]byte(data))
	if err != nil {
		return nil, err
	}

	// Redis TTL should have removed it already; clean up if the clocks disagree
	if r.clock.Now().After(snapshot.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound(errSnapshotExpired).WithMeta("session_id", input.SessionID)
	}

	return &GetOutput{Snapshot: snapshot}, nil
}

// Delete removes a snapshot
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	n, err := r.client.Del(ctx, Key(input.SessionID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete snapshot from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

// Key builds the Redis key for a session
func Key(sessionID string) string {
	return KeyPrefix + sessionID
}

// Decode parses a stored snapshot and checks the fields a restore depends on
func Decode(data []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal snapshot")
	}
	if snapshot.SessionID == "" {
		return nil, errors.DataLoss("snapshot is missing session ID")
	}
	if !snapshot.Kind.IsValid() {
		return nil, errors.DataLossf("snapshot has unknown disaster kind %q", snapshot.Kind)
	}
	return &snapshot, nil
}
