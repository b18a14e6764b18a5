package character

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/sheetforge/sheet-api/internal/entities/sheet"
	"github.com/sheetforge/sheet-api/internal/errors"
	"github.com/sheetforge/sheet-api/internal/pkg/clock"
	redisclient "github.com/sheetforge/sheet-api/internal/redis"
)

const (
	recordKeyPrefix = "character:"
	recordIndexKey  = "character:index"

	errRecordNil     = "record cannot be nil"
	errRecordIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := recordKeyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Record.ID)
	}

	record := input.Record.Clone()
	now := r.clock.Now().Unix()
	record.CreatedAt = now
	record.UpdatedAt = now

	text, err := sheet.SerializeRecord(record)
	if err != nil {
		return nil, err
	}

	err = r.txPipelined(ctx, func(pipe redisclient.Pipeliner) {
		pipe.Set(ctx, key, text, 0) // Records never expire
		pipe.SAdd(ctx, recordIndexKey, record.ID)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := recordKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	// Permissive on purpose: a record persisted under an older
	// configuration shape still loads, and the synchronizer repairs it.
	record, err := sheet.DeserializeRecord(result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to deserialize character %s", input.ID)
	}

	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := recordKeyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.Record.ID)
	}

	record := input.Record.Clone()
	record.UpdatedAt = r.clock.Now().Unix()

	text, err := sheet.SerializeRecord(record)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, key, text, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Record: record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := recordKeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	err = r.txPipelined(ctx, func(pipe redisclient.Pipeliner) {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, recordIndexKey, input.ID)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, recordIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character index")
	}

	records := make([]*sheet.CharacterRecord, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A dangling index entry gets cleaned up rather than failing
			// the whole listing
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character missing, cleaning up index",
					"character_id", id)
				r.client.SRem(ctx, recordIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		records = append(records, out.Record)
	}

	return &ListOutput{Records: records}, nil
}

// txPipelined runs fn's queued commands in one MULTI/EXEC transaction
func (r *redisRepository) txPipelined(ctx context.Context, fn func(pipe redisclient.Pipeliner)) error {
	pipe := r.client.TxPipeline()
	fn(pipe)
	_, err := pipe.Exec(ctx)
	return err
}
