package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"salewatch/internal/domain"
	"salewatch/internal/domain/entity"
	"salewatch/pkg/errcodes"
	"salewatch/pkg/logx"
)

// RedisStateRepository — тот же JSON-рекорд, но под одним ключом в Redis.
// Нужен планировщикам без долговечной файловой системы (CI-раннеры).
// Битое значение трактуется как отсутствие истории; сетевая ошибка —
// настоящая ошибка, её имеет смысл ретраить снаружи.
type RedisStateRepository struct {
	client *redis.Client
	key    string
}

func NewRedisStateRepository(client *redis.Client, key string) *RedisStateRepository {
	return &RedisStateRepository{
		client: client,
		key:    key,
	}
}

func (r *RedisStateRepository) Load(ctx context.Context) (entity.SaleState, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.SaleState{}, nil
		}
		return entity.SaleState{}, domain.WrapError(err, errcodes.InternalServerError, "read state from redis")
	}

	var schema stateSchema
	if err := json.Unmarshal(raw, &schema); err != nil {
		logger(ctx).Warn("state record corrupt, resetting", logx.Error(err))
		return entity.SaleState{}, nil
	}

	return schema.toDomain(), nil
}

func (r *RedisStateRepository) Save(ctx context.Context, state entity.SaleState) error {
	raw, err := json.Marshal(fromDomain(state))
	if err != nil {
		return domain.WrapError(err, errcodes.StateSaveFailed, "marshal state")
	}

	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return domain.WrapError(err, errcodes.StateSaveFailed, "write state to redis")
	}

	return nil
}
