package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/usecase"
)

const (
	keyPrefix     = "shortlink:code:"
	deletedPrefix = "shortlink:deleted:"
)

// fillScript caches a link unless the code carries a deletion marker. The
// check and the write run atomically in Redis.
var fillScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

// CachedURLRepository wraps a URLRepository with a Redis read-through cache
// for code lookups. Cache failures degrade to the underlying store.
type CachedURLRepository struct {
	usecase.URLRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

var _ usecase.URLRepository = (*CachedURLRepository)(nil)

func NewCachedURLRepository(repo usecase.URLRepository, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedURLRepository {
	return &CachedURLRepository{
		URLRepository: repo,
		rdb:           rdb,
		ttl:           ttl,
		logger:        logger,
	}
}

type cachedLink struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func key(code string) string {
	return keyPrefix + code
}

func deletedKey(code string) string {
	return deletedPrefix + code
}

// FindByCode serves from cache and fills it on a miss. Misses for unknown
// codes are not cached so a fresh link is visible immediately.
func (r *CachedURLRepository) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	data, err := r.rdb.Get(ctx, key(code)).Bytes()
	switch {
	case err == nil:
		var c cachedLink
		if err := json.Unmarshal(data, &c); err == nil {
			return &domain.ShortLink{ID: c.ID, Code: c.Code, OriginalURL: c.OriginalURL, CreatedAt: c.CreatedAt}, nil
		}
		r.logger.Warn("failed to unmarshal cached link", zap.String("short_code", code))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("failed to read link from cache", zap.String("short_code", code), zap.Error(err))
	}

	link, err := r.URLRepository.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedLink{
		ID:          link.ID,
		Code:        link.Code,
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
	})
	if err == nil {
		keys := []string{key(code), deletedKey(code)}
		if err := fillScript.Run(ctx, r.rdb, keys, payload, r.ttl.Milliseconds()).Err(); err != nil {
			r.logger.Warn("failed to cache link", zap.String("short_code", code), zap.Error(err))
		}
	}
	return link, nil
}

// Delete marks the code deleted, then drops its cache entry. The marker
// outlives any lookup that read the row before the delete, so such a lookup
// cannot put the removed link back in the cache.
func (r *CachedURLRepository) Delete(ctx context.Context, code string) error {
	if err := r.URLRepository.Delete(ctx, code); err != nil {
		return err
	}
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, deletedKey(code), 1, r.ttl)
		pipe.Del(ctx, key(code))
		return nil
	})
	if err != nil {
		r.logger.Warn("failed to invalidate cached link", zap.String("short_code", code), zap.Error(err))
	}
	return nil
}
