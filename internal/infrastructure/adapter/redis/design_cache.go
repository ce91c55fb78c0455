package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/persistence"
)

const (
	designKeyPrefix        = "i2c:design:"
	designVersionKeyPrefix = "i2c:design:ver:"
)

// CacheRecorder counts cache lookups
type CacheRecorder interface {
	ObserveCache(cache string, hit bool)
}

// cachedDesign keeps code as bytes so the stored JSON is returned byte for byte
type cachedDesign struct {
	ID          uint64   `json:"id"`
	UID         string   `json:"uid"`
	UserEmail   string   `json:"userEmail"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Model       string   `json:"model"`
	Language    string   `json:"language"`
	Code        []byte   `json:"code"`
	Options     []string `json:"options"`
	CreatedAt   string   `json:"createdAt"`
}

func toCached(d *entity.Design) cachedDesign {
	return cachedDesign{
		ID:          d.ID,
		UID:         d.UID,
		UserEmail:   d.UserEmail,
		ImageURL:    d.ImageURL,
		Description: d.Description,
		Model:       d.Model,
		Language:    d.Language,
		Code:        d.Code,
		Options:     d.Options,
		CreatedAt:   d.CreatedAt,
	}
}

func (c cachedDesign) toEntity() *entity.Design {
	return &entity.Design{
		ID:          c.ID,
		UID:         c.UID,
		UserEmail:   c.UserEmail,
		ImageURL:    c.ImageURL,
		Description: c.Description,
		Model:       c.Model,
		Language:    c.Language,
		Code:        json.RawMessage(c.Code),
		Options:     c.Options,
		CreatedAt:   c.CreatedAt,
	}
}

// designStore is the storage seam under DesignCache. A missing entry is reported as redis.Nil.
type designStore interface {
	get(ctx context.Context, uid string) ([]byte, error)
	version(ctx context.Context, uid string) (int64, error)
	// setIfVersion writes raw only while the uid's version still equals ver
	setIfVersion(ctx context.Context, uid string, raw []byte, ver int64, ttl time.Duration) (bool, error)
	// invalidate bumps the uid's version and drops the entry
	invalidate(ctx context.Context, uid string, verTTL time.Duration) error
}

// DesignCache is a read-through Redis cache for designs keyed by uid.
// Redis failures degrade to calling the loader. A fill is dropped when the uid
// was invalidated after the loader started, so a slow load never re-caches a stale row.
type DesignCache struct {
	store    designStore
	logger   coreport.Logger
	ttl      time.Duration
	group    singleflight.Group
	recorder CacheRecorder
}

// NewDesignCache creates a design cache; recorder may be nil
func NewDesignCache(client *Client, ttl time.Duration, recorder CacheRecorder) persistence.DesignCache {
	return newDesignCache(&redisDesignStore{rdb: client.rdb}, client.logger, ttl, recorder)
}

func newDesignCache(store designStore, logger coreport.Logger, ttl time.Duration, recorder CacheRecorder) *DesignCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &DesignCache{store: store, logger: logger, ttl: ttl, recorder: recorder}
}

func designKey(uid string) string {
	return designKeyPrefix + uid
}

func designVersionKey(uid string) string {
	return designVersionKeyPrefix + uid
}

func (c *DesignCache) observe(hit bool) {
	if c.recorder != nil {
		c.recorder.ObserveCache("design", hit)
	}
}

// GetOrLoad returns the cached design or loads and caches it, coalescing concurrent loads of one uid
func (c *DesignCache) GetOrLoad(
	ctx context.Context,
	uid string,
	load func(ctx context.Context) (*entity.Design, error),
) (*entity.Design, error) {
	ctx, span := tracer.Start(ctx, "cache.design.GetOrLoad",
		trace.WithAttributes(attribute.String("cache.key", designKey(uid))))
	defer span.End()

	if d, ok := c.get(ctx, uid); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		c.observe(true)
		return d, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))
	c.observe(false)

	v, err, _ := c.group.Do(uid, func() (any, error) {
		// Read before loading so an Invalidate racing the load is detected at write time
		ver, verErr := c.store.version(ctx, uid)
		if d, ok := c.get(ctx, uid); ok {
			return d, nil
		}
		d, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if verErr == nil {
			c.set(ctx, d, ver)
		}
		return d, nil
	})
	if err != nil {
		return nil, err
	}

	d := v.(*entity.Design)
	// Callers sharing one load must not alias the same struct
	out := *d
	return &out, nil
}

// Invalidate drops the cached design for uid and fences off in-flight fills
func (c *DesignCache) Invalidate(ctx context.Context, uid string) error {
	ctx, span := tracer.Start(ctx, "cache.design.Invalidate",
		trace.WithAttributes(attribute.String("cache.key", designKey(uid))))
	defer span.End()

	if err := c.store.invalidate(ctx, uid, c.versionTTL()); err != nil {
		span.RecordError(err)
		c.logger.Warn("Failed to invalidate cached design", map[string]any{
			"uid":   uid,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// versionTTL outlives any entry written under the previous version
func (c *DesignCache) versionTTL() time.Duration {
	return c.ttl + time.Hour
}

func (c *DesignCache) get(ctx context.Context, uid string) (*entity.Design, bool) {
	raw, err := c.store.get(ctx, uid)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Design cache read failed", map[string]any{
				"uid":   uid,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var cached cachedDesign
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false
	}
	return cached.toEntity(), true
}

func (c *DesignCache) set(ctx context.Context, d *entity.Design, ver int64) {
	raw, err := json.Marshal(toCached(d))
	if err != nil {
		return
	}
	written, err := c.store.setIfVersion(ctx, d.UID, raw, ver, c.ttl)
	if err != nil {
		c.logger.Warn("Design cache write failed", map[string]any{
			"uid":   d.UID,
			"error": err.Error(),
		})
		return
	}
	if !written {
		c.logger.Debug("Skipped design cache fill after invalidation", map[string]any{
			"uid": d.UID,
		})
	}
}

// setIfVersionScript compares the version key and writes the entry in one step
var setIfVersionScript = redis.NewScript(`
local current = redis.call('GET', KEYS[2])
if (current or '0') ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

type redisDesignStore struct {
	rdb *redis.Client
}

func (s *redisDesignStore) get(ctx context.Context, uid string) ([]byte, error) {
	return s.rdb.Get(ctx, designKey(uid)).Bytes()
}

func (s *redisDesignStore) version(ctx context.Context, uid string) (int64, error) {
	ver, err := s.rdb.Get(ctx, designVersionKey(uid)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return ver, err
}

func (s *redisDesignStore) setIfVersion(
	ctx context.Context,
	uid string,
	raw []byte,
	ver int64,
	ttl time.Duration,
) (bool, error) {
	n, err := setIfVersionScript.Run(ctx, s.rdb,
		[]string{designKey(uid), designVersionKey(uid)},
		strconv.FormatInt(ver, 10), raw, ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *redisDesignStore) invalidate(ctx context.Context, uid string, verTTL time.Duration) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, designVersionKey(uid))
		pipe.Expire(ctx, designVersionKey(uid), verTTL)
		pipe.Del(ctx, designKey(uid))
		return nil
	})
	return err
}
