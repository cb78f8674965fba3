package storage

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/2beens/practicetracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const redisScanCount = 200

// RedisStore keeps values as plain redis strings under a namespace prefix.
type RedisStore struct {
	rdb       redis.UniversalClient
	namespace string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore keys every value under namespace; a missing ":" separator is added.
func NewRedisStore(rdb redis.UniversalClient, namespace string) *RedisStore {
	if namespace != "" && !strings.HasSuffix(namespace, ":") {
		namespace += ":"
	}
	return &RedisStore{
		rdb:       rdb,
		namespace: namespace,
	}
}

func (s *RedisStore) fullKey(key string) string {
	return s.namespace + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.get")
	defer func() {
		if !errors.Is(err, ErrKeyNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
		} else {
			span.End()
		}
	}()
	span.SetAttributes(attribute.String("key", key))

	value, err := s.rdb.Get(ctx, s.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, opErr("get", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if err := s.rdb.Set(ctx, s.fullKey(key), value, 0).Err(); err != nil {
		return opErr("set", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if err := s.rdb.Del(ctx, s.fullKey(key)).Err(); err != nil {
		return opErr("delete", key, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, prefix string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("prefix", prefix))

	fullKeys, err := s.scan(ctx, globEscape(s.fullKey(prefix))+"*")
	if err != nil {
		return nil, opErr("list", prefix, err)
	}

	keys := make([]string, 0, len(fullKeys))
	for _, k := range fullKeys {
		keys = append(keys, strings.TrimPrefix(k, s.namespace))
	}
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

func (s *RedisStore) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fullKeys, err := s.scan(ctx, globEscape(s.namespace)+"*")
	if err != nil {
		return opErr("clear", "", err)
	}
	if len(fullKeys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, fullKeys...).Err(); err != nil {
		return opErr("clear", "", err)
	}
	return nil
}

func (s *RedisStore) scan(ctx context.Context, match string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := s.rdb.Scan(ctx, cursor, match, redisScanCount).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

var globReplacer = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

func globEscape(s string) string {
	return globReplacer.Replace(s)
}
