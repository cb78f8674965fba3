package storage

import (
	"context"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte           = 1024 * 1024
	DefaultCacheSizeMB = 16
)

// CachedStore is a write-through read cache over another Store.
// Listing always goes to the backing store.
type CachedStore struct {
	next   Store
	cache  *freecache.Cache
	expire int // seconds, 0 means no expiry
}

var _ Store = (*CachedStore)(nil)

func NewCachedStore(next Store, sizeMB int, ttl time.Duration) *CachedStore {
	if sizeMB <= 0 {
		sizeMB = DefaultCacheSizeMB
	}
	return &CachedStore{
		next:   next,
		cache:  freecache.NewCache(sizeMB * megabyte),
		expire: int(ttl / time.Second),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, err := s.cache.Get([]byte(key)); err == nil {
		log.Tracef("storage cache hit: %s", key)
		return value, nil
	}

	value, err := s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set([]byte(key), value, s.expire); err != nil {
		log.Debugf("storage cache set [%s]: %s", key, err)
	}
	return value, nil
}

func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	// drop first so a failed write never leaves a stale entry behind
	s.cache.Del([]byte(key))
	if err := s.next.Set(ctx, key, value); err != nil {
		return err
	}
	if err := s.cache.Set([]byte(key), value, s.expire); err != nil {
		log.Debugf("storage cache set [%s]: %s", key, err)
	}
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	s.cache.Del([]byte(key))
	return s.next.Delete(ctx, key)
}

func (s *CachedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.next.List(ctx, prefix)
}

func (s *CachedStore) Clear(ctx context.Context) error {
	s.cache.Clear()
	return s.next.Clear(ctx)
}

// Stats reports cache hit and miss counters.
func (s *CachedStore) Stats() (hits, misses int64) {
	return s.cache.HitCount(), s.cache.MissCount()
}
