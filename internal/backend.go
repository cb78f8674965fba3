package internal

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/2beens/practicetracker/internal/config"
	"github.com/2beens/practicetracker/internal/db"
	"github.com/2beens/practicetracker/internal/storage"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const readCacheTTL = time.Hour

// Backend is the opened key-value store and the connections behind it.
type Backend struct {
	Store       storage.Store
	RedisClient *redis.Client // set only for the redis backend
	DBPool      *pgxpool.Pool // set only for the postgres backend

	closers []func() error
}

type OpenBackendParams struct {
	Config           *config.Config
	RedisPassword    string
	PostgresPassword string
	TracingEnabled   bool
}

func OpenBackend(ctx context.Context, params OpenBackendParams) (*Backend, error) {
	cfg := params.Config
	b := &Backend{}

	switch cfg.StorageBackend {
	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0,
		})
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Debugf("redis ping: %s", rdbStatus.Val())
		b.RedisClient = rdb
		b.Store = storage.NewRedisStore(rdb, cfg.RedisNamespace)
		b.closers = append(b.closers, rdb.Close)
	case config.StoragePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("ping db: %w", err)
		}
		pgStore := storage.NewPostgresStore(dbPool)
		if err := pgStore.Migrate(ctx); err != nil {
			dbPool.Close()
			return nil, err
		}
		b.DBPool = dbPool
		b.Store = pgStore
		b.closers = append(b.closers, func() error {
			dbPool.Close() // blocking
			return nil
		})
	case config.StorageSQLite:
		sqliteStore, err := storage.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.Store = sqliteStore
		b.closers = append(b.closers, sqliteStore.Close)
	case config.StorageMemory:
		log.Warnln("memory storage backend: nothing survives a restart")
		b.Store = storage.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage backend [%s]", cfg.StorageBackend)
	}

	if cfg.ReadCacheSizeMB > 0 {
		b.Store = storage.NewCachedStore(b.Store, cfg.ReadCacheSizeMB, readCacheTTL)
	}

	log.Infof("storage backend: %s", cfg.StorageBackend)
	return b, nil
}

// Close releases connections in reverse order of opening.
func (b *Backend) Close() error {
	var err error
	for i := len(b.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, b.closers[i]())
	}
	b.closers = nil
	return err
}
