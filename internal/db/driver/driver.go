// Package driver opens the configured KV store.
package driver

import (
	"fmt"

	"github.com/kailas-cloud/dinemenu/internal/db"
	dbRedis "github.com/kailas-cloud/dinemenu/internal/db/redis"
	dbValkey "github.com/kailas-cloud/dinemenu/internal/db/valkey"
)

// Supported drivers.
const (
	Valkey = "valkey"
	Redis  = "redis"
)

// Config selects and configures a store.
type Config struct {
	Driver     string // Valkey (default) or Redis
	Addrs      []string
	Username   string
	Password   string
	Standalone bool // valkey only
	DB         int  // redis only
}

// Open creates a store for cfg.Driver. The store is not yet connected;
// call WaitForReady before use.
func Open(cfg Config) (db.Store, error) {
	switch cfg.Driver {
	case Valkey, "":
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:      cfg.Addrs,
			Username:   cfg.Username,
			Password:   cfg.Password,
			Standalone: cfg.Standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("valkey: %w", err)
		}
		return s, nil
	case Redis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
