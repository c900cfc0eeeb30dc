package redis

import (
	"fmt"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/dinemenu/internal/db"
	"github.com/kailas-cloud/dinemenu/internal/db/valkey"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Redis store.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store implements db.Store via rueidis for Redis 7+. Redis and Valkey speak
// the same KV commands, so the command set is shared with the Valkey store.
type Store struct {
	*valkey.Store
}

// NewStore creates a Redis store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{Store: valkey.NewStoreFromClient(client)}, nil
}
