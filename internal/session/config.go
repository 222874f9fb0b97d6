package session

import (
	"time"

	"github.com/nikmy/labforms/internal/storage"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
	StorageFile   = "file"
)

const (
	defaultExpiration = 24 * time.Hour
	cookieName        = "labforms_session"
)

type Config struct {
	Expiration   time.Duration `yaml:"expiration"`
	CookieSecure bool          `yaml:"cookie_secure"`
	Storage      string        `yaml:"storage"`

	File storage.Config `yaml:"file"`
}

func (c Config) withDefaults() Config {
	if c.Expiration <= 0 {
		c.Expiration = defaultExpiration
	}
	if c.Storage == "" {
		c.Storage = StorageMemory
	}
	return c
}

// Backend reports which storage keeps the sessions.
func (c Config) Backend() string {
	return c.withDefaults().Storage
}
