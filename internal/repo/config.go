package repo

import (
	"time"
)

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"min_size"`
		MaxSize uint64 `yaml:"max_size"`
	} `yaml:"pool"`
}

const (
	defaultTimeout    = 10 * time.Second
	defaultDatabase   = "labforms"
	defaultCollection = "sessions"
)

func (c MongoConfig) withDefaults() MongoConfig {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Database == "" {
		c.Database = defaultDatabase
	}
	if c.Collection == "" {
		c.Collection = defaultCollection
	}
	return c
}
