package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/labforms/internal/repo"
	"github.com/nikmy/labforms/internal/session"
	"github.com/nikmy/labforms/internal/telegram"
	"github.com/nikmy/labforms/internal/web"
	"github.com/nikmy/labforms/pkg/environment"
	"github.com/nikmy/labforms/pkg/errors"
)

type Config struct {
	Environment environment.Env  `yaml:"Environment"`
	Web         web.Config       `yaml:"Web"`
	Session     session.Config   `yaml:"Session"`
	Mongo       repo.MongoConfig `yaml:"Mongo"`
	Telegram    telegram.Config  `yaml:"Telegram"`
}

type flags struct {
	config string
	env    string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", "config.yaml", "path to yaml config")
	flag.StringVar(&f.env, "env", "", "environment (dev, prod)")
	flag.Parse()
	return f
}

func loadConfig(f flags) (*Config, error) {
	path, err := filepath.Abs(f.config)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}

	if token := os.Getenv("LABFORMS_TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}

	return &cfg, nil
}
