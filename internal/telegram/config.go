package telegram

import "time"

type Config struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"poll_interval"`
	UTCDiff      time.Duration `yaml:"utc_diff"`
}

const defaultPollInterval = 10 * time.Second

// Enabled reports whether the bot should run at all.
func (c Config) Enabled() bool {
	return c.Token != ""
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	return c
}
