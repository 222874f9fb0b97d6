// Package session keeps per-visitor page state in fiber sessions as JSON snapshots.
package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/logger"
)

type Snapshotter interface {
	Snapshot() ([]byte, error)
}

func NewStore(cfg Config, storage fiber.Storage) *session.Store {
	cfg = cfg.withDefaults()
	return session.New(session.Config{
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + cookieName,
		Storage:        storage,
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Load restores the value saved under key. A missing or unreadable snapshot
// yields fresh(), so a broken session never breaks the page.
func Load[T any](
	sess *session.Session,
	key string,
	restore func([]byte) (T, error),
	fresh func() T,
	log logger.Logger,
) T {
	raw, ok := sess.Get(key).([]byte)
	if !ok || len(raw) == 0 {
		return fresh()
	}

	v, err := restore(raw)
	if err != nil {
		log.Warn(errors.WrapFailf(err, "restore session key %q", key))
		return fresh()
	}

	return v
}

func Put(sess *session.Session, key string, v Snapshotter) error {
	data, err := v.Snapshot()
	if err != nil {
		return errors.WrapFailf(err, "snapshot session key %q", key)
	}

	sess.Set(key, data)
	return nil
}
