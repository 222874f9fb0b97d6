package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/labforms/pkg/logger"
)

func requestLogger(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			log.Infof("%s %s failed after %s: %v", c.Method(), c.Path(), time.Since(start), err)
			return err
		}

		log.Infof("%s %s -> %d (%s)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return nil
	}
}
