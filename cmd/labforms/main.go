package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/labforms/internal/repo"
	"github.com/nikmy/labforms/internal/session"
	"github.com/nikmy/labforms/internal/storage"
	"github.com/nikmy/labforms/internal/telegram"
	"github.com/nikmy/labforms/internal/web"
	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig(parseFlags())
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	sessionStorage, err := newSessionStorage(ctx, cfg, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init session storage"))
	}

	srv, err := web.NewServer(cfg.Web, log, session.NewStore(cfg.Session, sessionStorage))
	if err != nil {
		log.Panic(errors.WrapFail(err, "init web server"))
	}

	var bot *telegram.Bot
	if cfg.Telegram.Enabled() {
		bot, err = telegram.New(log, cfg.Telegram)
		if err != nil {
			log.Panic(errors.WrapFail(err, "initialize bot service"))
		}

		err = bot.Run(ctx)
		if err != nil {
			log.Panic(err)
		}
	}

	err = srv.Serve(ctx)
	if err != nil {
		log.Error(err)
	}

	stdlog.Println("Graceful shutdown...")
	if bot != nil {
		bot.Stop()
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		log.Error(err)
	}
	stdlog.Println("Shutdown complete")
}

// newSessionStorage returns nil for in-memory sessions.
func newSessionStorage(ctx context.Context, cfg *Config, log logger.Logger) (fiber.Storage, error) {
	switch backend := cfg.Session.Backend(); backend {
	case session.StorageMemory:
		return nil, nil
	case session.StorageMongo:
		s, err := repo.NewMongoStorage(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case session.StorageFile:
		s := storage.NewFileStorage(cfg.Session.File, log)
		go func() {
			err := s.Run(ctx)
			if err != nil {
				log.Error(errors.WrapFail(err, "run file storage"))
			}
		}()
		return s, nil
	default:
		return nil, errors.Failf("pick session storage %q", backend)
	}
}
