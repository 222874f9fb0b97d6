package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/nikmy/labforms/internal/shop"
	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, sessions *session.Store) (Server, error) {
	return newServer(cfg, log, sessions, time.Now, shop.NewID)
}

func newServer(
	cfg Config,
	log logger.Logger,
	sessions *session.Store,
	now func() time.Time,
	newID func() string,
) (*server, error) {
	cfg = cfg.withDefaults()
	serveLog := log.With("web_server")

	engine := newViews(templates)
	err := engine.Load()
	if err != nil {
		return nil, errors.WrapFail(err, "load templates")
	}

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodHead, fiber.MethodPost},
		Views:                   engine,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			serveLog.Error(errors.WrapFail(err, "handle http request"))
		} else {
			serveLog.Debug(errors.WrapFailf(err, "serve %s %s", c.Method(), c.Path()))
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(code).SendString(errorPage(code))
	}

	s := &server{
		http:     fiber.New(fiberCfg),
		addr:     cfg.HTTP.Addr,
		sessions: sessions,
		now:      now,
		newID:    newID,
		log:      serveLog,
	}

	s.http.Use(recover.New())
	s.http.Use(requestLogger(serveLog))
	s.setupRoutes()

	return s, nil
}

type server struct {
	http     *fiber.App
	addr     string
	sessions *session.Store
	now      func() time.Time
	newID    func() string
	log      logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	s.log.Infof("listening on %s", s.addr)

	select {
	case err := <-errCh:
		return errors.WrapFailf(err, "listen on %s", s.addr)
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	err = s.sessions.Storage.Close()
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "close session storage"))
	}

	return errors.Join(errs...)
}

func (s *server) setupRoutes() {
	s.http.Get("/", s.handleIndex)

	for _, p := range pages {
		p := p
		h := func(c *fiber.Ctx) error { return p.handle(s, c) }
		s.http.Get(p.Path, h)
		if p.Form {
			s.http.Post(p.Path, h)
		}
	}
}

func errorPage(code int) string {
	return fmt.Sprintf(
		"<!DOCTYPE html><html lang=\"ru\"><head><meta charset=\"UTF-8\"><title>%[1]d</title></head>"+
			"<body><h1>%[1]d</h1><p>%[2]s</p><p><a href=\"/\">На главную</a></p></body></html>",
		code, http.StatusText(code),
	)
}
