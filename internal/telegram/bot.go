// Package telegram exposes the weekday lookup and the asset portfolio as a chat bot.
package telegram

import (
	"context"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/logger"
)

func New(log logger.Logger, conf Config) (*Bot, error) {
	conf = conf.withDefaults()

	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telebot")
	}

	return &Bot{
		bot:   b,
		clock: stdTime{utcDiff: conf.UTCDiff},
		log:   log.With("telegram_bot"),
	}, nil
}

type Bot struct {
	bot   *telebot.Bot
	clock timeProvider
	log   logger.Logger
}

func (b *Bot) Run(_ context.Context) error {
	b.setupHandlers()
	go b.bot.Start()
	b.log.Infof("bot @%s started", b.bot.Me.Username)
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
