package telegram

import (
	"fmt"
	"strings"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/labforms/internal/assets"
	"github.com/nikmy/labforms/internal/weekday"
	"github.com/nikmy/labforms/pkg/calendar"
	"github.com/nikmy/labforms/pkg/errors"
)

const (
	initialState = fsm.DefaultState

	growReadKeyState     fsm.State = "growReadKey"
	growReadPercentState fsm.State = "growReadPercent"
)

const (
	portfolioKey = "portfolio"
	assetKey     = "asset"

	calendarID   = "weekday_calendar"
	calendarLang = "ru"
)

const usage = "" +
	"Доступные команды:\n" +
	"/weekday — узнать день недели для даты\n" +
	"/assets — показать активы\n" +
	"/grow — изменить цену актива на процент\n" +
	"/reset — вернуть активы к начальным ценам"

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	manager.Bind(telebot.OnText, initialState, b.start)
	manager.Bind("/start", fsm.AnyState, b.start)

	manager.Bind("/weekday", fsm.AnyState, b.showCalendar)
	b.bot.Handle(&telebot.InlineButton{Unique: calendarID}, b.onCalendar)

	manager.Bind("/assets", fsm.AnyState, b.showAssets)
	manager.Bind("/reset", fsm.AnyState, b.reset)

	manager.Bind("/grow", fsm.AnyState, b.startGrow)
	manager.Bind(telebot.OnText, growReadKeyState, b.growReadKey)
	manager.Bind(telebot.OnText, growReadPercentState, b.grow)
}

func (b *Bot) setState(s fsm.Context, target fsm.State) {
	err := s.Set(target)
	if err != nil {
		b.log.Warn(errors.WrapFailf(err, "set state to %q", target))
	}
}

func (b *Bot) final(c telebot.Context, s fsm.Context, msg string, opts ...any) error {
	b.setState(s, initialState)
	return c.Send(msg, opts...)
}

func (b *Bot) fail(c telebot.Context, s fsm.Context, err error) error {
	b.log.Error(err)
	return b.final(c, s, "Что-то пошло не так")
}

func (b *Bot) start(c telebot.Context, s fsm.Context) error {
	return b.final(c, s, usage)
}

func (b *Bot) showCalendar(c telebot.Context, s fsm.Context) error {
	w, err := calendar.New(calendarID, calendarLang, b.clock.Now())
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "build calendar"))
	}

	return b.final(c, s, "Выберите дату:", w.Markup())
}

func (b *Bot) onCalendar(c telebot.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}

	reply, err := calendarReply(cb.Data)
	if err != nil {
		b.log.Debug(errors.WrapFail(err, "handle calendar callback"))
		return c.Respond()
	}

	switch {
	case reply.markup != nil:
		return c.Edit("Выберите дату:", reply.markup)
	case reply.text != "":
		err = c.Respond()
		if err != nil {
			b.log.Warn(errors.WrapFail(err, "answer callback"))
		}
		return c.Send(reply.text)
	default:
		return c.Respond()
	}
}

type calendarAnswer struct {
	text   string
	markup *telebot.ReplyMarkup
}

// calendarReply decides what a calendar button press turns into:
// another month, a weekday answer or nothing.
func calendarReply(data string) (calendarAnswer, error) {
	action, date, err := calendar.Parse(data)
	if err != nil {
		return calendarAnswer{}, err
	}

	switch action {
	case calendar.Show:
		w, err := calendar.New(calendarID, calendarLang, date)
		if err != nil {
			return calendarAnswer{}, errors.WrapFail(err, "build calendar")
		}
		return calendarAnswer{markup: w.Markup()}, nil
	case calendar.Pick:
		return calendarAnswer{text: weekdayText(date.Format("02.01.2006"))}, nil
	default:
		return calendarAnswer{}, nil
	}
}

func weekdayText(raw string) string {
	res, err := weekday.Lookup(raw)
	if err != nil {
		return "❌ Неверный формат даты!"
	}
	return fmt.Sprintf("📅 %s → %s", res.Input, res.Day)
}

func (b *Bot) showAssets(c telebot.Context, s fsm.Context) error {
	p := b.portfolio(s)
	return c.Send("Текущие активы:\n" + p.Listing())
}

func (b *Bot) reset(c telebot.Context, s fsm.Context) error {
	err := b.savePortfolio(s, assets.NewPortfolio())
	if err != nil {
		return b.fail(c, s, err)
	}

	return b.final(c, s, "Активы сброшены к начальным ценам.")
}

func (b *Bot) startGrow(c telebot.Context, s fsm.Context) error {
	p := b.portfolio(s)

	b.setState(s, growReadKeyState)
	return c.Send("Текущие активы:\n" + p.Listing() + "\nВведите ключ актива (stock/bond/crypto):")
}

func (b *Bot) growReadKey(c telebot.Context, s fsm.Context) error {
	key := strings.ToLower(strings.TrimSpace(c.Text()))
	if _, ok := b.portfolio(s).Get(key); !ok {
		return b.final(c, s, "Ошибка: такого актива нет.")
	}

	err := s.Update(assetKey, key)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "update state with asset key"))
	}

	b.setState(s, growReadPercentState)
	return c.Send("Введите процент изменения (например, 5 или -3):")
}

func (b *Bot) grow(c telebot.Context, s fsm.Context) error {
	var key string
	err := s.Get(assetKey, &key)
	if err != nil {
		b.log.Debug(err)
		return b.final(c, s, "Ошибка, попробуйте ещё раз")
	}

	p := b.portfolio(s)
	a, err := p.Grow(key, assets.ParsePercent(c.Text()))
	switch {
	case errors.Is(err, assets.ErrPriceOverflow):
		b.log.Debug(err)
		return b.final(c, s, "Цена не изменилась: результат вне допустимого диапазона.")
	case err != nil:
		b.log.Debug(err)
		return b.final(c, s, "Ошибка: такого актива нет.")
	}

	err = b.savePortfolio(s, p)
	if err != nil {
		return b.fail(c, s, err)
	}

	return b.final(c, s, "Новая цена: "+a.Info())
}

func (b *Bot) portfolio(s fsm.Context) *assets.Portfolio {
	var raw string
	err := s.Get(portfolioKey, &raw)
	if err != nil {
		return assets.NewPortfolio()
	}

	return b.restorePortfolio(raw)
}

func (b *Bot) restorePortfolio(raw string) *assets.Portfolio {
	if raw == "" {
		return assets.NewPortfolio()
	}

	p, err := assets.Restore([]byte(raw))
	if err != nil {
		b.log.Warn(errors.WrapFail(err, "restore chat portfolio"))
		return assets.NewPortfolio()
	}

	return p
}

func (b *Bot) savePortfolio(s fsm.Context, p *assets.Portfolio) error {
	data, err := p.Snapshot()
	if err != nil {
		return err
	}

	return errors.WrapFail(s.Update(portfolioKey, string(data)), "update state with portfolio")
}
