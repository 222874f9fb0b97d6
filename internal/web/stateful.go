package web

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/nikmy/labforms/internal/assets"
	"github.com/nikmy/labforms/internal/opstack"
	"github.com/nikmy/labforms/internal/session"
	"github.com/nikmy/labforms/internal/shop"
	"github.com/nikmy/labforms/pkg/errors"
)

const (
	stackKey  = "stack"
	shopKey   = "shop"
	assetsKey = "assets"
)

type flash struct {
	Text   string
	Status opstack.Status
}

func (s *server) session(c *fiber.Ctx) (*fibersession.Session, error) {
	sess, err := s.sessions.Get(c)
	return sess, errors.WrapFail(err, "load session")
}

func (s *server) save(sess *fibersession.Session, key string, v session.Snapshotter) error {
	err := session.Put(sess, key, v)
	if err != nil {
		return err
	}

	return errors.WrapFail(sess.Save(), "save session")
}

type stackPage struct {
	Flash flash
	Items []string
	Stats opstack.Stats
	Log   []opstack.Entry
}

func (s *server) handleStack(c *fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	stack := session.Load(
		sess, stackKey,
		func(data []byte) (*opstack.Stack, error) { return opstack.Restore(data, s.now) },
		func() *opstack.Stack { return opstack.New(s.now) },
		s.log,
	)

	var p stackPage
	if isPost(c) {
		p.Flash = applyStackAction(c, stack)
	}

	err = s.save(sess, stackKey, stack)
	if err != nil {
		return err
	}

	p.Items = stack.TopDown()
	p.Stats = stack.Stats()
	p.Log = stack.Log()
	return c.Render("stack", p)
}

func applyStackAction(c *fiber.Ctx, stack *opstack.Stack) flash {
	switch {
	case c.FormValue("push_operation") != "":
		op := strings.TrimSpace(c.FormValue("operation"))
		if op == "" {
			return flash{Text: "Введите название операции", Status: opstack.StatusWarning}
		}
		stack.Push(op)
		return flash{Text: fmt.Sprintf("Операция '%s' добавлена в стек", op), Status: opstack.StatusSuccess}

	case c.FormValue("pop_operation") != "":
		op, ok := stack.Pop()
		if !ok {
			return flash{Text: "Стек пуст - нечего извлекать", Status: opstack.StatusWarning}
		}
		return flash{Text: fmt.Sprintf("Операция '%s' извлечена из стека", op), Status: opstack.StatusSuccess}

	case c.FormValue("clear_stack") != "":
		stack.Clear()
		return flash{Text: "Стек очищен", Status: opstack.StatusDanger}

	case c.FormValue("add_sample_operations") != "":
		for _, op := range opstack.Samples {
			stack.Push(op)
		}
		return flash{Text: "Добавлены примеры операций", Status: opstack.StatusSuccess}
	}

	return flash{}
}

type shopPage struct {
	Customer string
	Products []shop.Product
	Cart     []shop.Product
	Total    float64
	Journal  shop.Lines
	Message  string
}

func (s *server) handleShop(c *fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	store := session.Load(
		sess, shopKey,
		shop.Restore,
		func() *shop.Shop { return shop.New(s.newID) },
		s.log,
	)

	var journal shop.Lines
	store.Catalog.Attach(&journal)

	if isPost(c) {
		action := shop.Action(c.FormValue("action"))
		if action == shop.ActionClearSession {
			err = sess.Destroy()
			if err != nil {
				return errors.WrapFail(err, "destroy session")
			}
			return c.Redirect("/shop", fiber.StatusSeeOther)
		}
		store.Do(action, c.FormValue("product_id"))
	}

	p := shopPage{
		Customer: store.Customer.Info(),
		Products: store.Catalog.Products(),
		Cart:     store.Cart.Items(),
		Total:    store.Cart.Total(),
		Journal:  journal,
		Message:  store.TakeFlash(),
	}

	err = s.save(sess, shopKey, store)
	if err != nil {
		return err
	}

	return c.Render("shop", p)
}

type assetCard struct {
	Key   assets.Kind
	Title string
	Asset assets.Asset
}

const overflowMessage = "Цена актива не изменилась: результат вне допустимого диапазона."

type assetsPage struct {
	Message string
	Cards   []assetCard
}

func (s *server) handleAssets(c *fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	portfolio := session.Load(sess, assetsKey, assets.Restore, assets.NewPortfolio, s.log)

	var p assetsPage
	if isPost(c) {
		if c.FormValue("reset") != "" {
			err = sess.Destroy()
			if err != nil {
				return errors.WrapFail(err, "destroy session")
			}
			return c.Redirect("/assets", fiber.StatusSeeOther)
		}

		percent := assets.ParsePercent(c.FormValue("percent"))
		a, err := portfolio.Grow(c.FormValue("asset"), percent)
		switch {
		case err == nil:
			p.Message = assets.GrowthMessage(a, percent)
		case errors.Is(err, assets.ErrPriceOverflow):
			s.log.Debug(errors.WrapFail(err, "simulate growth"))
			p.Message = overflowMessage
		default:
			s.log.Debug(errors.WrapFail(err, "simulate growth"))
		}
	}

	err = s.save(sess, assetsKey, portfolio)
	if err != nil {
		return err
	}

	for _, a := range portfolio.All() {
		p.Cards = append(p.Cards, assetCard{Key: a.Kind(), Title: a.Kind().Title(), Asset: a})
	}
	return c.Render("assets", p)
}
