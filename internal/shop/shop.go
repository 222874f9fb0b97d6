package shop

import (
	"encoding/json"
	"fmt"

	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/money"
)

type Action string

const (
	ActionAddToCart      Action = "add_to_cart"
	ActionRemoveFromCart Action = "remove_from_cart"
	ActionDiscount10     Action = "discount_10"
	ActionDiscount20     Action = "discount_20"
	ActionCheckout       Action = "checkout"
	ActionClearCart      Action = "clear_cart"
	ActionClearSession   Action = "clear_session"
)

// Shop is the whole per-visitor state of the store page.
type Shop struct {
	Catalog  *Catalog
	Cart     *Cart
	Customer Customer

	flash string
}

func New(newID func() string) *Shop {
	return &Shop{
		Catalog:  DefaultCatalog(newID),
		Cart:     NewCart(),
		Customer: DefaultCustomer(),
	}
}

// Do applies a page action. Product actions with an unknown id are ignored.
// ActionClearSession is left to the caller since it drops the state itself.
func (s *Shop) Do(action Action, productID string) {
	if productID != "" {
		if p, ok := s.Catalog.Find(productID); ok {
			switch action {
			case ActionAddToCart:
				s.Cart.Add(p)
			case ActionRemoveFromCart:
				s.Cart.Remove(p.ID())
			case ActionDiscount10:
				p.ApplyDiscount(10)
			case ActionDiscount20:
				p.ApplyDiscount(20)
			}
		}
	}

	switch action {
	case ActionCheckout:
		s.flash = fmt.Sprintf("Заказ оформлен. Итог: %s руб.", money.Format(s.Cart.Total()))
		s.Cart.Clear()
	case ActionClearCart:
		s.Cart.Clear()
		s.flash = "Корзина очищена."
	}
}

// TakeFlash returns the pending message once.
func (s *Shop) TakeFlash() string {
	msg := s.flash
	s.flash = ""
	return msg
}

type productRecord struct {
	Kind           Kind    `json:"kind"`
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Author         string  `json:"author,omitempty"`
	Brand          string  `json:"brand,omitempty"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}

type snapshot struct {
	Products []productRecord `json:"products"`
	Cart     []string        `json:"cart"`
	Customer Customer        `json:"customer"`
	Flash    string          `json:"flash,omitempty"`
}

func (s *Shop) Snapshot() ([]byte, error) {
	snap := snapshot{Customer: s.Customer, Flash: s.flash}
	for _, p := range s.Catalog.Products() {
		rec := productRecord{Kind: p.Kind(), ID: p.ID(), Name: p.Name(), Price: p.Price()}
		switch p := p.(type) {
		case *Book:
			rec.Author = p.Author()
		case *Electronic:
			rec.Brand = p.Brand()
			rec.WarrantyMonths = p.WarrantyMonths()
		}
		snap.Products = append(snap.Products, rec)
	}
	for _, p := range s.Cart.Items() {
		snap.Cart = append(snap.Cart, p.ID())
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.WrapFail(err, "marshal shop snapshot")
	}
	return data, nil
}

// Restore rebuilds a shop; cart entries missing from the catalog are dropped.
func Restore(data []byte) (*Shop, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapFail(err, "unmarshal shop snapshot")
	}

	products := make([]Product, 0, len(snap.Products))
	for _, rec := range snap.Products {
		switch rec.Kind {
		case KindBook:
			products = append(products, NewBook(rec.ID, rec.Name, rec.Price, rec.Author))
		case KindElectronic:
			products = append(products, NewElectronic(rec.ID, rec.Name, rec.Price, rec.Brand, rec.WarrantyMonths))
		default:
			return nil, errors.Errorf("unknown product kind %q", rec.Kind)
		}
	}

	s := &Shop{
		Catalog:  NewCatalog(products...),
		Cart:     NewCart(),
		Customer: snap.Customer,
		flash:    snap.Flash,
	}
	for _, id := range snap.Cart {
		if p, ok := s.Catalog.Find(id); ok {
			s.Cart.Add(p)
		}
	}
	return s, nil
}
