// Package shop is a small catalog and cart with per-kind product behaviour.
package shop

import (
	"fmt"

	"github.com/nikmy/labforms/pkg/money"
)

type Kind string

const (
	KindBook       Kind = "book"
	KindElectronic Kind = "electronic"
)

func (k Kind) Title() string {
	switch k {
	case KindBook:
		return "Книга"
	case KindElectronic:
		return "Электроника"
	default:
		return string(k)
	}
}

func (k Kind) Category() string {
	switch k {
	case KindBook:
		return "Учебная литература"
	case KindElectronic:
		return "Электронные устройства"
	default:
		return ""
	}
}

type Discountable interface {
	ApplyDiscount(percent float64)
}

type Product interface {
	Discountable

	ID() string
	Name() string
	Price() float64
	Kind() Kind
	Info() string
}

// Journal receives human readable notes about product changes.
type Journal interface {
	Record(msg string)
}

// Lines is a Journal that keeps notes in memory.
type Lines []string

func (l *Lines) Record(msg string) {
	*l = append(*l, msg)
}

type base struct {
	id    string
	name  string
	price float64
}

func (b *base) ID() string     { return b.id }
func (b *base) Name() string   { return b.name }
func (b *base) Price() float64 { return b.price }

// ApplyDiscount lowers the price by percent, clamped to [0, 100].
func (b *base) ApplyDiscount(percent float64) {
	percent = max(0, min(100, percent))
	b.price -= b.price * percent / 100
}

type Book struct {
	base
	author string
}

func NewBook(id, name string, price float64, author string) *Book {
	return &Book{base: base{id: id, name: name, price: price}, author: author}
}

func (b *Book) Author() string { return b.author }
func (b *Book) Kind() Kind     { return KindBook }

func (b *Book) Info() string {
	return fmt.Sprintf("Книга: %s (Автор: %s) — %s руб.", b.name, b.author, money.Format(b.price))
}

const defaultWarranty = 12

type Electronic struct {
	base
	brand          string
	warrantyMonths int
	journal        Journal
}

// NewElectronic creates a device; a non-positive warranty falls back to 12 months.
func NewElectronic(id, name string, price float64, brand string, warrantyMonths int) *Electronic {
	if warrantyMonths <= 0 {
		warrantyMonths = defaultWarranty
	}
	return &Electronic{
		base:           base{id: id, name: name, price: price},
		brand:          brand,
		warrantyMonths: warrantyMonths,
	}
}

func (e *Electronic) Brand() string        { return e.brand }
func (e *Electronic) WarrantyMonths() int  { return e.warrantyMonths }
func (e *Electronic) Kind() Kind           { return KindElectronic }
func (e *Electronic) SetJournal(j Journal) { e.journal = j }

func (e *Electronic) ApplyDiscount(percent float64) {
	e.base.ApplyDiscount(percent)
	if e.journal != nil {
		e.journal.Record(fmt.Sprintf("Скидка %s%% применена к %s", trimFloat(percent), e.name))
	}
}

func (e *Electronic) Info() string {
	return fmt.Sprintf(
		"Электроника: %s (Бренд: %s, гарантия %d мес.) — %s руб.",
		e.name, e.brand, e.warrantyMonths, money.Format(e.price),
	)
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
