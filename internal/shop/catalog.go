package shop

import (
	"github.com/google/uuid"
)

// NewID returns a fresh product id.
func NewID() string {
	return "p_" + uuid.NewString()
}

type Catalog struct {
	products []Product
}

func NewCatalog(products ...Product) *Catalog {
	return &Catalog{products: products}
}

// DefaultCatalog is the seed assortment: two books and two devices.
func DefaultCatalog(newID func() string) *Catalog {
	return NewCatalog(
		NewBook(newID(), "PHP для начинающих", 80, "Иван Иванов"),
		NewBook(newID(), "Паттерны проектирования", 60, "Гамма и др."),
		NewElectronic(newID(), "Смартфон Honor 200", 1200, "HonorBrand", 24),
		NewElectronic(newID(), "Наушники ProMax", 120, "SoundMax", 12),
	)
}

func DefaultCustomer() Customer {
	return Customer{Name: "Алексей Петров", Email: "alex@example.com"}
}

func (c *Catalog) Products() []Product {
	return c.products
}

func (c *Catalog) Find(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Attach routes discount notes of every device to j.
func (c *Catalog) Attach(j Journal) {
	for _, p := range c.products {
		if e, ok := p.(*Electronic); ok {
			e.SetJournal(j)
		}
	}
}
