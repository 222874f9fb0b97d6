package shop

import "slices"

// Cart keeps products in insertion order, at most once each.
type Cart struct {
	items []Product
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts p into the cart and reports whether it was not there yet.
func (c *Cart) Add(p Product) bool {
	if c.Contains(p.ID()) {
		return false
	}
	c.items = append(c.items, p)
	return true
}

func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

func (c *Cart) Contains(id string) bool {
	return c.index(id) >= 0
}

func (c *Cart) Items() []Product {
	return slices.Clone(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Total() float64 {
	var total float64
	for _, p := range c.items {
		total += p.Price()
	}
	return total
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) index(id string) int {
	return slices.IndexFunc(c.items, func(p Product) bool { return p.ID() == id })
}
