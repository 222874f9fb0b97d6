// Package assets models a tiny portfolio of financial instruments.
package assets

import (
	"fmt"
	"math"

	"github.com/nikmy/labforms/pkg/money"
)

type Kind string

const (
	KindStock  Kind = "stock"
	KindBond   Kind = "bond"
	KindCrypto Kind = "crypto"
)

func (k Kind) Title() string {
	switch k {
	case KindStock:
		return "Акция"
	case KindBond:
		return "Облигация"
	case KindCrypto:
		return "Криптовалюта"
	default:
		return string(k)
	}
}

type Asset interface {
	Name() string
	Kind() Kind
	Value() float64
	UpdatePrice(price float64)
	RiskLevel() string
	// SimulateGrowth changes the price by percent, negative values mean a fall.
	// A change that would make the price non-finite is ignored.
	SimulateGrowth(percent float64)
	Info() string
}

type base struct {
	name  string
	price float64
}

func (b *base) Name() string              { return b.name }
func (b *base) Value() float64            { return b.price }
func (b *base) UpdatePrice(price float64) { b.price = price }

func (b *base) SimulateGrowth(percent float64) {
	if next, ok := grown(b.price, percent); ok {
		b.price = next
	}
}

func grown(price, percent float64) (float64, bool) {
	next := price + price*percent/100
	return next, !math.IsNaN(next) && !math.IsInf(next, 0)
}

func (b *base) Info() string {
	return fmt.Sprintf("%s: %s USD", b.name, money.Format(b.price))
}

type Stock struct{ base }

func NewStock(name string, price float64) *Stock {
	return &Stock{base{name: name, price: price}}
}

func (s *Stock) Kind() Kind { return KindStock }
func (s *Stock) RiskLevel() string {
	return "Средний риск (волатильность рынка акций)"
}

type Bond struct{ base }

func NewBond(name string, price float64) *Bond {
	return &Bond{base{name: name, price: price}}
}

func (b *Bond) Kind() Kind { return KindBond }
func (b *Bond) RiskLevel() string {
	return "Низкий риск (фиксированный доход)"
}

type Cryptocurrency struct{ base }

func NewCryptocurrency(name string, price float64) *Cryptocurrency {
	return &Cryptocurrency{base{name: name, price: price}}
}

func (c *Cryptocurrency) Kind() Kind { return KindCrypto }
func (c *Cryptocurrency) RiskLevel() string {
	return "Высокий риск (сильная волатильность)"
}

func newAsset(kind Kind, name string, price float64) (Asset, bool) {
	switch kind {
	case KindStock:
		return NewStock(name, price), true
	case KindBond:
		return NewBond(name, price), true
	case KindCrypto:
		return NewCryptocurrency(name, price), true
	default:
		return nil, false
	}
}
