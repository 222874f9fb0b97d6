package assets

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nikmy/labforms/pkg/errors"
)

var (
	ErrUnknownAsset  = errors.Error("unknown asset")
	ErrPriceOverflow = errors.Error("price out of range")
	ErrMissingAsset  = errors.Error("missing asset")
)

// Keys lists portfolio slots in display order.
var Keys = [...]Kind{KindStock, KindBond, KindCrypto}

type Portfolio struct {
	assets map[Kind]Asset
}

func NewPortfolio() *Portfolio {
	return &Portfolio{assets: map[Kind]Asset{
		KindStock:  NewStock("Apple Inc.", 180.50),
		KindBond:   NewBond("US Treasury 10Y", 1000.00),
		KindCrypto: NewCryptocurrency("Bitcoin", 27000.00),
	}}
}

func (p *Portfolio) Get(key string) (Asset, bool) {
	a, ok := p.assets[Kind(key)]
	return a, ok
}

// All returns assets in Keys order.
func (p *Portfolio) All() []Asset {
	all := make([]Asset, 0, len(Keys))
	for _, k := range Keys {
		if a, ok := p.assets[k]; ok {
			all = append(all, a)
		}
	}
	return all
}

// Grow applies SimulateGrowth to the asset stored under key. If the new
// price would not be a finite number the asset is left as is and
// ErrPriceOverflow is returned.
func (p *Portfolio) Grow(key string, percent float64) (Asset, error) {
	a, ok := p.Get(key)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAsset, "key %q", key)
	}
	if _, ok := grown(a.Value(), percent); !ok {
		return a, errors.Wrapf(ErrPriceOverflow, "grow %s by %g%%", key, percent)
	}
	a.SimulateGrowth(percent)
	return a, nil
}

// Listing renders one line per asset: " - [key] info | Риск: risk".
func (p *Portfolio) Listing() string {
	var sb strings.Builder
	for _, a := range p.All() {
		fmt.Fprintf(&sb, " - [%s] %s | Риск: %s\n", a.Kind(), a.Info(), a.RiskLevel())
	}
	return sb.String()
}

// ParsePercent reads a percent from user input; anything unparsable or
// non-finite is 0.
func ParsePercent(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GrowthMessage confirms a recalculation.
func GrowthMessage(a Asset, percent float64) string {
	return fmt.Sprintf("Цена актива '%s' пересчитана (изменение %s%%).", a.Info(), FormatPercent(percent))
}

type record struct {
	Kind  Kind    `json:"kind"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (p *Portfolio) Snapshot() ([]byte, error) {
	records := make([]record, 0, len(p.assets))
	for _, a := range p.All() {
		records = append(records, record{Kind: a.Kind(), Name: a.Name(), Price: a.Value()})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.WrapFail(err, "marshal portfolio")
	}
	return data, nil
}

func Restore(data []byte) (*Portfolio, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapFail(err, "unmarshal portfolio")
	}

	p := &Portfolio{assets: make(map[Kind]Asset, len(records))}
	for _, r := range records {
		a, ok := newAsset(r.Kind, r.Name, r.Price)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownAsset, "kind %q", r.Kind)
		}
		p.assets[r.Kind] = a
	}

	for _, k := range Keys {
		if _, ok := p.assets[k]; !ok {
			return nil, errors.Wrapf(ErrMissingAsset, "kind %q", k)
		}
	}
	return p, nil
}
