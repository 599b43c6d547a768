// Package beverage models drinks whose description and price are built up
// by wrapping a base drink in condiments.
package beverage

// Beverage is anything that can be put on a receipt.
type Beverage interface {
	Description() string
	Cost() int64
}

// base is an undecorated drink from the menu.
type base struct {
	name  string
	price int64
}

func (b base) Description() string { return b.name }
func (b base) Cost() int64         { return b.price }

const (
	EspressoPrice int64 = 800
	TeaPrice      int64 = 500
	LattePrice    int64 = 1000
	MochaPrice    int64 = 1200
)

func Espresso() Beverage { return base{name: "Espresso", price: EspressoPrice} }
func Tea() Beverage      { return base{name: "Tea", price: TeaPrice} }
func Latte() Beverage    { return base{name: "Latte", price: LattePrice} }
func Mocha() Beverage    { return base{name: "Mocha", price: MochaPrice} }

// BaseName returns the description of the innermost drink in a chain.
func BaseName(b Beverage) string {
	for {
		d, ok := b.(*decorated)
		if !ok {
			return b.Description()
		}
		b = d.inner
	}
}
