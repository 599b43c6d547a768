package beverage

// Condiment is an add-on that extends a drink's description and raises its cost.
type Condiment struct {
	Suffix    string
	Increment int64
}

var (
	Milk         = Condiment{Suffix: ", Milk", Increment: 200}
	Sugar        = Condiment{Suffix: ", Sugar", Increment: 100}
	WhippedCream = Condiment{Suffix: ", Whipped Cream", Increment: 300}
	Caramel      = Condiment{Suffix: ", Caramel", Increment: 250}
)

// decorated owns exactly one inner Beverage, which may itself be decorated.
type decorated struct {
	inner     Beverage
	condiment Condiment
}

func (d *decorated) Description() string { return d.inner.Description() + d.condiment.Suffix }
func (d *decorated) Cost() int64         { return d.inner.Cost() + d.condiment.Increment }

// Wrap returns a new Beverage layering c on top of b. b is not modified.
// Any depth and any repetition are accepted.
func (c Condiment) Wrap(b Beverage) Beverage {
	return &decorated{inner: b, condiment: c}
}

func WithMilk(b Beverage) Beverage         { return Milk.Wrap(b) }
func WithSugar(b Beverage) Beverage        { return Sugar.Wrap(b) }
func WithWhippedCream(b Beverage) Beverage { return WhippedCream.Wrap(b) }
func WithCaramel(b Beverage) Beverage      { return Caramel.Wrap(b) }

// Chain applies condiments left to right, so the last one listed is the
// outermost wrapper and appears last in the description.
func Chain(b Beverage, condiments ...Condiment) Beverage {
	for _, c := range condiments {
		b = c.Wrap(b)
	}
	return b
}
