package domain

// CartLine pairs a product with a quantity of at least one.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) Subtotal() Amount {
	return l.Product.Price.Multiply(l.Quantity)
}

// Cart holds at most one line per product name, in insertion order.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(p Product) int {
	for i, line := range c.lines {
		if line.Product.SameAs(p) {
			return i
		}
	}
	return -1
}

// Add increments the line for p, or appends a new line with quantity 1.
func (c *Cart) Add(p Product) {
	if i := c.indexOf(p); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// Increase reports whether a line for p existed and was incremented.
func (c *Cart) Increase(p Product) bool {
	i := c.indexOf(p)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity++
	return true
}

// Decrease decrements the line for p, removing it when it would reach zero.
func (c *Cart) Decrease(p Product) bool {
	i := c.indexOf(p)
	if i < 0 {
		return false
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return true
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Quantity(p Product) int {
	if i := c.indexOf(p); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Total() Amount {
	return CalculateCartTotal(c.lines)
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func CalculateCartTotal(lines []CartLine) Amount {
	total := Amount(0)
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
