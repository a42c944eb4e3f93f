package models

// LineItem is one distinct product configuration in a cart. Two lines
// describe the same item only when both name and size match.
type LineItem struct {
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart keeps line items in insertion order for display.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges into an existing line when name and size match, otherwise
// appends a new line with quantity 1.
func (c *Cart) Add(name, size string, price float64) {
	for i := range c.Items {
		if c.Items[i].Name == name && c.Items[i].Size == size {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, LineItem{Name: name, Size: size, Price: price, Quantity: 1})
}

func (c *Cart) Increase(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	c.Items[index].Quantity++
}

// Decrease drops the whole line once quantity would reach zero.
func (c *Cart) Decrease(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	if c.Items[index].Quantity > 1 {
		c.Items[index].Quantity--
		return
	}
	c.Remove(index)
}

func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals is recomputed on every call rather than cached so it can
// never disagree with the items after a mutation.
func (c *Cart) Totals() (totalQty int, totalPrice float64) {
	for _, item := range c.Items {
		totalQty += item.Quantity
		totalPrice += item.Price * float64(item.Quantity)
	}
	return totalQty, totalPrice
}

// Snapshot returns an independent copy of the items for persisting
// with an order.
func (c *Cart) Snapshot() []LineItem {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return items
}
