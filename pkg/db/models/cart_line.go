package models

// CartLine pairs a full watch snapshot with a positive quantity. The snapshot
// is copied by value at add time: later catalog edits never touch existing
// lines or placed orders.
type CartLine struct {
	Watch    Watch `json:"watch"`
	Quantity int   `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (l CartLine) Subtotal() int {
	return l.Watch.Price * l.Quantity
}
