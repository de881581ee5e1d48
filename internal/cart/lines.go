package cart

import "github.com/chronos-atelier/chronos-backend/pkg/db/models"

// The reducers below are pure: they return a new slice and never mutate the
// input. Line order is insertion order and is preserved across every edit.

// addLine increments the quantity of an existing line or appends a new one.
func addLine(lines []models.CartLine, watch models.Watch, quantity int) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].Watch.ID == watch.ID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, models.CartLine{Watch: watch, Quantity: quantity})
}

// setQuantity replaces the quantity of the matching line. A quantity of zero
// or less removes the line.
func setQuantity(lines []models.CartLine, watchID string, quantity int) []models.CartLine {
	if quantity <= 0 {
		return removeLine(lines, watchID)
	}
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].Watch.ID == watchID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// removeLine drops the matching line, keeping the rest in order.
func removeLine(lines []models.CartLine, watchID string) []models.CartLine {
	out := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Watch.ID != watchID {
			out = append(out, line)
		}
	}
	return out
}

// total sums the line subtotals.
func total(lines []models.CartLine) int {
	sum := 0
	for _, line := range lines {
		sum += line.Subtotal()
	}
	return sum
}
