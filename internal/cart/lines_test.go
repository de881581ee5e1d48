package cart

import (
	"testing"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
)

func watchFixture(id string, price int) models.Watch {
	return models.Watch{ID: id, Name: "Watch " + id, Price: price}
}

func TestAddLineAppendsAndIncrements(t *testing.T) {
	lines := addLine(nil, watchFixture("w1", 100), 1)
	lines = addLine(lines, watchFixture("w2", 200), 2)
	lines = addLine(lines, watchFixture("w1", 100), 3)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Watch.ID != "w1" || lines[0].Quantity != 4 {
		t.Fatalf("expected w1 quantity 4 at index 0, got %+v", lines[0])
	}
	if lines[1].Watch.ID != "w2" || lines[1].Quantity != 2 {
		t.Fatalf("expected w2 quantity 2 at index 1, got %+v", lines[1])
	}
}

func TestAddLineDoesNotMutateInput(t *testing.T) {
	original := []models.CartLine{{Watch: watchFixture("w1", 100), Quantity: 1}}
	_ = addLine(original, watchFixture("w1", 100), 5)
	if original[0].Quantity != 1 {
		t.Fatalf("input slice mutated: %+v", original[0])
	}
}

func TestSetQuantityReplacesValue(t *testing.T) {
	lines := []models.CartLine{
		{Watch: watchFixture("w1", 100), Quantity: 2},
		{Watch: watchFixture("w2", 200), Quantity: 1},
	}
	got := setQuantity(lines, "w1", 7)
	if got[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", got[0].Quantity)
	}
	if got[1].Quantity != 1 {
		t.Fatalf("unrelated line changed: %+v", got[1])
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	lines := []models.CartLine{
		{Watch: watchFixture("w1", 100), Quantity: 2},
		{Watch: watchFixture("w2", 200), Quantity: 1},
	}
	got := setQuantity(lines, "w1", 0)
	if len(got) != 1 || got[0].Watch.ID != "w2" {
		t.Fatalf("expected only w2 to remain, got %+v", got)
	}
}

func TestRemoveLinePreservesOrder(t *testing.T) {
	lines := []models.CartLine{
		{Watch: watchFixture("w1", 100), Quantity: 1},
		{Watch: watchFixture("w2", 200), Quantity: 1},
		{Watch: watchFixture("w3", 300), Quantity: 1},
	}
	got := removeLine(lines, "w2")
	if len(got) != 2 || got[0].Watch.ID != "w1" || got[1].Watch.ID != "w3" {
		t.Fatalf("unexpected lines after remove: %+v", got)
	}
}

func TestTotalSumsSubtotals(t *testing.T) {
	lines := []models.CartLine{
		{Watch: watchFixture("w1", 14500), Quantity: 2},
		{Watch: watchFixture("w2", 7200), Quantity: 1},
	}
	if got := total(lines); got != 36200 {
		t.Fatalf("expected total 36200, got %d", got)
	}
	if got := total(nil); got != 0 {
		t.Fatalf("expected empty total 0, got %d", got)
	}
}
